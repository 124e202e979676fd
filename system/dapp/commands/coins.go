// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 内置 coins 执行器的命令行
package commands

import (
	"fmt"
	"os"

	ct "github.com/33cn/luckynumber/system/dapp/coins/types"
	commandtypes "github.com/33cn/luckynumber/system/dapp/commands/types"
	"github.com/33cn/luckynumber/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "System coins transactions and balance",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GenesisCmd(),
		TransferCmd(),
		SendToExecCmd(),
		WithdrawCmd(),
		BalanceCmd(),
	)
	return cmd
}

func parseAmount(cmd *cobra.Command) (int64, bool) {
	s, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseAmount(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, "amount", s, err)
		return 0, false
	}
	return amount, true
}

func addAmountFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("amount", "a", "", "amount in coins, at most 8 decimals")
	cmd.MarkFlagRequired("amount")
}

// GenesisCmd issue coins
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Issue coins to an address, only the configured genesis address",
		Run:   genesis,
	}
	commandtypes.AddFromFlag(cmd)
	addAmountFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, ok := parseAmount(cmd)
	if !ok {
		return
	}
	commandtypes.RunTx(cmd, ct.CoinsX, "Genesis", &ct.AssetsGenesis{To: to, Amount: amount})
}

// TransferCmd transfer coins
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to another address",
		Run:   transfer,
	}
	commandtypes.AddFromFlag(cmd)
	addAmountFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, ok := parseAmount(cmd)
	if !ok {
		return
	}
	commandtypes.RunTx(cmd, ct.CoinsX, "Transfer", &ct.AssetsTransfer{To: to, Amount: amount})
}

// SendToExecCmd deposit coins into an executor
func SendToExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send_exec",
		Short: "Deposit coins into an executor sub account",
		Run:   sendToExec,
	}
	commandtypes.AddFromFlag(cmd)
	addAmountFlag(cmd)
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func sendToExec(cmd *cobra.Command, args []string) {
	execName, _ := cmd.Flags().GetString("exec")
	amount, ok := parseAmount(cmd)
	if !ok {
		return
	}
	commandtypes.RunTx(cmd, ct.CoinsX, "TransferToExec", &ct.AssetsTransferToExec{ExecName: execName, Amount: amount})
}

// WithdrawCmd withdraw coins from an executor
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from an executor sub account",
		Run:   withdraw,
	}
	commandtypes.AddFromFlag(cmd)
	addAmountFlag(cmd)
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	execName, _ := cmd.Flags().GetString("exec")
	amount, ok := parseAmount(cmd)
	if !ok {
		return
	}
	commandtypes.RunTx(cmd, ct.CoinsX, "Withdraw", &ct.AssetsWithdraw{ExecName: execName, Amount: amount})
}

// BalanceCmd get balance of addresses
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of account addresses",
		Run:   balance,
	}
	cmd.Flags().StringSliceP("addr", "a", nil, "account addresses, comma separated")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", "executor name, empty for the coins account")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addrs, _ := cmd.Flags().GetStringSlice("addr")
	execName, _ := cmd.Flags().GetString("exec")
	params := &ct.ReqBalance{Addresses: addrs, Execer: execName}
	commandtypes.RunQuery(cmd, ct.CoinsX, "GetBalance", params, parseBalance)
}

func parseBalance(reply types.Message) interface{} {
	res := reply.(*ct.ReplyAccounts)
	result := make([]*commandtypes.AccountResult, 0, len(res.Accs))
	for _, acc := range res.Accs {
		result = append(result, commandtypes.DecodeAccount(acc))
	}
	return result
}
