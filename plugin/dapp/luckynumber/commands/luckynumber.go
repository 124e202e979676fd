// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands luckynumber 命令行
package commands

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/33cn/luckynumber/plugin/dapp/luckynumber/executor"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	commandtypes "github.com/33cn/luckynumber/system/dapp/commands/types"
	"github.com/33cn/luckynumber/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// LuckyNumberCmd luckynumber command
func LuckyNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "luckynumber",
		Short: "Tiered lucky number lottery",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitCmd(),
		BetCmd(),
		WithdrawCmd(),
		DrawCmd(),
		ViewingKeyCmd(),
		OwnerCmd(),
		QueryCmd(),
	)
	return cmd
}

// 没有指定时随机生成
func randEntropy() uint64 {
	id := uuid.New()
	return binary.BigEndian.Uint64(id[:8])
}

// InitCmd init the contract
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Init the contract with the tiers of the [luckynumber] config section",
		Run:   luckyInit,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().StringP("triggerer", "t", "", "triggerer address, overrides the config")
	cmd.Flags().Uint64P("entropy", "e", 0, "init entropy, overrides the config")
	return cmd
}

func luckyInit(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	triggerer, _ := cmd.Flags().GetString("triggerer")
	entropy, _ := cmd.Flags().GetUint64("entropy")

	node, err := commandtypes.OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer node.Close()
	genesis := executor.GenesisInit()
	if genesis == nil {
		fmt.Fprintln(os.Stderr, "no [luckynumber] section in config")
		return
	}
	in := *genesis
	if triggerer != "" {
		in.Triggerer = triggerer
	}
	if entropy != 0 {
		in.Entropy = entropy
	}
	res, err := node.SendTx(from, ty.LuckyNumberX, "Init", &in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.PrintJSON(res)
}

// BetCmd place a bet
func BetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Pick a number in the open round of a tier",
		Run:   bet,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().Int32P("tier", "t", 0, "tier id")
	cmd.MarkFlagRequired("tier")
	cmd.Flags().Uint32P("number", "n", 0, "picked number, 1 to max number of the tier")
	cmd.MarkFlagRequired("number")
	cmd.Flags().StringP("amount", "a", "", "entry fee in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func bet(cmd *cobra.Command, args []string) {
	tier, _ := cmd.Flags().GetInt32("tier")
	number, _ := cmd.Flags().GetUint32("number")
	s, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseAmount(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, "amount", s, err)
		return
	}
	params := &ty.LuckyBet{Tier: tier, Number: number, Amount: amount}
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "Bet", params)
}

// WithdrawCmd refund or redeem a bet
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Refund a bet of an open round or redeem the reward of a drawn round",
		Run:   withdraw,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().Int32P("tier", "t", 0, "tier id")
	cmd.MarkFlagRequired("tier")
	cmd.Flags().Uint32P("round", "r", 0, "round number")
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	tier, _ := cmd.Flags().GetInt32("tier")
	round, _ := cmd.Flags().GetUint32("round")
	params := &ty.LuckyWithdraw{Tier: tier, Round: round}
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "Withdraw", params)
}

// DrawCmd trigger the draw of tiers
func DrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Trigger the draw of tiers, triggerer only",
		Run:   draw,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().IntSliceP("tiers", "t", nil, "tier ids, comma separated")
	cmd.MarkFlagRequired("tiers")
	cmd.Flags().Uint64P("entropy", "e", 0, "draw entropy, random when empty")
	return cmd
}

func draw(cmd *cobra.Command, args []string) {
	tiers, _ := cmd.Flags().GetIntSlice("tiers")
	entropy, _ := cmd.Flags().GetUint64("entropy")
	if entropy == 0 {
		entropy = randEntropy()
	}
	params := &ty.LuckyTriggerDraw{Entropy: entropy}
	for _, t := range tiers {
		params.Tiers = append(params.Tiers, int32(t))
	}
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "TriggerDraw", params)
}

// ViewingKeyCmd viewing key management
func ViewingKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewkey",
		Short: "Viewing key for private queries",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateViewingKeyCmd(),
		SetViewingKeyCmd(),
	)
	return cmd
}

// CreateViewingKeyCmd create a viewing key
func CreateViewingKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new viewing key, the key is in the receipt log",
		Run:   createViewingKey,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().StringP("entropy", "e", "", "entropy string, random when empty")
	return cmd
}

func createViewingKey(cmd *cobra.Command, args []string) {
	entropy, _ := cmd.Flags().GetString("entropy")
	if entropy == "" {
		entropy = uuid.New().String()
	}
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "CreateViewingKey", &ty.LuckyCreateViewingKey{Entropy: entropy})
}

// SetViewingKeyCmd set a viewing key
func SetViewingKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the viewing key",
		Run:   setViewingKey,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().StringP("key", "k", "", "viewing key")
	cmd.MarkFlagRequired("key")
	return cmd
}

func setViewingKey(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "SetViewingKey", &ty.LuckySetViewingKey{Key: key})
}

// OwnerCmd owner operations
func OwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Owner operations",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		ChangeOwnerCmd(),
		ChangeTriggererCmd(),
		ChangeTierCmd(),
	)
	return cmd
}

// ChangeOwnerCmd change owner
func ChangeOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change_owner",
		Short: "Transfer the ownership",
		Run:   changeOwner,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().StringP("owner", "o", "", "new owner address")
	cmd.MarkFlagRequired("owner")
	return cmd
}

func changeOwner(cmd *cobra.Command, args []string) {
	owner, _ := cmd.Flags().GetString("owner")
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "ChangeOwner", &ty.LuckyChangeOwner{Owner: owner})
}

// ChangeTriggererCmd change triggerer
func ChangeTriggererCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change_triggerer",
		Short: "Change the triggerer",
		Run:   changeTriggerer,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().StringP("triggerer", "t", "", "new triggerer address")
	cmd.MarkFlagRequired("triggerer")
	return cmd
}

func changeTriggerer(cmd *cobra.Command, args []string) {
	triggerer, _ := cmd.Flags().GetString("triggerer")
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "ChangeTriggerer", &ty.LuckyChangeTriggerer{Triggerer: triggerer})
}

// ChangeTierCmd change tier config
func ChangeTierCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change_tier",
		Short: "Change the config of a tier, applies from the next round",
		Run:   changeTier,
	}
	commandtypes.AddFromFlag(cmd)
	cmd.Flags().Int32P("tier", "t", 0, "tier id")
	cmd.MarkFlagRequired("tier")
	cmd.Flags().StringP("entryFee", "e", "", "entry fee in coins")
	cmd.MarkFlagRequired("entryFee")
	cmd.Flags().StringP("triggererFee", "g", "0", "triggerer fee in coins")
	cmd.Flags().Uint32P("minEntries", "m", 0, "min entries to draw")
	cmd.Flags().Uint32P("maxNumber", "n", 0, "max number")
	cmd.MarkFlagRequired("maxNumber")
	return cmd
}

func changeTier(cmd *cobra.Command, args []string) {
	tier, _ := cmd.Flags().GetInt32("tier")
	entry, _ := cmd.Flags().GetString("entryFee")
	trigger, _ := cmd.Flags().GetString("triggererFee")
	minEntries, _ := cmd.Flags().GetUint32("minEntries")
	maxNumber, _ := cmd.Flags().GetUint32("maxNumber")
	entryFee, err := types.ParseAmount(entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, "entryFee", entry, err)
		return
	}
	triggererFee, err := types.ParseAmount(trigger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "triggererFee", trigger, err)
		return
	}
	params := &ty.LuckyChangeTierConfig{
		Tier: tier,
		Config: &ty.TierConfig{
			EntryFee:     entryFee,
			TriggererFee: triggererFee,
			MinEntries:   minEntries,
			MaxNumber:    maxNumber,
		},
	}
	commandtypes.RunTx(cmd, ty.LuckyNumberX, "ChangeTierConfig", params)
}
