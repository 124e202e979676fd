// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	commandtypes "github.com/33cn/luckynumber/system/dapp/commands/types"
	"github.com/33cn/luckynumber/types"
	"github.com/spf13/cobra"
)

// QueryCmd query the contract
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query luckynumber state",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryConfigCmd(),
		QueryTiersCmd(),
		QueryTriggersCmd(),
		QueryRoundsCmd(),
		QueryBetsCmd(),
	)
	return cmd
}

// QueryConfigCmd contract config
func QueryConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Owner, triggerer and token of the contract",
		Run: func(cmd *cobra.Command, args []string) {
			commandtypes.RunQuery(cmd, ty.LuckyNumberX, "GetConfig", &types.ReqNil{}, nil)
		},
	}
}

// QueryTiersCmd tier configs
func QueryTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Current config of every tier",
		Run: func(cmd *cobra.Command, args []string) {
			commandtypes.RunQuery(cmd, ty.LuckyNumberX, "GetTierConfigs", &types.ReqNil{}, nil)
		},
	}
}

// QueryTriggersCmd draw readiness
func QueryTriggersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triggers",
		Short: "Whether the open round of each tier reaches the draw threshold",
		Run: func(cmd *cobra.Command, args []string) {
			commandtypes.RunQuery(cmd, ty.LuckyNumberX, "CheckTriggers", &types.ReqNil{}, nil)
		},
	}
}

// QueryRoundsCmd rounds of a tier
func QueryRoundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "Rounds of a tier, by number or newest first by page",
		Run:   queryRounds,
	}
	cmd.Flags().Int32P("tier", "t", 0, "tier id")
	cmd.MarkFlagRequired("tier")
	cmd.Flags().UintSliceP("rounds", "r", nil, "round numbers, comma separated")
	cmd.Flags().Uint32P("page", "p", 0, "page, from 0")
	cmd.Flags().Uint32P("size", "s", 0, "page size")
	return cmd
}

func queryRounds(cmd *cobra.Command, args []string) {
	tier, _ := cmd.Flags().GetInt32("tier")
	rounds, _ := cmd.Flags().GetUintSlice("rounds")
	page, _ := cmd.Flags().GetUint32("page")
	size, _ := cmd.Flags().GetUint32("size")
	if len(rounds) == 0 {
		params := &ty.ReqPaginatedRounds{Tier: tier, Page: page, PageSize: size}
		commandtypes.RunQuery(cmd, ty.LuckyNumberX, "GetPaginatedRounds", params, nil)
		return
	}
	params := &ty.ReqRounds{Tier: tier}
	for _, r := range rounds {
		params.Rounds = append(params.Rounds, uint32(r))
	}
	commandtypes.RunQuery(cmd, ty.LuckyNumberX, "GetRounds", params, nil)
}

// QueryBetsCmd bets of an address
func QueryBetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bets",
		Short: "Bets of an address, needs its viewing key",
		Run:   queryBets,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("key", "k", "", "viewing key")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringSliceP("refs", "r", nil, "tier:round pairs, comma separated")
	cmd.Flags().Uint32P("page", "p", 0, "page, from 0")
	cmd.Flags().Uint32P("size", "s", 0, "page size, 0 lists by refs or all")
	return cmd
}

func queryBets(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	key, _ := cmd.Flags().GetString("key")
	refs, _ := cmd.Flags().GetStringSlice("refs")
	page, _ := cmd.Flags().GetUint32("page")
	size, _ := cmd.Flags().GetUint32("size")
	if size > 0 {
		params := &ty.ReqPaginatedUserBets{Addr: addr, Key: key, Page: page, PageSize: size}
		commandtypes.RunQuery(cmd, ty.LuckyNumberX, "GetPaginatedUserBets", params, nil)
		return
	}
	params := &ty.ReqUserBets{Addr: addr, Key: key}
	for _, s := range refs {
		ref, err := parseBetRef(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		params.Refs = append(params.Refs, ref)
	}
	commandtypes.RunQuery(cmd, ty.LuckyNumberX, "GetUserBets", params, nil)
}

func parseBetRef(s string) (*ty.BetRef, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("bad ref %q, want tier:round", s)
	}
	tier, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad tier in %q: %v", s, err)
	}
	round, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad round in %q: %v", s, err)
	}
	return &ty.BetRef{Tier: int32(tier), Round: uint32(round)}, nil
}
