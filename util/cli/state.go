// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/luckynumber/common"
	"github.com/33cn/luckynumber/system/dapp"
	commandtypes "github.com/33cn/luckynumber/system/dapp/commands/types"
	"github.com/33cn/luckynumber/types"
	"github.com/spf13/cobra"
)

// StateCmd state db commands
func StateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect the local state db",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		DumpStateCmd(),
		HeightCmd(),
		DriversCmd(),
	)
	return cmd
}

type kvResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DumpStateCmd dump state under a prefix
func DumpStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump state keys and hex values under a prefix",
		Run:   dumpState,
	}
	cmd.Flags().StringP("prefix", "p", string(types.StatePrefix), "key prefix")
	return cmd
}

func dumpState(cmd *cobra.Command, args []string) {
	prefix, _ := cmd.Flags().GetString("prefix")
	node, err := commandtypes.OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer node.Close()
	kvs, err := node.Exec.DumpState([]byte(prefix))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	result := make([]*kvResult, 0, len(kvs))
	for _, kv := range kvs {
		result = append(result, &kvResult{Key: string(kv.Key), Value: common.ToHex(kv.Value)})
	}
	commandtypes.PrintJSON(result)
}

// HeightCmd executed tx count
func HeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Number of executed transactions",
		Run: func(cmd *cobra.Command, args []string) {
			node, err := commandtypes.OpenNode(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			defer node.Close()
			fmt.Println(node.Exec.Height())
		},
	}
}

// ConfigCmd print the default config
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default_config",
		Short: "Print the default config",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(types.GetDefaultCfgstring())
		},
	}
}

// DriversCmd registered executors
func DriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "Registered executors and their addresses",
		Run: func(cmd *cobra.Command, args []string) {
			node, err := commandtypes.OpenNode(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			defer node.Close()
			result := make(map[string]string)
			for _, name := range dapp.DriverNames() {
				result[name] = dapp.ExecAddress(name)
			}
			commandtypes.PrintJSON(result)
		},
	}
}
