// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 本地节点的命令行：加载配置和日志，挂载各插件的命令
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/luckynumber/common/log"
	"github.com/33cn/luckynumber/pluginmgr"
	commandtypes "github.com/33cn/luckynumber/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

func newRootCmd(name string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   name,
		Short: name + " local node tools",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := commandtypes.LoadConfig(cmd)
			if err != nil {
				return
			}
			log.SetFileLog(cfg.Log)
		},
	}
	rootCmd.PersistentFlags().StringP("conf", "c", "", "config file, the default config when empty")
	rootCmd.PersistentFlags().String("datadir", "", "state db dir, overrides the config")
	rootCmd.PersistentFlags().Bool("metrics", false, "print exec metrics to stderr after the command")
	rootCmd.AddCommand(
		StateCmd(),
		ConfigCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

//Run 执行命令行
func Run(name string) {
	log.SetLogLevel("error")
	if err := newRootCmd(name).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
