// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/33cn/luckynumber/types"
	"github.com/spf13/cobra"
)

//PluginBase 插件的公共实现
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, cfg *types.Config) error
	Cmd      func() *cobra.Command
}

//GetName 插件名
func (p *PluginBase) GetName() string {
	return p.Name
}

//GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

//InitExec 初始化执行器
func (p *PluginBase) InitExec(cfg *types.Config) error {
	if p.Exec == nil {
		return nil
	}
	return p.Exec(p.ExecName, cfg)
}

//AddCmd 挂载命令行
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
