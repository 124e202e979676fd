// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package luckynumber 分档位的幸运数字彩票插件
package luckynumber

import (
	"github.com/33cn/luckynumber/plugin/dapp/luckynumber/commands"
	"github.com/33cn/luckynumber/plugin/dapp/luckynumber/executor"
	"github.com/33cn/luckynumber/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "luckynumber",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.LuckyNumberCmd,
	})
}
