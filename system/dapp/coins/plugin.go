// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 内置货币插件
package coins

import (
	"github.com/33cn/luckynumber/pluginmgr"
	"github.com/33cn/luckynumber/system/dapp/coins/executor"
	"github.com/33cn/luckynumber/system/dapp/commands"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "coins",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.CoinsCmd,
	})
}
