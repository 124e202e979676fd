// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor coins 是内置货币的执行器，提供转账、转入执行器、从执行器取回与增发。
*/
package executor

import (
	drivers "github.com/33cn/luckynumber/system/dapp"
	ct "github.com/33cn/luckynumber/system/dapp/coins/types"
	"github.com/33cn/luckynumber/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

var driverName = ct.CoinsX

// 只有这个地址可以增发
var genesisAddr string

type subConfig struct {
	Genesis string `toml:"genesis"`
}

//Init 注册驱动
func Init(name string, cfg *types.Config) error {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	var sub subConfig
	if err := cfg.GetSubConfig(driverName, &sub); err != nil && err != types.ErrConfigNotFound {
		return err
	}
	genesisAddr = sub.Genesis
	drivers.Register(driverName, newCoins, 0)
	return nil
}

//SetGenesis 设置增发地址
func SetGenesis(addr string) {
	genesisAddr = addr
}

//GetName 执行器名
func GetName() string {
	return driverName
}

//Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

//GetDriverName 驱动名
func (c *Coins) GetDriverName() string {
	return driverName
}
