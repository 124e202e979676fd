// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor luckynumber 分档位的奖池抽奖合约。

用户按档位缴纳固定的入场费并选一个号码，奖池达到门槛后由 triggerer 开奖，
中奖者平分奖池，无人中奖时奖池滚入下一轮，每次开奖给 triggerer 一笔手续费。
*/
package executor

import (
	drivers "github.com/33cn/luckynumber/system/dapp"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
	log "github.com/inconshreveable/log15"
)

var llog = log.New("module", "execs.luckynumber")

var driverName = ty.LuckyNumberX

// 配置文件中的 [luckynumber]，用于生成创建合约的交易
var genesisInit *ty.LuckyInit

type tierSubConfig struct {
	EntryFee     int64  `toml:"entryFee"`
	TriggererFee int64  `toml:"triggererFee"`
	MinEntries   uint32 `toml:"minEntries"`
	MaxNumber    uint32 `toml:"maxNumber"`
}

type subConfig struct {
	Triggerer   string           `toml:"triggerer"`
	TokenExec   string           `toml:"tokenExec"`
	TokenSymbol string           `toml:"tokenSymbol"`
	Entropy     uint64           `toml:"entropy"`
	Tiers       []*tierSubConfig `toml:"tiers"`
}

//Init 注册驱动，并读取创建合约的默认参数
func Init(name string, cfg *types.Config) error {
	if name != driverName {
		panic("luckynumber can't be rename")
	}
	var sub subConfig
	err := cfg.GetSubConfig(driverName, &sub)
	switch {
	case err == types.ErrConfigNotFound:
		genesisInit = nil
	case err != nil:
		return err
	default:
		genesisInit = sub.toInit()
	}
	drivers.Register(driverName, newLuckyNumber, 0)
	return nil
}

func (sub *subConfig) toInit() *ty.LuckyInit {
	in := &ty.LuckyInit{
		Triggerer:   sub.Triggerer,
		TokenExec:   sub.TokenExec,
		TokenSymbol: sub.TokenSymbol,
		Entropy:     sub.Entropy,
	}
	for _, t := range sub.Tiers {
		in.Tiers = append(in.Tiers, &ty.TierConfig{
			EntryFee:     t.EntryFee,
			TriggererFee: t.TriggererFee,
			MinEntries:   t.MinEntries,
			MaxNumber:    t.MaxNumber,
		})
	}
	return in
}

//GenesisInit 配置文件中的创建参数，没有配置时返回 nil
func GenesisInit() *ty.LuckyInit {
	return genesisInit
}

//GetName 执行器名
func GetName() string {
	return driverName
}

//LuckyNumber 执行器
type LuckyNumber struct {
	drivers.DriverBase
}

func newLuckyNumber() drivers.Driver {
	l := &LuckyNumber{}
	l.SetChild(l)
	l.SetExecutorType(types.LoadExecutorType(driverName))
	return l
}

//GetDriverName 驱动名
func (l *LuckyNumber) GetDriverName() string {
	return driverName
}

//CheckTx 只检查 payload 能否解析
func (l *LuckyNumber) CheckTx(tx *types.Transaction, index int) error {
	_, _, err := l.GetExecutorType().DecodePayloadValue(tx)
	return err
}
