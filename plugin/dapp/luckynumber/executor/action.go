// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/luckynumber/account"
	dbm "github.com/33cn/luckynumber/common/db"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/system/dapp"
	"github.com/33cn/luckynumber/types"
)

// Action 一笔交易的执行上下文，写入的 kv 和日志最后合成收据
type Action struct {
	db        dbm.KV
	fromaddr  string
	blocktime int64
	height    int64
	execaddr  string
	index     int
	kvs       []*types.KeyValue
	logs      []*types.ReceiptLog
}

// NewAction new
func NewAction(l *LuckyNumber, tx *types.Transaction, index int) *Action {
	return &Action{
		db:        l.GetStateDB(),
		fromaddr:  tx.From,
		blocktime: l.GetBlockTime(),
		height:    l.GetHeight(),
		execaddr:  dapp.ExecAddress(string(tx.Execer)),
		index:     index,
	}
}

func (a *Action) save(key []byte, msg types.Message) error {
	value := types.Encode(msg)
	if err := a.db.Set(key, value); err != nil {
		return err
	}
	a.kvs = append(a.kvs, &types.KeyValue{Key: key, Value: value})
	return nil
}

func (a *Action) setRaw(key, value []byte) error {
	if err := a.db.Set(key, value); err != nil {
		return err
	}
	a.kvs = append(a.kvs, &types.KeyValue{Key: key, Value: value})
	return nil
}

func (a *Action) addLog(logTy int32, msg types.Message) {
	a.logs = append(a.logs, &types.ReceiptLog{Ty: logTy, Log: types.Encode(msg)})
}

func (a *Action) merge(receipt *types.Receipt) {
	if receipt == nil {
		return
	}
	a.kvs = append(a.kvs, receipt.KV...)
	a.logs = append(a.logs, receipt.Logs...)
}

func (a *Action) receipt() *types.Receipt {
	return &types.Receipt{Ty: types.ExecOk, KV: a.kvs, Logs: a.logs}
}

// 合约使用的代币账户
func (a *Action) tokenAccount(cfg *ty.Config) (*account.DB, error) {
	return account.NewAccountDB(cfg.TokenExec, cfg.TokenSymbol, a.db)
}

// 合约在执行器下的子账户和用户子账户之间转账，金额为 0 时什么都不做
func (a *Action) pay(acc *account.DB, from, to string, amount int64) error {
	if amount == 0 {
		return nil
	}
	receipt, err := acc.ExecTransfer(from, to, a.execaddr, amount)
	if err != nil {
		llog.Error("pay", "from", from, "to", to, "amount", amount, "err", err)
		return err
	}
	a.merge(receipt)
	return nil
}
