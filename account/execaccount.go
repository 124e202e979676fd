// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/luckynumber/common/address"
	"github.com/33cn/luckynumber/types"
	"github.com/pkg/errors"
)

// LoadExecAccount Load exec account from address and exec
func (acc *DB) LoadExecAccount(addr, execaddr string) (*types.Account, error) {
	return acc.load(acc.execAccountKey(addr, execaddr), addr)
}

// SaveExecAccount save exec account data to db
func (acc *DB) SaveExecAccount(execaddr string, acc1 *types.Account) error {
	for _, kv := range acc.GetExecKVSet(execaddr, acc1) {
		if err := acc.db.Set(kv.GetKey(), kv.GetValue()); err != nil {
			return errors.Wrapf(err, "save exec account %s", acc1.Addr)
		}
	}
	return nil
}

// GetExecKVSet 将执行账户数据转为数据库存储kv
func (acc *DB) GetExecKVSet(execaddr string, acc1 *types.Account) (kvset []*types.KeyValue) {
	return []*types.KeyValue{{Key: acc.execAccountKey(acc1.Addr, execaddr), Value: types.Encode(acc1)}}
}

func (acc *DB) execAccountKey(address, execaddr string) (key []byte) {
	key = make([]byte, 0, len(acc.execAccountKeyPerfix)+len(execaddr)+len(address)+1)
	key = append(key, acc.execAccountKeyPerfix...)
	key = append(key, []byte(execaddr)...)
	key = append(key, ':')
	key = append(key, []byte(address)...)
	return key
}

// ExecAddress 根据执行器名称获取执行器地址
func (acc *DB) ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// TransferToExec 把普通账户的资产转入执行器，记到 from 在该执行器下的子账户
func (acc *DB) TransferToExec(from, execaddr string, amount int64) (*types.Receipt, error) {
	receipt, err := acc.Transfer(from, execaddr, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.ExecDeposit(from, execaddr, amount)
	if err != nil {
		return nil, err
	}
	return types.MergeReceipt(receipt, receipt2), nil
}

// TransferWithdraw 从执行器子账户取回到普通账户
func (acc *DB) TransferWithdraw(from, execaddr string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(execaddr, from, amount); err != nil {
		return nil, err
	}
	receipt, err := acc.ExecWithdraw(execaddr, from, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.Transfer(execaddr, from, amount)
	if err != nil {
		return nil, err
	}
	return types.MergeReceipt(receipt, receipt2), nil
}

// ExecDeposit  在当前addr的execaddr地址中存款
func (acc *DB) ExecDeposit(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.updateExec(types.TyLogExecDeposit, addr, execaddr, amount)
}

// ExecWithdraw 执行撤回转帐
func (acc *DB) ExecWithdraw(execaddr, addr string, amount int64) (*types.Receipt, error) {
	return acc.updateExec(types.TyLogExecWithdraw, addr, execaddr, -amount)
}

func (acc *DB) updateExec(ty int32, addr, execaddr string, delta int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	amount := delta
	if amount < 0 {
		amount = -amount
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1, err := acc.LoadExecAccount(addr, execaddr)
	if err != nil {
		return nil, err
	}
	copyacc := *acc1
	if delta > 0 {
		acc1.Balance, err = types.SafeAdd(acc1.Balance, amount)
	} else {
		acc1.Balance, err = types.SafeSub(acc1.Balance, amount)
		if err == types.ErrAmountUnderflow {
			err = types.ErrNoBalance
		}
	}
	if err != nil {
		return nil, err
	}
	if err := acc.SaveExecAccount(execaddr, acc1); err != nil {
		return nil, err
	}
	r := &types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &copyacc, Current: acc1}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetExecKVSet(execaddr, acc1),
		Logs: []*types.ReceiptLog{{Ty: ty, Log: types.Encode(r)}},
	}, nil
}

// ExecTransfer 同一个执行器下两个子账户之间转账
func (acc *DB) ExecTransfer(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom, err := acc.LoadExecAccount(from, execaddr)
	if err != nil {
		return nil, err
	}
	accTo, err := acc.LoadExecAccount(to, execaddr)
	if err != nil {
		return nil, err
	}
	if accFrom.GetBalance() < amount {
		return nil, types.ErrNoBalance
	}
	toBalance, err := types.SafeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	copyaccFrom := *accFrom
	copyaccTo := *accTo
	accFrom.Balance -= amount
	accTo.Balance = toBalance

	if err := acc.SaveExecAccount(execaddr, accFrom); err != nil {
		return nil, err
	}
	if err := acc.SaveExecAccount(execaddr, accTo); err != nil {
		return nil, err
	}
	r1 := &types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &copyaccFrom, Current: accFrom}
	r2 := &types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &copyaccTo, Current: accTo}
	kv := acc.GetExecKVSet(execaddr, accFrom)
	kv = append(kv, acc.GetExecKVSet(execaddr, accTo)...)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: kv,
		Logs: []*types.ReceiptLog{
			{Ty: types.TyLogExecTransfer, Log: types.Encode(r1)},
			{Ty: types.TyLogExecTransfer, Log: types.Encode(r2)},
		},
	}, nil
}
