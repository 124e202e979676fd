// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/luckynumber/common/address"
	drivers "github.com/33cn/luckynumber/system/dapp"
	ct "github.com/33cn/luckynumber/system/dapp/coins/types"
	"github.com/33cn/luckynumber/types"
)

//Exec_Transfer 转账，收款方是执行器地址时转入发送者在该执行器的子账户
func (c *Coins) Exec_Transfer(transfer *ct.AssetsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	to, err := address.NormalizeAddress(transfer.To)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	if drivers.IsDriverAddress(to, c.GetHeight()) {
		return c.GetCoinsAccount().TransferToExec(tx.From, to, transfer.Amount)
	}
	return c.GetCoinsAccount().Transfer(tx.From, to, transfer.Amount)
}

//Exec_TransferToExec 把资产转入执行器，记在发送者的执行器子账户上
func (c *Coins) Exec_TransferToExec(transfer *ct.AssetsTransferToExec, tx *types.Transaction, index int) (*types.Receipt, error) {
	if _, err := drivers.LoadDriver(transfer.ExecName, c.GetHeight()); err != nil {
		return nil, types.ErrExecNotFound
	}
	execaddr := drivers.ExecAddress(transfer.ExecName)
	return c.GetCoinsAccount().TransferToExec(tx.From, execaddr, transfer.Amount)
}

//Exec_Withdraw 从执行器子账户取回
func (c *Coins) Exec_Withdraw(withdraw *ct.AssetsWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	if _, err := drivers.LoadDriver(withdraw.ExecName, c.GetHeight()); err != nil {
		return nil, types.ErrExecNotFound
	}
	execaddr := drivers.ExecAddress(withdraw.ExecName)
	return c.GetCoinsAccount().TransferWithdraw(tx.From, execaddr, withdraw.Amount)
}

//Exec_Genesis 增发，只有配置的增发地址可以调用
func (c *Coins) Exec_Genesis(genesis *ct.AssetsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if genesisAddr == "" || tx.From != genesisAddr {
		clog.Error("Exec_Genesis", "from", tx.From)
		return nil, types.ErrNotAllow
	}
	to, err := address.NormalizeAddress(genesis.To)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().GenesisInit(to, genesis.Amount)
}
