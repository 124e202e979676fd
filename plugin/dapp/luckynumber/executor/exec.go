// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

//Exec_Init 创建合约
func (l *LuckyNumber) Exec_Init(payload *ty.LuckyInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).Init(payload)
}

//Exec_Bet 下注
func (l *LuckyNumber) Exec_Bet(payload *ty.LuckyBet, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).Bet(payload)
}

//Exec_Withdraw 撤回或领奖
func (l *LuckyNumber) Exec_Withdraw(payload *ty.LuckyWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).Withdraw(payload)
}

//Exec_TriggerDraw 开奖
func (l *LuckyNumber) Exec_TriggerDraw(payload *ty.LuckyTriggerDraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).TriggerDraw(payload)
}

func (l *LuckyNumber) Exec_CreateViewingKey(payload *ty.LuckyCreateViewingKey, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).CreateViewingKey(payload)
}

func (l *LuckyNumber) Exec_SetViewingKey(payload *ty.LuckySetViewingKey, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).SetViewingKey(payload)
}

func (l *LuckyNumber) Exec_ChangeOwner(payload *ty.LuckyChangeOwner, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).ChangeOwner(payload)
}

func (l *LuckyNumber) Exec_ChangeTriggerer(payload *ty.LuckyChangeTriggerer, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).ChangeTriggerer(payload)
}

func (l *LuckyNumber) Exec_ChangeTierConfig(payload *ty.LuckyChangeTierConfig, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).ChangeTierConfig(payload)
}
