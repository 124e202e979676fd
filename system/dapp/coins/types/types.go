// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的交易类型
package types

import (
	"github.com/33cn/luckynumber/types"
)

// CoinsX 执行器名
const CoinsX = "coins"

// action type
const (
	CoinsActionTransfer       = 1
	CoinsActionGenesis        = 2
	CoinsActionWithdraw       = 3
	CoinsActionTransferToExec = 10
)

var actionName = map[string]int32{
	"Transfer":       CoinsActionTransfer,
	"Genesis":        CoinsActionGenesis,
	"Withdraw":       CoinsActionWithdraw,
	"TransferToExec": CoinsActionTransferToExec,
}

// coins 只产生账户日志
var logmap = map[int64]*types.LogInfo{}

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType coins 执行器类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名
func (c *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload 获取交易结构体
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetTypeMap action 类型
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap 日志类型
func (c *CoinsType) GetLogMap() map[int64]*types.LogInfo {
	return logmap
}
