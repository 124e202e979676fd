// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types luckynumber 执行器的交易、日志与查询结构
package types

import (
	"reflect"

	"github.com/33cn/luckynumber/types"
)

// LuckyNumberX 执行器名
const LuckyNumberX = "luckynumber"

// action type
const (
	LuckyActionInit = 1 + iota
	LuckyActionBet
	LuckyActionWithdraw
	LuckyActionTriggerDraw
	LuckyActionCreateViewingKey
	LuckyActionSetViewingKey
	LuckyActionChangeOwner
	LuckyActionChangeTriggerer
	LuckyActionChangeTierConfig
)

// log for luckynumber
const (
	TyLogLuckyInit       = 1601
	TyLogLuckyBet        = 1602
	TyLogLuckyWithdraw   = 1603
	TyLogLuckyRedeem     = 1604
	TyLogLuckyDraw       = 1605
	TyLogLuckyDrawResult = 1606
	TyLogLuckyViewingKey = 1607
	TyLogLuckyConfig     = 1608
)

// Round status
const (
	RoundOpen   = 1
	RoundClosed = 2
)

const (
	// EntropyCapacity 熵缓冲最多保留的下注号码个数
	EntropyCapacity = 6
	// EntropySize 每个熵条目的字节数
	EntropySize = 8
	// MaxPickNumber 单个档位最大可选号码
	MaxPickNumber = 10000
	// DefaultPageSize 分页查询默认条数
	DefaultPageSize = 10
	// MaxPageSize 分页查询最大条数
	MaxPageSize = 100
	// ViewingKeyPrefix 查看密钥前缀
	ViewingKeyPrefix = "api_key_"
)

var actionName = map[string]int32{
	"Init":             LuckyActionInit,
	"Bet":              LuckyActionBet,
	"Withdraw":         LuckyActionWithdraw,
	"TriggerDraw":      LuckyActionTriggerDraw,
	"CreateViewingKey": LuckyActionCreateViewingKey,
	"SetViewingKey":    LuckyActionSetViewingKey,
	"ChangeOwner":      LuckyActionChangeOwner,
	"ChangeTriggerer":  LuckyActionChangeTriggerer,
	"ChangeTierConfig": LuckyActionChangeTierConfig,
}

var logmap = map[int64]*types.LogInfo{
	TyLogLuckyInit:       {Ty: reflect.TypeOf(ReceiptLuckyInit{}), Name: "LogLuckyInit"},
	TyLogLuckyBet:        {Ty: reflect.TypeOf(ReceiptLuckyBet{}), Name: "LogLuckyBet"},
	TyLogLuckyWithdraw:   {Ty: reflect.TypeOf(ReceiptLuckySettle{}), Name: "LogLuckyWithdraw"},
	TyLogLuckyRedeem:     {Ty: reflect.TypeOf(ReceiptLuckySettle{}), Name: "LogLuckyRedeem"},
	TyLogLuckyDraw:       {Ty: reflect.TypeOf(ReceiptLuckyDraw{}), Name: "LogLuckyDraw"},
	TyLogLuckyDrawResult: {Ty: reflect.TypeOf(ReplyTriggerDraw{}), Name: "LogLuckyDrawResult"},
	TyLogLuckyViewingKey: {Ty: reflect.TypeOf(ReceiptLuckyViewingKey{}), Name: "LogLuckyViewingKey"},
	TyLogLuckyConfig:     {Ty: reflect.TypeOf(ReceiptLuckyConfig{}), Name: "LogLuckyConfig"},
}

func init() {
	types.RegistorExecutor(LuckyNumberX, NewType())
}

// LuckyNumberType 执行器类型
type LuckyNumberType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *LuckyNumberType {
	c := &LuckyNumberType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名
func (l *LuckyNumberType) GetName() string {
	return LuckyNumberX
}

// GetPayload 获取交易结构体
func (l *LuckyNumberType) GetPayload() types.Message {
	return &LuckyNumberAction{}
}

// GetTypeMap action 类型
func (l *LuckyNumberType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap 日志类型
func (l *LuckyNumberType) GetLogMap() map[int64]*types.LogInfo {
	return logmap
}
