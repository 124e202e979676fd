// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "reflect"

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
)

//log type
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//TyLogTransfer coins
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

//exec type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 状态数据库的key前缀
var (
	StatePrefix = []byte("mavl-")
)

//CalcStatePrefix 计算statedb key
func CalcStatePrefix(execer []byte) []byte {
	s := append([]byte{}, StatePrefix...)
	s = append(s, execer...)
	s = append(s, byte('-'))
	return s
}

//SystemLog 账户模块产生的日志
var SystemLog = map[int64]*LogInfo{
	TyLogErr:             {nil, "LogErr"},
	TyLogTransfer:        {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
	TyLogGenesis:         {nil, "LogGenesis"},
	TyLogDeposit:         {reflect.TypeOf(ReceiptAccountTransfer{}), "LogDeposit"},
	TyLogExecTransfer:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecTransfer"},
	TyLogExecWithdraw:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecWithdraw"},
	TyLogExecDeposit:     {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecDeposit"},
	TyLogGenesisTransfer: {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesisTransfer"},
	TyLogGenesisDeposit:  {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogGenesisDeposit"},
}
