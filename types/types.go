// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 实现了基础结构体、接口、常量等的定义
package types

import (
	"github.com/33cn/luckynumber/common"
	"github.com/golang/protobuf/proto"
)

// Message 声明proto.Message
type Message proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//CheckAmount 检查金额是否合法
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

//SafeAdd 带溢出检查的加法，金额都是非负数
func SafeAdd(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrAmount
	}
	c := a + b
	if c < a {
		return 0, ErrAmountOverflow
	}
	return c, nil
}

//SafeSub 带下溢检查的减法
func SafeSub(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrAmount
	}
	if a < b {
		return 0, ErrAmountUnderflow
	}
	return a - b, nil
}

//SafeMul 带溢出检查的乘法，金额都是非负数
func SafeMul(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrAmount
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a {
		return 0, ErrAmountOverflow
	}
	return c, nil
}

//Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return common.Sha256(Encode(tx))
}

//NewErrReceipt  new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	berr := err.Error()
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(berr)}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

//MergeReceipt 合并两个receipt, 结果保存在第一个里面
func MergeReceipt(receipt, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt
	}
	if receipt == nil {
		return receipt2
	}
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	receipt.KV = append(receipt.KV, receipt2.KV...)
	return receipt
}
