// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/luckynumber/types"
	"github.com/golang/protobuf/proto"
)

// CoinsAction coins 交易
type CoinsAction struct {
	Ty             int32                 `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer       *AssetsTransfer       `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Genesis        *AssetsGenesis        `protobuf:"bytes,3,opt,name=genesis,proto3" json:"genesis,omitempty"`
	Withdraw       *AssetsWithdraw       `protobuf:"bytes,4,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
	TransferToExec *AssetsTransferToExec `protobuf:"bytes,5,opt,name=transferToExec,proto3" json:"transferToExec,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

// GetTy action 类型
func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// AssetsTransfer 转账
type AssetsTransfer struct {
	Amount int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	To     string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *AssetsTransfer) Reset()         { *m = AssetsTransfer{} }
func (m *AssetsTransfer) String() string { return proto.CompactTextString(m) }
func (*AssetsTransfer) ProtoMessage()    {}

// AssetsGenesis 增发
type AssetsGenesis struct {
	Amount int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	To     string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *AssetsGenesis) Reset()         { *m = AssetsGenesis{} }
func (m *AssetsGenesis) String() string { return proto.CompactTextString(m) }
func (*AssetsGenesis) ProtoMessage()    {}

// AssetsWithdraw 从执行器取回
type AssetsWithdraw struct {
	Amount   int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	ExecName string `protobuf:"bytes,2,opt,name=execName,proto3" json:"execName,omitempty"`
}

func (m *AssetsWithdraw) Reset()         { *m = AssetsWithdraw{} }
func (m *AssetsWithdraw) String() string { return proto.CompactTextString(m) }
func (*AssetsWithdraw) ProtoMessage()    {}

// AssetsTransferToExec 转入执行器
type AssetsTransferToExec struct {
	Amount   int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	ExecName string `protobuf:"bytes,2,opt,name=execName,proto3" json:"execName,omitempty"`
}

func (m *AssetsTransferToExec) Reset()         { *m = AssetsTransferToExec{} }
func (m *AssetsTransferToExec) String() string { return proto.CompactTextString(m) }
func (*AssetsTransferToExec) ProtoMessage()    {}

// ReqBalance 查询余额，Execer 为空时查 coins 账户，否则查执行器子账户
type ReqBalance struct {
	Addresses []string `protobuf:"bytes,1,rep,name=addresses,proto3" json:"addresses,omitempty"`
	Execer    string   `protobuf:"bytes,2,opt,name=execer,proto3" json:"execer,omitempty"`
}

func (m *ReqBalance) Reset()         { *m = ReqBalance{} }
func (m *ReqBalance) String() string { return proto.CompactTextString(m) }
func (*ReqBalance) ProtoMessage()    {}

// ReplyAccounts 账户列表
type ReplyAccounts struct {
	Accs []*types.Account `protobuf:"bytes,1,rep,name=accs,proto3" json:"accs,omitempty"`
}

func (m *ReplyAccounts) Reset()         { *m = ReplyAccounts{} }
func (m *ReplyAccounts) String() string { return proto.CompactTextString(m) }
func (*ReplyAccounts) ProtoMessage()    {}
