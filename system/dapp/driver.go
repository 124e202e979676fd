// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的公共部分：Driver 接口、DriverBase、驱动注册与反射分发
package dapp

import (
	"reflect"

	"github.com/33cn/luckynumber/account"
	dbm "github.com/33cn/luckynumber/common/db"
	"github.com/33cn/luckynumber/types"
	"github.com/go-stack/stack"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	//执行器的名称
	GetName() string
	SetName(string)
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	Allow(tx *types.Transaction, index int) error
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetActionName(tx *types.Transaction) string
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

//DriverBase 驱动的公共实现，具体驱动通过 SetChild 注册 Exec_xxx 与 Query_xxx 方法
type DriverBase struct {
	statedb      dbm.KV
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
	childValue   reflect.Value
	ety          types.ExecutorType
	funcmap      map[string]reflect.Method
}

//SetEnv 设置区块高度和区块时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//GetHeight 高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//SetExecutorType 设置执行器类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

//GetExecutorType 执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

//SetChild 设置子类，并收集子类的 Exec_ Query_ 方法
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = types.ListMethodByPrefix(e, "Exec_", "Query_")
}

//GetFuncMap 子类的方法
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

//GetName 执行器名称，没有设置时使用驱动名
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

//SetName 设置名称
func (d *DriverBase) SetName(name string) {
	d.name = name
}

//SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount != nil {
		d.coinsaccount.SetDB(db)
	}
}

//GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//GetCoinsAccount coins 账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		acc, err := account.NewAccountDB("coins", "bty", d.statedb)
		if err != nil {
			panic(err)
		}
		d.coinsaccount = acc
	}
	return d.coinsaccount
}

//Allow 只允许执行本执行器的交易
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if string(tx.GetExecer()) == d.GetName() {
		return nil
	}
	return types.ErrNotAllow
}

//CheckTx 默认不检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

//GetActionName action 名字
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

//Exec 解析交易，调用子类的 Exec_xxx(payload, tx, index)
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r, "stack", stack.Trace().TrimRuntime())
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := "Exec_" + name
	f, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := f.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	if r1 := valueret[0].Interface(); r1 != nil {
		r, ok := r1.(*types.Receipt)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		receipt = r
	}
	//参数2
	if r2 := valueret[1].Interface(); r2 != nil {
		r, ok := r2.(error)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		return nil, r
	}
	return receipt, nil
}
