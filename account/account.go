// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现资产账户的读写：
普通账户  mavl-<execer>-<symbol>-<addr>
执行器子账户  mavl-<execer>-<symbol>-exec-<execaddr>:<addr>
*/
package account

import (
	"fmt"
	"strings"

	dbm "github.com/33cn/luckynumber/common/db"
	"github.com/33cn/luckynumber/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db                   dbm.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
	execer               string
	symbol               string
}

//NewAccountDB 创建某个资产的账户数据库，execer 与 symbol 中不允许出现 "-"
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	if execer == "" || strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	prefix := SymbolPrefix(execer, symbol)
	acc := &DB{
		accountKeyPerfix:     []byte(prefix),
		execAccountKeyPerfix: append([]byte(prefix), []byte("exec-")...),
		execer:               execer,
		symbol:               symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

//SetDB 设置状态数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//Symbol 资产名称
func (acc *DB) Symbol() string {
	return acc.symbol
}

//LoadAccount 读取账户，不存在时返回余额为0的账户
func (acc *DB) LoadAccount(addr string) (*types.Account, error) {
	return acc.load(acc.AccountKey(addr), addr)
}

func (acc *DB) load(key []byte, addr string) (*types.Account, error) {
	value, err := acc.db.Get(key)
	if err == dbm.ErrNotFoundInDb || err == types.ErrNotFound {
		return &types.Account{Addr: addr}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load account %s", addr)
	}
	var acc1 types.Account
	if err = types.Decode(value, &acc1); err != nil {
		alog.Error("load account", "addr", addr, "error", err)
		return nil, errors.Wrapf(types.ErrDecode, "account %s", addr)
	}
	return &acc1, nil
}

//LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) (accs []*types.Account, err error) {
	for _, addr := range addrs {
		acc1, err := acc.LoadAccount(addr)
		if err != nil {
			return nil, err
		}
		accs = append(accs, acc1)
	}
	return accs, nil
}

//CheckTransfer 检查from是否有足够的余额
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return err
	}
	if accFrom.GetBalance() < amount {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 普通账户间转账
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return nil, err
	}
	accTo, err := acc.LoadAccount(to)
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
	copyfrom := *accFrom
	copyto := *accTo
	accFrom.Balance -= amount
	accTo.Balance = toBalance

	if err := acc.SaveAccount(accFrom); err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{
		{Ty: types.TyLogTransfer, Log: types.Encode(&types.ReceiptAccountTransfer{Prev: &copyfrom, Current: accFrom})},
		{Ty: types.TyLogTransfer, Log: types.Encode(&types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo})},
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//GenesisInit 给地址增发资产，只在本地链初始化和测试时使用
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accTo, err := acc.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	copyto := *accTo
	if accTo.Balance, err = types.SafeAdd(accTo.GetBalance(), amount); err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	return acc.balanceReceipt(types.TyLogGenesisTransfer, accTo, &types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo}), nil
}

//GenesisInitExec 增发资产并直接存入 addr 在 execaddr 下的子账户
func (acc *DB) GenesisInitExec(addr string, amount int64, execaddr string) (*types.Receipt, error) {
	receipt, err := acc.GenesisInit(execaddr, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.ExecDeposit(addr, execaddr, amount)
	if err != nil {
		return nil, err
	}
	for _, l := range receipt2.Logs {
		l.Ty = types.TyLogGenesisDeposit
	}
	return types.MergeReceipt(receipt, receipt2), nil
}

func (acc *DB) balanceReceipt(ty int32, acc1 *types.Account, r proto.Message) *types.Receipt {
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{{Ty: ty, Log: types.Encode(r)}},
	}
}

//SaveAccount 写入状态数据库
func (acc *DB) SaveAccount(acc1 *types.Account) error {
	for _, kv := range acc.GetKVSet(acc1) {
		if err := acc.db.Set(kv.GetKey(), kv.GetValue()); err != nil {
			return errors.Wrapf(err, "save account %s", acc1.Addr)
		}
	}
	return nil
}

//GetKVSet 账户对应的kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	return []*types.KeyValue{{Key: acc.AccountKey(acc1.Addr), Value: types.Encode(acc1)}}
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

//SymbolPrefix 账户key前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}

//SymbolExecPrefix 执行器子账户key前缀
func SymbolExecPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-exec", execer, symbol)
}
