// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行的宿主：按执行器名加载驱动，每笔交易在一个 StateDB 事务中执行，
// 失败时回滚，成功时整批写入底层 db。
package executor

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/33cn/luckynumber/common/address"
	dbm "github.com/33cn/luckynumber/common/db"
	"github.com/33cn/luckynumber/metrics"
	"github.com/33cn/luckynumber/system/dapp"
	"github.com/33cn/luckynumber/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// 当前执行到的高度，不属于状态数据
var heightKey = []byte("LastHeight")

// Option 执行器选项
type Option func(*Executor)

// WithClock 设置时钟
func WithClock(c Clock) Option {
	return func(e *Executor) {
		e.clock = c
	}
}

// WithMetrics 设置统计
func WithMetrics(m *metrics.ExecMetrics) Option {
	return func(e *Executor) {
		e.metrics = m
	}
}

// Executor 串行执行交易，每笔交易相当于一个区块
type Executor struct {
	mu      sync.Mutex
	db      dbm.DB
	clock   Clock
	metrics *metrics.ExecMetrics
	height  int64
}

// New 创建执行器，驱动需要事先通过 pluginmgr.InitExec 注册
func New(cfg *types.Exec, db dbm.DB, opts ...Option) (*Executor, error) {
	e := &Executor{db: db, clock: SystemClock{}}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = metrics.NewExecMetrics(cfg)
	}
	v, err := db.Get(heightKey)
	switch {
	case err == dbm.ErrNotFoundInDb:
	case err != nil:
		return nil, errors.Wrap(err, "load height")
	case len(v) != 8:
		return nil, errors.Wrap(types.ErrDecode, "load height")
	default:
		e.height = int64(binary.BigEndian.Uint64(v))
	}
	return e, nil
}

// Height 已经执行的交易数
func (e *Executor) Height() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

// Metrics 统计
func (e *Executor) Metrics() *metrics.ExecMetrics {
	return e.metrics
}

// ExecTx 执行一笔交易。失败时返回错误收据和包装过的错误，状态不会有任何改变
func (e *Executor) ExecTx(tx *types.Transaction) (receipt *types.Receipt, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tx == nil {
		return nil, types.ErrNilTransaction
	}
	start := time.Now()
	name := string(tx.GetExecer())
	action := "unknown"
	defer func() {
		e.metrics.ObserveTx(name, action, start, errors.Cause(err))
	}()

	from, err := address.NormalizeAddress(tx.GetFrom())
	if err != nil {
		return types.NewErrReceipt(types.ErrInvalidAddress), errors.Wrapf(types.ErrInvalidAddress, "tx from %q", tx.GetFrom())
	}
	ntx := *tx
	ntx.From = from

	height := e.height + 1
	driver, err := dapp.LoadDriver(name, height)
	if err != nil {
		return types.NewErrReceipt(types.ErrExecNotFound), errors.Wrapf(types.ErrExecNotFound, "load driver %s", name)
	}
	action = driver.GetActionName(&ntx)
	statedb := NewStateDB(e.db)
	driver.SetStateDB(statedb)
	driver.SetEnv(height, e.clock.Now())
	if err = driver.Allow(&ntx, 0); err == nil {
		err = driver.CheckTx(&ntx, 0)
	}
	if err != nil {
		return types.NewErrReceipt(err), errors.Wrapf(err, "check %s.%s", name, action)
	}

	statedb.Begin()
	receipt, err = driver.Exec(&ntx, 0)
	if err == nil && receipt == nil {
		err = types.ErrActionNotSupport
	}
	if err == nil {
		var h [8]byte
		binary.BigEndian.PutUint64(h[:], uint64(height))
		err = statedb.Set(heightKey, h[:])
	}
	if err != nil {
		statedb.Rollback()
		elog.Debug("ExecTx rollback", "exec", name, "action", action, "from", from, "err", err)
		return types.NewErrReceipt(err), errors.Wrapf(err, "exec %s.%s", name, action)
	}
	if err = statedb.Commit(); err != nil {
		elog.Error("ExecTx commit", "exec", name, "action", action, "err", err)
		return nil, err
	}
	e.height = height
	elog.Debug("ExecTx", "exec", name, "action", action, "from", from, "height", height, "kvs", len(receipt.KV))
	return receipt, nil
}

// Query 调用驱动的 Query_funcname
func (e *Executor) Query(execer, funcname string, param types.Message) (types.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := time.Now()
	driver, err := dapp.LoadDriver(execer, -1)
	if err != nil {
		return nil, errors.Wrapf(types.ErrExecNotFound, "load driver %s", execer)
	}
	driver.SetStateDB(NewStateDB(e.db))
	driver.SetEnv(e.height, e.clock.Now())
	reply, err := driver.Query(funcname, types.Encode(param))
	e.metrics.ObserveQuery(execer, funcname, start)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s.%s", execer, funcname)
	}
	return reply, nil
}

// DumpState 列出某个前缀下所有的状态数据
func (e *Executor) DumpState(prefix []byte) ([]*types.KeyValue, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var kvs []*types.KeyValue
	for _, key := range dbm.NewListHelper(e.db).PrefixKeys(prefix) {
		value, err := e.db.Get(key)
		if err != nil {
			return nil, errors.Wrapf(err, "dump %s", string(key))
		}
		kvs = append(kvs, &types.KeyValue{Key: key, Value: value})
	}
	return kvs, nil
}

// Close 释放资源，底层 db 由调用者关闭
func (e *Executor) Close() {
	e.metrics.Close()
}
