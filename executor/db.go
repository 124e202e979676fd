// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/luckynumber/common/db"
	"github.com/33cn/luckynumber/types"
	"github.com/pkg/errors"
)

// StateDB 执行交易时的状态数据库：读穿透到底层 db，写先进入内存事务，Commit 时整批写入
type StateDB struct {
	db      dbm.DB
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{db: db}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = make(map[string][]byte)
}

// Rollback 丢弃事务中所有的写
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把事务中的写作为一个 batch 写入底层 db
func (s *StateDB) Commit() error {
	if !s.intx {
		return nil
	}
	batch := s.db.NewBatch(true)
	for _, k := range s.GetSetKeys() {
		v := s.txcache[k]
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	err := batch.Write()
	s.resetTx()
	if err != nil {
		return errors.Wrap(err, "statedb commit")
	}
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// GetSetKeys 事务中写过的 key，去重并排序
func (s *StateDB) GetSetKeys() (keys []string) {
	seen := make(map[string]bool, len(s.keys))
	for _, k := range s.keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx {
		if value, ok := s.txcache[skey]; ok {
			if value == nil {
				return nil, types.ErrNotFound
			}
			return value, nil
		}
	}
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "statedb get %s", skey)
	}
	return value, nil
}

// Set set key value to state db, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	if !s.intx {
		return types.ErrNotAllow
	}
	skey := string(key)
	s.keys = append(s.keys, skey)
	if value == nil {
		s.txcache[skey] = nil
		return nil
	}
	s.txcache[skey] = append([]byte{}, value...)
	return nil
}

// BatchGet batch get keys from state db
func (s *StateDB) BatchGet(keys [][]byte) (values [][]byte, err error) {
	for _, key := range keys {
		v, err := s.Get(key)
		if err != nil && err != types.ErrNotFound {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
