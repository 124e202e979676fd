// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badger 的内部日志转到 log15
type badgerLog struct{}

func (badgerLog) Errorf(format string, v ...interface{})   { blog.Error(fmt.Sprintf(format, v...)) }
func (badgerLog) Warningf(format string, v ...interface{}) { blog.Warn(fmt.Sprintf(format, v...)) }
func (badgerLog) Infof(format string, v ...interface{})    { blog.Debug(fmt.Sprintf(format, v...)) }
func (badgerLog) Debugf(format string, v ...interface{})   { blog.Debug(fmt.Sprintf(format, v...)) }

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLog{})
	if cache <= 128 {
		opts.ValueLogLoadingMode = options.FileIO
	}
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFoundInDb
			}
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

//SetSync 同步写
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

//DeleteSync 同步删除
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  fmt.Sprint(lsm),
		"badger.vlog": fmt.Sprint(vlog),
	}
}

//Iterator 迭代器
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{txn: txn, it: it, prefix: prefix, reverse: reverse}
}

type goBadgerDBIt struct {
	txn     *badger.Txn
	it      *badger.Iterator
	prefix  []byte
	reverse bool
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if !dbit.reverse {
		dbit.it.Seek(dbit.prefix)
		return dbit.Valid()
	}
	end := prefixEnd(dbit.prefix)
	if end == nil {
		dbit.it.Rewind()
		return dbit.Valid()
	}
	dbit.it.Seek(end)
	// 反向 seek 可能停在 end 本身
	if dbit.it.Valid() && !hasPrefix(dbit.it.Item().Key(), dbit.prefix) {
		dbit.it.Next()
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.it.ValidForPrefix(dbit.prefix)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().Key()
}

func (dbit *goBadgerDBIt) Value() []byte {
	return dbit.ValueCopy()
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
	}
	return value
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), nil})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	return mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
