// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	log "github.com/inconshreveable/log15"
)

//ListHelper 按前缀列出数据
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	return db.scan(prefix, 0, false)
}

//IteratorScanFromFirst 从第一个开始，最多 count 个
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte) {
	return db.scan(prefix, count, false)
}

//IteratorScanFromLast 从最后一个开始倒序，最多 count 个
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte) {
	return db.scan(prefix, count, true)
}

//PrefixKeys 前缀下所有的 key
func (db *ListHelper) PrefixKeys(prefix []byte) (keys [][]byte) {
	it := db.db.Iterator(prefix, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, cloneByte(it.Key()))
	}
	return keys
}

func (db *ListHelper) scan(prefix []byte, count int32, reverse bool) (values [][]byte) {
	it := db.db.Iterator(prefix, reverse)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("scan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if count > 0 && i >= count {
			break
		}
	}
	return values
}
