// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 迭代测试
func testDBIterator(t *testing.T, db DB) {
	t.Log("test Set")
	require.NoError(t, db.Set([]byte("aaaaaa/1"), []byte("aaaaaa/1")))
	require.NoError(t, db.Set([]byte("my_key/1"), []byte("my_key/1")))
	require.NoError(t, db.Set([]byte("my_key/2"), []byte("my_key/2")))
	require.NoError(t, db.Set([]byte("my_key/3"), []byte("my_key/3")))
	require.NoError(t, db.Set([]byte("my_key/4"), []byte("my_key/4")))
	require.NoError(t, db.Set([]byte("my"), []byte("my")))
	require.NoError(t, db.Set([]byte("my_"), []byte("my_")))
	require.NoError(t, db.Set([]byte("zzzzzz/1"), []byte("zzzzzz/1")))
	require.NoError(t, db.Set([]byte{0xff}, []byte("0xff")))

	t.Log("test Get")
	v, err := db.Get([]byte("aaaaaa/1"))
	require.NoError(t, err)
	require.Equal(t, "aaaaaa/1", string(v))
	_, err = db.Get([]byte("nokey"))
	require.Equal(t, ErrNotFoundInDb, err)

	t.Log("test PrefixScan")
	it := NewListHelper(db)
	list := it.PrefixScan(nil)
	require.Equal(t, [][]byte{[]byte("aaaaaa/1"), []byte("my"), []byte("my_"), []byte("my_key/1"), []byte("my_key/2"), []byte("my_key/3"), []byte("my_key/4"), []byte("zzzzzz/1"), []byte("0xff")}, list)

	t.Log("test IteratorScanFromFirst")
	list = it.IteratorScanFromFirst([]byte("my"), 2)
	require.Equal(t, [][]byte{[]byte("my"), []byte("my_")}, list)

	t.Log("test IteratorScanFromLast")
	list = it.IteratorScanFromLast([]byte("my"), 100)
	require.Equal(t, [][]byte{[]byte("my_key/4"), []byte("my_key/3"), []byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")}, list)

	list = it.IteratorScanFromLast([]byte("my_key/"), 1)
	require.Equal(t, [][]byte{[]byte("my_key/4")}, list)

	keys := it.PrefixKeys([]byte("my_key/"))
	require.Len(t, keys, 4)
	require.Equal(t, []byte("my_key/1"), keys[0])

	t.Log("test Batch")
	batch := db.NewBatch(true)
	batch.Set([]byte("my_key/5"), []byte("my_key/5"))
	batch.Delete([]byte("my_key/1"))
	assert.True(t, batch.ValueSize() > 0)
	require.NoError(t, batch.Write())
	_, err = db.Get([]byte("my_key/1"))
	require.Equal(t, ErrNotFoundInDb, err)
	v, err = db.Get([]byte("my_key/5"))
	require.NoError(t, err)
	require.Equal(t, "my_key/5", string(v))
	batch.Reset()
	assert.Equal(t, 0, batch.ValueSize())

	require.NoError(t, db.Delete([]byte("my_key/5")))
	list = it.PrefixScan([]byte("my_key/"))
	require.Len(t, list, 3)
}

func TestGoMemDB(t *testing.T) {
	db, err := NewDB("test", MemDBBackendStr, "", 16)
	require.NoError(t, err)
	defer db.Close()
	testDBIterator(t, db)
	assert.Equal(t, "8", db.Stats()["memdb.keys"])
}

func TestGoLevelDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "goleveldb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := NewDB("test", GoLevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testDBIterator(t, db)
}

func TestGoBadgerDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "gobadgerdb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := NewDB("test", GoBadgerDBBackendStr, dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testDBIterator(t, db)
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "nosuchdb", "", 16)
	assert.Error(t, err)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("mz"), prefixEnd([]byte("my")))
	assert.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff}))
	assert.Nil(t, prefixEnd(nil))
}
