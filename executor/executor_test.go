// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"testing"

	"github.com/33cn/luckynumber/common"
	"github.com/33cn/luckynumber/common/address"
	dbm "github.com/33cn/luckynumber/common/db"
	coinsexec "github.com/33cn/luckynumber/system/dapp/coins/executor"
	ct "github.com/33cn/luckynumber/system/dapp/coins/types"
	"github.com/33cn/luckynumber/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	genesis = address.PubKeyToAddress(common.Sha256([]byte("genesis"))).String()
	alice   = address.PubKeyToAddress(common.Sha256([]byte("alice"))).String()
	bob     = address.PubKeyToAddress(common.Sha256([]byte("bob"))).String()

	initOnce sync.Once
)

func newTestExecutor(t *testing.T) (*Executor, dbm.DB) {
	initOnce.Do(func() {
		cfg, err := types.InitCfgString("[coins]\ngenesis=\"" + genesis + "\"\n")
		require.NoError(t, err)
		require.NoError(t, coinsexec.Init("coins", cfg))
	})
	mdb, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	e, err := New(&types.Exec{EnableMetrics: true}, mdb, WithClock(NewManualClock(1000)))
	require.NoError(t, err)
	return e, mdb
}

func coinsTx(t *testing.T, from, action string, data types.Message) *types.Transaction {
	tx, err := types.LoadExecutorType(ct.CoinsX).CreateTransaction(action, data)
	require.NoError(t, err)
	tx.From = from
	return tx
}

func balanceOf(t *testing.T, e *Executor, addr string) int64 {
	reply, err := e.Query(ct.CoinsX, "GetBalance", &ct.ReqBalance{Addresses: []string{addr}})
	require.NoError(t, err)
	return reply.(*ct.ReplyAccounts).Accs[0].Balance
}

func TestExecTx(t *testing.T) {
	e, _ := newTestExecutor(t)
	defer e.Close()

	receipt, err := e.ExecTx(coinsTx(t, genesis, "Genesis", &ct.AssetsGenesis{Amount: 100 * types.Coin, To: alice}))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(1), e.Height())

	_, err = e.ExecTx(coinsTx(t, alice, "Transfer", &ct.AssetsTransfer{Amount: 10 * types.Coin, To: bob}))
	require.NoError(t, err)
	assert.Equal(t, 90*types.Coin, balanceOf(t, e, alice))
	assert.Equal(t, 10*types.Coin, balanceOf(t, e, bob))
	assert.Equal(t, int64(2), e.Height())
}

func TestExecTxFailureLeavesStateUnchanged(t *testing.T) {
	e, _ := newTestExecutor(t)
	defer e.Close()
	_, err := e.ExecTx(coinsTx(t, genesis, "Genesis", &ct.AssetsGenesis{Amount: 5 * types.Coin, To: alice}))
	require.NoError(t, err)

	before, err := e.DumpState(types.StatePrefix)
	require.NoError(t, err)

	receipt, err := e.ExecTx(coinsTx(t, alice, "Transfer", &ct.AssetsTransfer{Amount: 6 * types.Coin, To: bob}))
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)
	assert.Equal(t, "ErrNoBalance", string(receipt.Logs[0].Log))

	_, err = e.ExecTx(coinsTx(t, bob, "Genesis", &ct.AssetsGenesis{Amount: 5 * types.Coin, To: bob}))
	assert.Equal(t, types.ErrNotAllow, errors.Cause(err))

	after, err := e.DumpState(types.StatePrefix)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(1), e.Height())
}

func TestExecTxBadInput(t *testing.T) {
	e, _ := newTestExecutor(t)
	defer e.Close()

	_, err := e.ExecTx(nil)
	assert.Equal(t, types.ErrNilTransaction, err)

	_, err = e.ExecTx(&types.Transaction{Execer: []byte("nosuchexec"), From: alice})
	assert.Equal(t, types.ErrExecNotFound, errors.Cause(err))

	_, err = e.ExecTx(coinsTx(t, "not-an-address", "Transfer", &ct.AssetsTransfer{Amount: 1, To: bob}))
	assert.Equal(t, types.ErrInvalidAddress, errors.Cause(err))

	_, err = e.ExecTx(&types.Transaction{Execer: []byte(ct.CoinsX), Payload: []byte{0xff}, From: alice})
	assert.Equal(t, types.ErrDecode, errors.Cause(err))

	_, err = e.Query(ct.CoinsX, "NoSuchQuery", &types.ReqNil{})
	assert.Equal(t, types.ErrQueryNotSupport, errors.Cause(err))
}

func TestHeightPersisted(t *testing.T) {
	e, mdb := newTestExecutor(t)
	_, err := e.ExecTx(coinsTx(t, genesis, "Genesis", &ct.AssetsGenesis{Amount: types.Coin, To: alice}))
	require.NoError(t, err)
	e.Close()

	e2, err := New(nil, mdb)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e2.Height())
	assert.Equal(t, types.Coin, balanceOf(t, e2, alice))
}

func TestStateDB(t *testing.T) {
	mdb, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	require.NoError(t, mdb.Set([]byte("mavl-a"), []byte("1")))

	s := NewStateDB(mdb)
	assert.Equal(t, types.ErrNotAllow, s.Set([]byte("mavl-b"), []byte("2")))

	s.Begin()
	require.NoError(t, s.Set([]byte("mavl-b"), []byte("2")))
	require.NoError(t, s.Set([]byte("mavl-a"), nil))
	_, err = s.Get([]byte("mavl-a"))
	assert.Equal(t, types.ErrNotFound, err)
	v, err := s.Get([]byte("mavl-b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	s.Rollback()

	v, err = s.Get([]byte("mavl-a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("mavl-b"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	require.NoError(t, s.Set([]byte("mavl-b"), []byte("2")))
	require.NoError(t, s.Set([]byte("mavl-b"), []byte("3")))
	require.NoError(t, s.Set([]byte("mavl-a"), nil))
	assert.Equal(t, []string{"mavl-a", "mavl-b"}, s.GetSetKeys())
	require.NoError(t, s.Commit())

	_, err = mdb.Get([]byte("mavl-a"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	v, err = mdb.Get([]byte("mavl-b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)

	values, err := s.BatchGet([][]byte{[]byte("mavl-a"), []byte("mavl-b")})
	require.NoError(t, err)
	assert.Nil(t, values[0])
	assert.Equal(t, []byte("3"), values[1])
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(10)
	c.Advance(5)
	assert.Equal(t, int64(15), c.Now())
	assert.True(t, SystemClock{}.Now() > 0)
}

func TestTransferToExecAddress(t *testing.T) {
	e, _ := newTestExecutor(t)
	defer e.Close()

	_, err := e.ExecTx(coinsTx(t, genesis, "Genesis", &ct.AssetsGenesis{Amount: 10 * types.Coin, To: alice}))
	require.NoError(t, err)
	_, err = e.ExecTx(coinsTx(t, alice, "Transfer", &ct.AssetsTransfer{Amount: 4 * types.Coin, To: address.ExecAddress(ct.CoinsX)}))
	require.NoError(t, err)
	assert.Equal(t, 6*types.Coin, balanceOf(t, e, alice))

	reply, err := e.Query(ct.CoinsX, "GetBalance", &ct.ReqBalance{Addresses: []string{alice}, Execer: ct.CoinsX})
	require.NoError(t, err)
	assert.Equal(t, 4*types.Coin, reply.(*ct.ReplyAccounts).Accs[0].Balance)
}
