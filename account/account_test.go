// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/luckynumber/common"
	"github.com/33cn/luckynumber/common/address"
	dbm "github.com/33cn/luckynumber/common/db"
	"github.com/33cn/luckynumber/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1    = address.PubKeyToAddress(common.Sha256([]byte("addr1"))).String()
	addr2    = address.PubKeyToAddress(common.Sha256([]byte("addr2"))).String()
	execAddr = address.ExecAddress("luckynumber")
)

func newTestAccountDB(t *testing.T) *DB {
	mdb, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	acc, err := NewAccountDB("coins", "bty", mdb)
	require.NoError(t, err)
	return acc
}

func balance(t *testing.T, acc *DB, addr string) int64 {
	a, err := acc.LoadAccount(addr)
	require.NoError(t, err)
	return a.Balance
}

func execBalance(t *testing.T, acc *DB, addr string) int64 {
	a, err := acc.LoadExecAccount(addr, execAddr)
	require.NoError(t, err)
	return a.Balance
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("co-ins", "bty", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("coins", "b-ty", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)

	acc := newTestAccountDB(t)
	assert.Equal(t, "bty", acc.Symbol())
	assert.Equal(t, "mavl-coins-bty-"+addr1, string(acc.AccountKey(addr1)))
	assert.Equal(t, "mavl-coins-bty-exec-"+execAddr+":"+addr1, string(acc.execAccountKey(addr1, execAddr)))
}

func TestTransfer(t *testing.T) {
	acc := newTestAccountDB(t)
	_, err := acc.GenesisInit(addr1, 10*types.Coin)
	require.NoError(t, err)

	receipt, err := acc.Transfer(addr1, addr2, 4*types.Coin)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, 6*types.Coin, balance(t, acc, addr1))
	assert.Equal(t, 4*types.Coin, balance(t, acc, addr2))

	_, err = acc.Transfer(addr1, addr2, 7*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)

	accs, err := acc.LoadAccounts([]string{addr1, addr2})
	require.NoError(t, err)
	assert.Equal(t, addr2, accs[1].Addr)
}

func TestExecAccount(t *testing.T) {
	acc := newTestAccountDB(t)
	_, err := acc.GenesisInit(addr1, 10*types.Coin)
	require.NoError(t, err)

	_, err = acc.TransferToExec(addr1, execAddr, 5*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 5*types.Coin, balance(t, acc, addr1))
	assert.Equal(t, 5*types.Coin, balance(t, acc, execAddr))
	assert.Equal(t, 5*types.Coin, execBalance(t, acc, addr1))

	receipt, err := acc.ExecTransfer(addr1, addr2, execAddr, 2*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, 3*types.Coin, execBalance(t, acc, addr1))
	assert.Equal(t, 2*types.Coin, execBalance(t, acc, addr2))

	_, err = acc.ExecTransfer(addr1, addr2, execAddr, 4*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = acc.TransferWithdraw(addr2, execAddr, 2*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), execBalance(t, acc, addr2))
	assert.Equal(t, 2*types.Coin, balance(t, acc, addr2))

	_, err = acc.ExecWithdraw(execAddr, addr2, 1)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.ExecDeposit(execAddr, execAddr, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestGenesisInitExec(t *testing.T) {
	acc := newTestAccountDB(t)
	receipt, err := acc.GenesisInitExec(addr1, 3*types.Coin, execAddr)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesisDeposit), receipt.Logs[1].Ty)
	assert.Equal(t, 3*types.Coin, execBalance(t, acc, addr1))
	assert.Equal(t, 3*types.Coin, balance(t, acc, execAddr))

	_, err = acc.GenesisInit(addr1, types.MaxCoin)
	assert.Equal(t, types.ErrAmount, err)
}

func TestLoadCorrupted(t *testing.T) {
	acc := newTestAccountDB(t)
	require.NoError(t, acc.db.Set(acc.AccountKey(addr1), []byte{0xff, 0xff}))
	_, err := acc.LoadAccount(addr1)
	assert.Error(t, err)
}
