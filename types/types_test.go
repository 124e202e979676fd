// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	receipt := &Receipt{
		Ty: ExecOk,
		KV: []*KeyValue{{Key: []byte("k"), Value: []byte("v")}},
		Logs: []*ReceiptLog{{Ty: TyLogExecTransfer, Log: Encode(&ReceiptExecAccountTransfer{
			ExecAddr: "exec",
			Prev:     &Account{Addr: "a", Balance: 1},
			Current:  &Account{Addr: "a", Balance: 2},
		})}},
	}
	var decoded Receipt
	require.NoError(t, Decode(Encode(receipt), &decoded))
	assert.Equal(t, int32(ExecOk), decoded.GetTy())
	assert.Equal(t, []byte("v"), decoded.GetKV()[0].GetValue())

	var transfer ReceiptExecAccountTransfer
	require.NoError(t, Decode(decoded.GetLogs()[0].GetLog(), &transfer))
	assert.Equal(t, int64(2), transfer.GetCurrent().GetBalance())
}

func TestTxHash(t *testing.T) {
	tx1 := &Transaction{Execer: []byte("luckynumber"), Payload: []byte{1}, From: "a"}
	tx2 := &Transaction{Execer: []byte("luckynumber"), Payload: []byte{1}, From: "b"}
	assert.Len(t, tx1.Hash(), 32)
	assert.Equal(t, tx1.Hash(), tx1.Hash())
	assert.NotEqual(t, tx1.Hash(), tx2.Hash())
}

func TestCheckAmount(t *testing.T) {
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-1))
	assert.False(t, CheckAmount(MaxCoin))
	assert.True(t, CheckAmount(1))
}

func TestSafeMath(t *testing.T) {
	c, err := SafeAdd(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c)
	_, err = SafeAdd(math.MaxInt64, 1)
	assert.Equal(t, ErrAmountOverflow, err)
	_, err = SafeAdd(-1, 1)
	assert.Equal(t, ErrAmount, err)

	c, err = SafeSub(3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c)
	_, err = SafeSub(2, 3)
	assert.Equal(t, ErrAmountUnderflow, err)

	c, err = SafeMul(3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), c)
	c, err = SafeMul(0, MaxCoin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), c)
	_, err = SafeMul(MaxCoin, 1<<32)
	assert.Equal(t, ErrAmountOverflow, err)
}

func TestNewErrReceipt(t *testing.T) {
	r := NewErrReceipt(errors.New("ErrSomething"))
	assert.Equal(t, int32(ExecErr), r.Ty)
	assert.Equal(t, "ErrSomething", string(r.Logs[0].Log))

	merged := MergeReceipt(&Receipt{Ty: ExecOk}, r)
	assert.Len(t, merged.Logs, 1)
	assert.Equal(t, r, MergeReceipt(nil, r))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "1.50000000", FormatAmount(150000000))
	assert.Equal(t, "0.00000001", FormatAmount(1))

	v, err := ParseAmount("1.5")
	require.NoError(t, err)
	assert.Equal(t, int64(150000000), v)

	_, err = ParseAmount("0.000000001")
	assert.Equal(t, ErrAmount, err)
	_, err = ParseAmount("-1")
	assert.Equal(t, ErrAmount, err)
	_, err = ParseAmount("abc")
	assert.Equal(t, ErrAmount, err)
}

func TestConfig(t *testing.T) {
	cfg, err := InitCfgString(GetDefaultCfgstring())
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.True(t, cfg.Exec.EnableMetrics)
	assert.Equal(t, "info", cfg.Log.Loglevel)

	var sub struct {
		Triggerer string `toml:"triggerer"`
		Tiers     []struct {
			EntryFee int64 `toml:"entryFee"`
		} `toml:"tiers"`
	}
	require.NoError(t, cfg.GetSubConfig("luckynumber", &sub))
	assert.Equal(t, "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv", sub.Triggerer)
	assert.Len(t, sub.Tiers, 3)
	assert.Equal(t, int64(100000000), sub.Tiers[0].EntryFee)

	assert.Equal(t, ErrConfigNotFound, cfg.GetSubConfig("nosuch", &sub))

	cfg, err = InitCfgString("")
	require.NoError(t, err)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, int32(128), cfg.Store.DbCache)
}
