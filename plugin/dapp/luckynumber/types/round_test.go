// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/luckynumber/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetKey(t *testing.T) {
	k := BetKey{Tier: 2, Round: 17}
	assert.Equal(t, "tier:2_round:17", k.String())
	b := &Bet{Tier: 2, RoundNumber: 17, Number: 3}
	assert.Equal(t, k, b.Key())
}

func TestRoundOption(t *testing.T) {
	r := &Round{RoundNumber: 0, Picks: make([]uint32, 5), Status: RoundOpen, LuckyNumber: 0}
	assert.True(t, r.IsOpen())
	_, ok := r.Lucky()
	assert.False(t, ok)
	_, ok = r.EndPool()
	assert.False(t, ok)
	assert.Equal(t, uint32(5), r.MaxNumber())

	r.Status = RoundClosed
	r.LuckyNumber = 3
	r.RoundEndPoolSize = 19
	r.WinnerCount = 1
	r.RoundEndTime = 100
	n, ok := r.Lucky()
	assert.True(t, ok)
	assert.Equal(t, uint32(3), n)
	p, _ := r.EndPool()
	assert.Equal(t, int64(19), p)
	w, _ := r.Winners()
	assert.Equal(t, uint32(1), w)
	e, _ := r.EndTime()
	assert.Equal(t, int64(100), e)
}

func TestCreateTransaction(t *testing.T) {
	ety := types.LoadExecutorType(LuckyNumberX)
	require.NotNil(t, ety)
	tx, err := ety.CreateTransaction("Bet", &LuckyBet{Tier: 1, Number: 3, Amount: types.Coin})
	require.NoError(t, err)
	assert.Equal(t, "Bet", ety.ActionName(tx))

	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "Bet", name)
	assert.Equal(t, uint32(3), value.Interface().(*LuckyBet).Number)

	_, err = ety.CreateTransaction("Bet", &LuckyWithdraw{})
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = ety.CreateTransaction("Nope", &LuckyBet{})
	assert.Equal(t, types.ErrActionNotSupport, err)

	logname, js, err := ety.DecodeLogJSON(TyLogLuckyBet, types.Encode(&ReceiptLuckyBet{Tier: 1, Number: 3}))
	require.NoError(t, err)
	assert.Equal(t, "LogLuckyBet", logname)
	assert.Contains(t, string(js), `"number":3`)
}
