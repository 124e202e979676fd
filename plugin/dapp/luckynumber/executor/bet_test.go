// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBets(t *testing.T) {
	u := newUserBets(nil)
	require.NoError(t, u.insert(&ty.Bet{Tier: 1, RoundNumber: 0, Number: 3}))
	require.NoError(t, u.insert(&ty.Bet{Tier: 2, RoundNumber: 0, Number: 4}))
	require.NoError(t, u.insert(&ty.Bet{Tier: 1, RoundNumber: 1, Number: 5}))
	assert.Equal(t, ty.ErrBetExists, u.insert(&ty.Bet{Tier: 1, RoundNumber: 1, Number: 2}))
	assert.Equal(t, 3, u.len())

	b, ok := u.get(ty.BetKey{Tier: 2, Round: 0})
	require.True(t, ok)
	assert.Equal(t, uint32(4), b.Number)
	_, ok = u.get(ty.BetKey{Tier: 2, Round: 1})
	assert.False(t, ok)

	assert.True(t, u.remove(ty.BetKey{Tier: 1, Round: 0}))
	assert.False(t, u.remove(ty.BetKey{Tier: 1, Round: 0}))
	b, ok = u.get(ty.BetKey{Tier: 1, Round: 1})
	require.True(t, ok)
	assert.Equal(t, uint32(5), b.Number)

	// 保持下注顺序
	restored := newUserBets(u.store())
	require.Equal(t, 2, restored.len())
	assert.Equal(t, int32(2), restored.bets[0].Tier)
	assert.Equal(t, uint32(1), restored.bets[1].RoundNumber)
	_, ok = restored.get(ty.BetKey{Tier: 1, Round: 1})
	assert.True(t, ok)
}

func TestPageIndexes(t *testing.T) {
	assert.Equal(t, []uint32{4, 3}, pageIndexes(5, 0, 2))
	assert.Equal(t, []uint32{0}, pageIndexes(5, 2, 2))
	assert.Nil(t, pageIndexes(5, 3, 2))
	assert.Nil(t, pageIndexes(0, 0, 0))
	assert.Len(t, pageIndexes(50, 0, 0), ty.DefaultPageSize)
	assert.Len(t, pageIndexes(500, 0, 1000), ty.MaxPageSize)
	assert.Nil(t, pageIndexes(5, 0xffffffff, 0xffffffff))
	assert.Equal(t, []uint32{2, 1, 0}, pageIndexes(3, 0, 10))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "mavl-luckynumber-config", string(calcConfigKey()))
	assert.Equal(t, "mavl-luckynumber-tier-2", string(calcTierKey(2)))
	assert.Equal(t, "mavl-luckynumber-rounds-1", string(calcRoundsKey(1)))
	assert.Equal(t, "mavl-luckynumber-rounds-1-0000000012", string(calcRoundKey(1, 12)))
	assert.Equal(t, "mavl-luckynumber-bets-addr", string(calcUserBetsKey("addr")))
	assert.Equal(t, "mavl-luckynumber-viewkey-addr", string(calcViewingKeyKey("addr")))
}

func TestCheckTierConfig(t *testing.T) {
	assert.NoError(t, checkTierConfig(&ty.TierConfig{EntryFee: 10, TriggererFee: 20, MinEntries: 2, MaxNumber: 1}))
	assert.NoError(t, checkTierConfig(&ty.TierConfig{EntryFee: 10, TriggererFee: 0, MinEntries: 0, MaxNumber: 5}))
	for _, c := range []*ty.TierConfig{
		nil,
		{EntryFee: 0, MinEntries: 2, MaxNumber: 5},
		{EntryFee: 10, TriggererFee: -1, MinEntries: 2, MaxNumber: 5},
		{EntryFee: 10, TriggererFee: 21, MinEntries: 2, MaxNumber: 5},
		{EntryFee: 10, TriggererFee: 1, MinEntries: 0, MaxNumber: 5},
		{EntryFee: 10, MinEntries: 2, MaxNumber: 0},
		{EntryFee: 10, MinEntries: 2, MaxNumber: ty.MaxPickNumber + 1},
	} {
		assert.Equal(t, ty.ErrInvalidTierConfig, checkTierConfig(c))
	}
}
