// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"

	dbm "github.com/33cn/luckynumber/common/db"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

// 每个档位的轮次按下标追加保存，只有最后一轮可以被修改

func newRound(number uint32, pool int64, c *ty.TierConfig) *ty.Round {
	return &ty.Round{
		RoundNumber:  number,
		PoolSize:     pool,
		Picks:        make([]uint32, c.MaxNumber),
		Status:       ty.RoundOpen,
		EntryFee:     c.EntryFee,
		TriggererFee: c.TriggererFee,
		MinEntries:   c.MinEntries,
	}
}

func roundCount(db dbm.KV, tier int32) (uint32, error) {
	data, err := db.Get(calcRoundsKey(tier))
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(data) != 4 {
		return 0, types.ErrDecode
	}
	return binary.BigEndian.Uint32(data), nil
}

func loadRound(db dbm.KV, tier int32, index uint32) (*ty.Round, error) {
	data, err := db.Get(calcRoundKey(tier, index))
	if err == types.ErrNotFound {
		return nil, ty.ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}
	var r ty.Round
	if err := types.Decode(data, &r); err != nil {
		return nil, types.ErrDecode
	}
	return &r, nil
}

// currentRound 档位当前开放的一轮
func currentRound(db dbm.KV, tier int32) (*ty.Round, error) {
	n, err := roundCount(db, tier)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ty.ErrTierNotFound
	}
	return loadRound(db, tier, n-1)
}

// 覆盖写最后一轮
func (a *Action) saveRound(tier int32, r *ty.Round) error {
	n, err := roundCount(a.db, tier)
	if err != nil {
		return err
	}
	if n == 0 || r.RoundNumber != n-1 {
		llog.Crit("saveRound not the last round", "tier", tier, "round", r.RoundNumber, "count", n)
		return ty.ErrRoundNotFound
	}
	return a.save(calcRoundKey(tier, r.RoundNumber), r)
}

func (a *Action) appendRound(tier int32, r *ty.Round) error {
	n, err := roundCount(a.db, tier)
	if err != nil {
		return err
	}
	if r.RoundNumber != n {
		llog.Crit("appendRound", "tier", tier, "round", r.RoundNumber, "count", n)
		return ty.ErrRoundNotFound
	}
	if err := a.save(calcRoundKey(tier, n), r); err != nil {
		return err
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], n+1)
	return a.setRaw(calcRoundsKey(tier), b[:])
}

// listRounds 倒序分页
func listRounds(db dbm.KV, tier int32, page, pageSize uint32) ([]*ty.Round, uint32, error) {
	total, err := roundCount(db, tier)
	if err != nil {
		return nil, 0, err
	}
	var rounds []*ty.Round
	for _, i := range pageIndexes(total, page, pageSize) {
		r, err := loadRound(db, tier, i)
		if err != nil {
			return nil, 0, err
		}
		rounds = append(rounds, r)
	}
	return rounds, total, nil
}

// pageIndexes 从最新到最旧，skip(page*pageSize).take(pageSize)
func pageIndexes(total, page, pageSize uint32) []uint32 {
	if pageSize == 0 {
		pageSize = ty.DefaultPageSize
	}
	if pageSize > ty.MaxPageSize {
		pageSize = ty.MaxPageSize
	}
	skip := uint64(page) * uint64(pageSize)
	if skip >= uint64(total) {
		return nil
	}
	var indexes []uint32
	for i := uint64(total) - 1 - skip; ; i-- {
		indexes = append(indexes, uint32(i))
		if len(indexes) == int(pageSize) || i == 0 {
			break
		}
	}
	return indexes
}
