// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/luckynumber/common/db"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

// 手续费不能超过达到开奖门槛时的奖池
func checkTierConfig(c *ty.TierConfig) error {
	if c == nil {
		return ty.ErrInvalidTierConfig
	}
	if !types.CheckAmount(c.EntryFee) || c.TriggererFee < 0 {
		return ty.ErrInvalidTierConfig
	}
	if c.MaxNumber < 1 || c.MaxNumber > ty.MaxPickNumber {
		return ty.ErrInvalidTierConfig
	}
	threshold, err := tierThreshold(int64(c.MinEntries), c.EntryFee)
	if err != nil || c.TriggererFee > threshold {
		return ty.ErrInvalidTierConfig
	}
	return nil
}

func tierThreshold(minEntries, entryFee int64) (int64, error) {
	return types.SafeMul(minEntries, entryFee)
}

func checkTierID(cfg *ty.Config, tier int32) error {
	if tier < 1 || tier > cfg.TierCount {
		return ty.ErrTierNotFound
	}
	return nil
}

func loadTier(db dbm.KV, tier int32) (*ty.TierConfig, error) {
	data, err := db.Get(calcTierKey(tier))
	if err == types.ErrNotFound {
		return nil, ty.ErrTierNotFound
	}
	if err != nil {
		return nil, err
	}
	var c ty.TierConfig
	if err := types.Decode(data, &c); err != nil {
		return nil, types.ErrDecode
	}
	return &c, nil
}

func (a *Action) saveTier(tier int32, c *ty.TierConfig) error {
	return a.save(calcTierKey(tier), c)
}

func listTiers(db dbm.KV, cfg *ty.Config) ([]*ty.TierInfo, error) {
	var tiers []*ty.TierInfo
	for id := int32(1); id <= cfg.TierCount; id++ {
		c, err := loadTier(db, id)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, &ty.TierInfo{Tier: id, Config: c})
	}
	return tiers, nil
}
