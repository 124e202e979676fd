// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/luckynumber/account"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

// drawOutcome 每个档位的开奖结果：drawSkipped 或 drawDrawn
type drawOutcome interface {
	result() *ty.TierDrawResult
}

// 奖池没有达到门槛，不开奖
type drawSkipped struct {
	tier  int32
	round uint32
}

func (d drawSkipped) result() *ty.TierDrawResult {
	return &ty.TierDrawResult{Tier: d.tier, Round: d.round}
}

type drawDrawn struct {
	tier     int32
	round    uint32
	number   uint32
	fee      int64
	winners  uint32
	rollover int64
}

func (d drawDrawn) result() *ty.TierDrawResult {
	return &ty.TierDrawResult{Tier: d.tier, Drawn: true, LuckyNumber: d.number, Round: d.round, WinnerCount: d.winners}
}

func sortTiers(tiers []int32) []int32 {
	seen := make(map[int32]bool, len(tiers))
	var out []int32
	for _, t := range tiers {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TriggerDraw 开奖，只有 triggerer 可以调用。多个档位共用一个种子，按档位编号从小到大依次取随机数
func (a *Action) TriggerDraw(payload *ty.LuckyTriggerDraw) (*types.Receipt, error) {
	cfg, err := loadConfig(a.db)
	if err != nil {
		return nil, err
	}
	if a.fromaddr != cfg.Triggerer {
		return nil, ty.ErrNoPrivilege
	}
	tiers := sortTiers(payload.Tiers)
	if len(tiers) == 0 {
		return nil, ty.ErrEmptyTiers
	}
	for _, tier := range tiers {
		if err := checkTierID(cfg, tier); err != nil {
			return nil, err
		}
	}
	acc, err := a.tokenAccount(cfg)
	if err != nil {
		return nil, err
	}
	src := newDrawRand(mix(cfg.BaseSeed, uint64Bytes(payload.Entropy), cfg.Recent))
	reply := &ty.ReplyTriggerDraw{}
	for _, tier := range tiers {
		outcome, err := a.drawTier(acc, cfg, tier, src)
		if err != nil {
			return nil, err
		}
		reply.Results = append(reply.Results, outcome.result())
	}
	a.addLog(ty.TyLogLuckyDrawResult, reply)
	return a.receipt(), nil
}

func (a *Action) drawTier(acc *account.DB, cfg *ty.Config, tier int32, src drawSource) (drawOutcome, error) {
	round, err := currentRound(a.db, tier)
	if err != nil {
		return nil, err
	}
	threshold, err := tierThreshold(int64(round.MinEntries), round.EntryFee)
	if err != nil {
		return nil, err
	}
	if round.PoolSize < threshold {
		llog.Debug("drawTier skipped", "tier", tier, "round", round.RoundNumber, "pool", round.PoolSize, "threshold", threshold)
		return drawSkipped{tier: tier, round: round.RoundNumber}, nil
	}
	number := intn1(src, round.MaxNumber())
	remaining, err := types.SafeSub(round.PoolSize, round.TriggererFee)
	if err != nil {
		llog.Crit("drawTier fee underflow", "tier", tier, "round", round.RoundNumber, "pool", round.PoolSize, "fee", round.TriggererFee)
		return nil, ty.ErrPoolUnderflow
	}
	winners := round.Picks[number-1]
	d := drawDrawn{tier: tier, round: round.RoundNumber, number: number, fee: round.TriggererFee, winners: winners}

	round.Status = ty.RoundClosed
	round.LuckyNumber = number
	round.RoundEndTime = a.blocktime
	round.RoundEndPoolSize = remaining
	round.WinnerCount = winners
	round.TriggererFeeTaken = round.TriggererFee
	round.PoolSize = remaining
	if winners == 0 {
		d.rollover = remaining
		round.PoolSize = 0
	}
	if err := a.saveRound(tier, round); err != nil {
		return nil, err
	}
	if err := a.pay(acc, a.execaddr, cfg.Triggerer, d.fee); err != nil {
		return nil, err
	}
	// 新一轮使用档位当前的参数
	c, err := loadTier(a.db, tier)
	if err != nil {
		return nil, err
	}
	if err := a.appendRound(tier, newRound(round.RoundNumber+1, d.rollover, c)); err != nil {
		return nil, err
	}
	a.addLog(ty.TyLogLuckyDraw, &ty.ReceiptLuckyDraw{
		Tier:             tier,
		Round:            round.RoundNumber,
		LuckyNumber:      number,
		WinnerCount:      winners,
		RoundEndPoolSize: remaining,
		TriggererFee:     d.fee,
		Rollover:         d.rollover,
		RoundEndTime:     a.blocktime,
		Triggerer:        cfg.Triggerer,
	})
	llog.Info("drawTier", "tier", tier, "round", round.RoundNumber, "lucky", number, "winners", winners, "rollover", d.rollover)
	return d, nil
}
