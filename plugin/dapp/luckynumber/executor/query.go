// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/luckynumber/common/address"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/system/dapp"
	"github.com/33cn/luckynumber/types"
)

//Query_GetTriggerer 开奖人
func (l *LuckyNumber) Query_GetTriggerer(in *types.ReqNil) (types.Message, error) {
	cfg, err := loadConfig(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &ty.ReplyTriggerer{Triggerer: cfg.Triggerer}, nil
}

//Query_GetConfig 合约配置，不含种子
func (l *LuckyNumber) Query_GetConfig(in *types.ReqNil) (types.Message, error) {
	cfg, err := loadConfig(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &ty.ReplyConfig{
		Owner:       cfg.Owner,
		Triggerer:   cfg.Triggerer,
		TokenExec:   cfg.TokenExec,
		TokenSymbol: cfg.TokenSymbol,
		TierCount:   cfg.TierCount,
		ExecAddr:    dapp.ExecAddress(driverName),
	}, nil
}

func (l *LuckyNumber) privateBets(addr, key string) (*userBets, error) {
	if _, err := loadConfig(l.GetStateDB()); err != nil {
		return nil, err
	}
	addr, err := address.NormalizeAddress(addr)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	if err := verifyViewingKey(l.GetStateDB(), addr, key); err != nil {
		return nil, err
	}
	return loadUserBets(l.GetStateDB(), addr)
}

//Query_GetUserBets 按 (tier, round) 查询下注，没有指定时返回全部
func (l *LuckyNumber) Query_GetUserBets(in *ty.ReqUserBets) (types.Message, error) {
	bets, err := l.privateBets(in.Addr, in.Key)
	if err != nil {
		return nil, err
	}
	reply := &ty.ReplyUserBets{Total: uint32(bets.len())}
	if len(in.Refs) == 0 {
		reply.Bets = bets.bets
		return reply, nil
	}
	for _, ref := range in.Refs {
		if b, ok := bets.get(ty.BetKey{Tier: ref.Tier, Round: ref.Round}); ok {
			reply.Bets = append(reply.Bets, b)
		}
	}
	return reply, nil
}

//Query_GetPaginatedUserBets 最新的下注在前
func (l *LuckyNumber) Query_GetPaginatedUserBets(in *ty.ReqPaginatedUserBets) (types.Message, error) {
	bets, err := l.privateBets(in.Addr, in.Key)
	if err != nil {
		return nil, err
	}
	reply := &ty.ReplyUserBets{Total: uint32(bets.len())}
	for _, i := range pageIndexes(uint32(bets.len()), in.Page, in.PageSize) {
		reply.Bets = append(reply.Bets, bets.bets[i])
	}
	return reply, nil
}

//Query_GetPaginatedRounds 最新的轮次在前
func (l *LuckyNumber) Query_GetPaginatedRounds(in *ty.ReqPaginatedRounds) (types.Message, error) {
	cfg, err := loadConfig(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	if err := checkTierID(cfg, in.Tier); err != nil {
		return nil, err
	}
	rounds, total, err := listRounds(l.GetStateDB(), in.Tier, in.Page, in.PageSize)
	if err != nil {
		return nil, err
	}
	return &ty.ReplyRounds{Tier: in.Tier, Rounds: rounds, Total: total}, nil
}

//Query_GetRounds 按轮次编号查询
func (l *LuckyNumber) Query_GetRounds(in *ty.ReqRounds) (types.Message, error) {
	cfg, err := loadConfig(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	if err := checkTierID(cfg, in.Tier); err != nil {
		return nil, err
	}
	total, err := roundCount(l.GetStateDB(), in.Tier)
	if err != nil {
		return nil, err
	}
	reply := &ty.ReplyRounds{Tier: in.Tier, Total: total}
	for _, n := range in.Rounds {
		r, err := loadRound(l.GetStateDB(), in.Tier, n)
		if err != nil {
			return nil, err
		}
		reply.Rounds = append(reply.Rounds, r)
	}
	return reply, nil
}

//Query_GetTierConfigs 所有档位的当前参数
func (l *LuckyNumber) Query_GetTierConfigs(in *types.ReqNil) (types.Message, error) {
	cfg, err := loadConfig(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	tiers, err := listTiers(l.GetStateDB(), cfg)
	if err != nil {
		return nil, err
	}
	return &ty.ReplyTierConfigs{Tiers: tiers}, nil
}

//Query_CheckTriggers 各档位当前轮次是否达到开奖门槛
func (l *LuckyNumber) Query_CheckTriggers(in *types.ReqNil) (types.Message, error) {
	cfg, err := loadConfig(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	reply := &ty.ReplyCheckTriggers{}
	for tier := int32(1); tier <= cfg.TierCount; tier++ {
		round, err := currentRound(l.GetStateDB(), tier)
		if err != nil {
			return nil, err
		}
		threshold, err := tierThreshold(int64(round.MinEntries), round.EntryFee)
		if err != nil {
			return nil, err
		}
		reply.Triggers = append(reply.Triggers, &ty.TierTrigger{
			Tier:      tier,
			Round:     round.RoundNumber,
			PoolSize:  round.PoolSize,
			Threshold: threshold,
			Ready:     round.PoolSize >= threshold,
		})
	}
	return reply, nil
}
