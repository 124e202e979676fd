// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/luckynumber/common/db"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

// userBets 按下注顺序保存，同时按 (tier, round) 建索引
type userBets struct {
	bets  []*ty.Bet
	index map[ty.BetKey]int
}

func newUserBets(stored *ty.UserBets) *userBets {
	u := &userBets{index: make(map[ty.BetKey]int)}
	if stored != nil {
		u.bets = stored.Bets
	}
	u.reindex()
	return u
}

func (u *userBets) reindex() {
	u.index = make(map[ty.BetKey]int, len(u.bets))
	for i, b := range u.bets {
		u.index[b.Key()] = i
	}
}

func (u *userBets) get(k ty.BetKey) (*ty.Bet, bool) {
	i, ok := u.index[k]
	if !ok {
		return nil, false
	}
	return u.bets[i], true
}

func (u *userBets) insert(b *ty.Bet) error {
	if _, ok := u.index[b.Key()]; ok {
		return ty.ErrBetExists
	}
	u.index[b.Key()] = len(u.bets)
	u.bets = append(u.bets, b)
	return nil
}

func (u *userBets) remove(k ty.BetKey) bool {
	i, ok := u.index[k]
	if !ok {
		return false
	}
	u.bets = append(u.bets[:i:i], u.bets[i+1:]...)
	u.reindex()
	return true
}

func (u *userBets) len() int {
	return len(u.bets)
}

func (u *userBets) store() *ty.UserBets {
	return &ty.UserBets{Bets: u.bets}
}

func loadUserBets(db dbm.KV, addr string) (*userBets, error) {
	data, err := db.Get(calcUserBetsKey(addr))
	if err == types.ErrNotFound {
		return newUserBets(nil), nil
	}
	if err != nil {
		return nil, err
	}
	var stored ty.UserBets
	if err := types.Decode(data, &stored); err != nil {
		return nil, types.ErrDecode
	}
	return newUserBets(&stored), nil
}

// 没有下注时删除
func (a *Action) saveUserBets(addr string, u *userBets) error {
	if u.len() == 0 {
		return a.setRaw(calcUserBetsKey(addr), nil)
	}
	return a.save(calcUserBetsKey(addr), u.store())
}

// Bet 下注
func (a *Action) Bet(payload *ty.LuckyBet) (*types.Receipt, error) {
	cfg, err := loadConfig(a.db)
	if err != nil {
		return nil, err
	}
	if err := checkTierID(cfg, payload.Tier); err != nil {
		return nil, err
	}
	round, err := currentRound(a.db, payload.Tier)
	if err != nil {
		return nil, err
	}
	if payload.Amount != round.EntryFee {
		return nil, ty.ErrBetAmount
	}
	if payload.Number < 1 || payload.Number > round.MaxNumber() {
		return nil, ty.ErrBetNumber
	}
	bets, err := loadUserBets(a.db, a.fromaddr)
	if err != nil {
		return nil, err
	}
	bet := &ty.Bet{
		RoundNumber: round.RoundNumber,
		Tier:        payload.Tier,
		Number:      payload.Number,
		Timestamp:   a.blocktime,
		Amount:      payload.Amount,
	}
	if err := bets.insert(bet); err != nil {
		return nil, err
	}
	acc, err := a.tokenAccount(cfg)
	if err != nil {
		return nil, err
	}
	if err := a.pay(acc, a.fromaddr, a.execaddr, payload.Amount); err != nil {
		return nil, err
	}
	round.PoolSize, err = types.SafeAdd(round.PoolSize, payload.Amount)
	if err != nil {
		llog.Crit("Bet pool overflow", "tier", payload.Tier, "round", round.RoundNumber, "pool", round.PoolSize)
		return nil, err
	}
	round.UsersCount++
	round.Picks[payload.Number-1]++
	pushEntropy(cfg, uint64(payload.Number))

	if err := a.saveRound(payload.Tier, round); err != nil {
		return nil, err
	}
	if err := a.saveUserBets(a.fromaddr, bets); err != nil {
		return nil, err
	}
	if err := a.saveConfig(cfg); err != nil {
		return nil, err
	}
	a.addLog(ty.TyLogLuckyBet, &ty.ReceiptLuckyBet{
		Addr:       a.fromaddr,
		Tier:       payload.Tier,
		Round:      round.RoundNumber,
		Number:     payload.Number,
		Amount:     payload.Amount,
		PoolSize:   round.PoolSize,
		UsersCount: round.UsersCount,
	})
	llog.Debug("Bet", "addr", a.fromaddr, "bet", bet.Key(), "number", payload.Number)
	return a.receipt(), nil
}
