// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/luckynumber/account"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

// Withdraw 未开奖时撤回下注并退款，已开奖时中奖者领取奖励
func (a *Action) Withdraw(payload *ty.LuckyWithdraw) (*types.Receipt, error) {
	cfg, err := loadConfig(a.db)
	if err != nil {
		return nil, err
	}
	bets, err := loadUserBets(a.db, a.fromaddr)
	if err != nil {
		return nil, err
	}
	bet, ok := bets.get(ty.BetKey{Tier: payload.Tier, Round: payload.Round})
	if !ok {
		return nil, ty.ErrBetNotFound
	}
	if bet.ClaimedReward {
		return nil, ty.ErrRewardClaimed
	}
	round, err := loadRound(a.db, payload.Tier, payload.Round)
	if err != nil {
		return nil, err
	}
	acc, err := a.tokenAccount(cfg)
	if err != nil {
		return nil, err
	}
	if round.IsOpen() {
		return a.refund(acc, bets, bet, round)
	}
	return a.redeem(acc, bets, bet, round)
}

// 撤回的下注从用户记录中删除
func (a *Action) refund(acc *account.DB, bets *userBets, bet *ty.Bet, round *ty.Round) (*types.Receipt, error) {
	pool, err := types.SafeSub(round.PoolSize, bet.Amount)
	if err != nil || round.UsersCount == 0 || round.Picks[bet.Number-1] == 0 {
		llog.Crit("refund pool underflow", "bet", bet.Key(), "pool", round.PoolSize, "users", round.UsersCount)
		return nil, ty.ErrPoolUnderflow
	}
	round.PoolSize = pool
	round.UsersCount--
	round.Picks[bet.Number-1]--
	bets.remove(bet.Key())

	if err := a.saveRound(bet.Tier, round); err != nil {
		return nil, err
	}
	if err := a.saveUserBets(a.fromaddr, bets); err != nil {
		return nil, err
	}
	if err := a.pay(acc, a.execaddr, a.fromaddr, bet.Amount); err != nil {
		return nil, err
	}
	a.addLog(ty.TyLogLuckyWithdraw, &ty.ReceiptLuckySettle{
		Addr:     a.fromaddr,
		Tier:     bet.Tier,
		Round:    bet.RoundNumber,
		Number:   bet.Number,
		Amount:   bet.Amount,
		PoolSize: round.PoolSize,
	})
	return a.receipt(), nil
}

// 奖池按中奖人数整除，余数留在合约中
func (a *Action) redeem(acc *account.DB, bets *userBets, bet *ty.Bet, round *ty.Round) (*types.Receipt, error) {
	if round.LuckyNumber != bet.Number {
		return nil, ty.ErrNotWinner
	}
	if round.WinnerCount == 0 {
		llog.Crit("redeem without winners", "bet", bet.Key(), "lucky", round.LuckyNumber)
		return nil, ty.ErrPoolUnderflow
	}
	reward := round.RoundEndPoolSize / int64(round.WinnerCount)
	bet.ClaimedReward = true
	if err := a.saveUserBets(a.fromaddr, bets); err != nil {
		return nil, err
	}
	if err := a.pay(acc, a.execaddr, a.fromaddr, reward); err != nil {
		return nil, err
	}
	a.addLog(ty.TyLogLuckyRedeem, &ty.ReceiptLuckySettle{
		Addr:     a.fromaddr,
		Tier:     bet.Tier,
		Round:    bet.RoundNumber,
		Number:   bet.Number,
		Amount:   reward,
		PoolSize: round.RoundEndPoolSize,
	})
	llog.Debug("redeem", "addr", a.fromaddr, "bet", bet.Key(), "reward", reward)
	return a.receipt(), nil
}
