// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "fmt"

// BetKey 一个用户在某档位某一轮的下注只有一个
type BetKey struct {
	Tier  int32
	Round uint32
}

func (k BetKey) String() string {
	return fmt.Sprintf("tier:%d_round:%d", k.Tier, k.Round)
}

// Key 下注对应的 BetKey
func (m *Bet) Key() BetKey {
	return BetKey{Tier: m.Tier, Round: m.RoundNumber}
}

// IsOpen 未开奖
func (m *Round) IsOpen() bool {
	return m.GetStatus() != RoundClosed
}

// Lucky 开奖号码，未开奖返回 false
func (m *Round) Lucky() (uint32, bool) {
	if m.IsOpen() {
		return 0, false
	}
	return m.LuckyNumber, true
}

// EndTime 开奖时间
func (m *Round) EndTime() (int64, bool) {
	if m.IsOpen() {
		return 0, false
	}
	return m.RoundEndTime, true
}

// EndPool 开奖时扣除手续费后的奖池
func (m *Round) EndPool() (int64, bool) {
	if m.IsOpen() {
		return 0, false
	}
	return m.RoundEndPoolSize, true
}

// Winners 中奖人数
func (m *Round) Winners() (uint32, bool) {
	if m.IsOpen() {
		return 0, false
	}
	return m.WinnerCount, true
}

// MaxNumber 本轮可选的最大号码
func (m *Round) MaxNumber() uint32 {
	return uint32(len(m.GetPicks()))
}
