// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// LuckyNumberAction luckynumber 交易
type LuckyNumberAction struct {
	Ty               int32                  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Init             *LuckyInit             `protobuf:"bytes,2,opt,name=init,proto3" json:"init,omitempty"`
	Bet              *LuckyBet              `protobuf:"bytes,3,opt,name=bet,proto3" json:"bet,omitempty"`
	Withdraw         *LuckyWithdraw         `protobuf:"bytes,4,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
	TriggerDraw      *LuckyTriggerDraw      `protobuf:"bytes,5,opt,name=triggerDraw,proto3" json:"triggerDraw,omitempty"`
	CreateViewingKey *LuckyCreateViewingKey `protobuf:"bytes,6,opt,name=createViewingKey,proto3" json:"createViewingKey,omitempty"`
	SetViewingKey    *LuckySetViewingKey    `protobuf:"bytes,7,opt,name=setViewingKey,proto3" json:"setViewingKey,omitempty"`
	ChangeOwner      *LuckyChangeOwner      `protobuf:"bytes,8,opt,name=changeOwner,proto3" json:"changeOwner,omitempty"`
	ChangeTriggerer  *LuckyChangeTriggerer  `protobuf:"bytes,9,opt,name=changeTriggerer,proto3" json:"changeTriggerer,omitempty"`
	ChangeTierConfig *LuckyChangeTierConfig `protobuf:"bytes,10,opt,name=changeTierConfig,proto3" json:"changeTierConfig,omitempty"`
}

func (m *LuckyNumberAction) Reset()         { *m = LuckyNumberAction{} }
func (m *LuckyNumberAction) String() string { return proto.CompactTextString(m) }
func (*LuckyNumberAction) ProtoMessage()    {}

func (m *LuckyNumberAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// LuckyInit 创建合约，档位编号按顺序从 1 开始
type LuckyInit struct {
	Tiers       []*TierConfig `protobuf:"bytes,1,rep,name=tiers,proto3" json:"tiers,omitempty"`
	Triggerer   string        `protobuf:"bytes,2,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
	TokenExec   string        `protobuf:"bytes,3,opt,name=tokenExec,proto3" json:"tokenExec,omitempty"`
	TokenSymbol string        `protobuf:"bytes,4,opt,name=tokenSymbol,proto3" json:"tokenSymbol,omitempty"`
	Entropy     uint64        `protobuf:"varint,5,opt,name=entropy,proto3" json:"entropy,omitempty"`
}

func (m *LuckyInit) Reset()         { *m = LuckyInit{} }
func (m *LuckyInit) String() string { return proto.CompactTextString(m) }
func (*LuckyInit) ProtoMessage()    {}

type LuckyBet struct {
	Tier   int32  `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Number uint32 `protobuf:"varint,2,opt,name=number,proto3" json:"number,omitempty"`
	Amount int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *LuckyBet) Reset()         { *m = LuckyBet{} }
func (m *LuckyBet) String() string { return proto.CompactTextString(m) }
func (*LuckyBet) ProtoMessage()    {}

// LuckyWithdraw 开奖前撤回下注，开奖后领取奖励
type LuckyWithdraw struct {
	Tier  int32  `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Round uint32 `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *LuckyWithdraw) Reset()         { *m = LuckyWithdraw{} }
func (m *LuckyWithdraw) String() string { return proto.CompactTextString(m) }
func (*LuckyWithdraw) ProtoMessage()    {}

type LuckyTriggerDraw struct {
	Tiers   []int32 `protobuf:"varint,1,rep,packed,name=tiers,proto3" json:"tiers,omitempty"`
	Entropy uint64  `protobuf:"varint,2,opt,name=entropy,proto3" json:"entropy,omitempty"`
}

func (m *LuckyTriggerDraw) Reset()         { *m = LuckyTriggerDraw{} }
func (m *LuckyTriggerDraw) String() string { return proto.CompactTextString(m) }
func (*LuckyTriggerDraw) ProtoMessage()    {}

type LuckyCreateViewingKey struct {
	Entropy string `protobuf:"bytes,1,opt,name=entropy,proto3" json:"entropy,omitempty"`
}

func (m *LuckyCreateViewingKey) Reset()         { *m = LuckyCreateViewingKey{} }
func (m *LuckyCreateViewingKey) String() string { return proto.CompactTextString(m) }
func (*LuckyCreateViewingKey) ProtoMessage()    {}

type LuckySetViewingKey struct {
	Key string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *LuckySetViewingKey) Reset()         { *m = LuckySetViewingKey{} }
func (m *LuckySetViewingKey) String() string { return proto.CompactTextString(m) }
func (*LuckySetViewingKey) ProtoMessage()    {}

type LuckyChangeOwner struct {
	Owner string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (m *LuckyChangeOwner) Reset()         { *m = LuckyChangeOwner{} }
func (m *LuckyChangeOwner) String() string { return proto.CompactTextString(m) }
func (*LuckyChangeOwner) ProtoMessage()    {}

type LuckyChangeTriggerer struct {
	Triggerer string `protobuf:"bytes,1,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
}

func (m *LuckyChangeTriggerer) Reset()         { *m = LuckyChangeTriggerer{} }
func (m *LuckyChangeTriggerer) String() string { return proto.CompactTextString(m) }
func (*LuckyChangeTriggerer) ProtoMessage()    {}

type LuckyChangeTierConfig struct {
	Tier   int32       `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Config *TierConfig `protobuf:"bytes,2,opt,name=config,proto3" json:"config,omitempty"`
}

func (m *LuckyChangeTierConfig) Reset()         { *m = LuckyChangeTierConfig{} }
func (m *LuckyChangeTierConfig) String() string { return proto.CompactTextString(m) }
func (*LuckyChangeTierConfig) ProtoMessage()    {}

// TierConfig 档位参数
type TierConfig struct {
	EntryFee     int64  `protobuf:"varint,1,opt,name=entryFee,proto3" json:"entryFee,omitempty"`
	TriggererFee int64  `protobuf:"varint,2,opt,name=triggererFee,proto3" json:"triggererFee,omitempty"`
	MinEntries   uint32 `protobuf:"varint,3,opt,name=minEntries,proto3" json:"minEntries,omitempty"`
	MaxNumber    uint32 `protobuf:"varint,4,opt,name=maxNumber,proto3" json:"maxNumber,omitempty"`
}

func (m *TierConfig) Reset()         { *m = TierConfig{} }
func (m *TierConfig) String() string { return proto.CompactTextString(m) }
func (*TierConfig) ProtoMessage()    {}

func (m *TierConfig) GetEntryFee() int64 {
	if m != nil {
		return m.EntryFee
	}
	return 0
}

func (m *TierConfig) GetTriggererFee() int64 {
	if m != nil {
		return m.TriggererFee
	}
	return 0
}

func (m *TierConfig) GetMinEntries() uint32 {
	if m != nil {
		return m.MinEntries
	}
	return 0
}

func (m *TierConfig) GetMaxNumber() uint32 {
	if m != nil {
		return m.MaxNumber
	}
	return 0
}

// Round 一轮，开轮时记录档位参数
type Round struct {
	RoundNumber       uint32   `protobuf:"varint,1,opt,name=roundNumber,proto3" json:"roundNumber,omitempty"`
	PoolSize          int64    `protobuf:"varint,2,opt,name=poolSize,proto3" json:"poolSize,omitempty"`
	LuckyNumber       uint32   `protobuf:"varint,3,opt,name=luckyNumber,proto3" json:"luckyNumber,omitempty"`
	UsersCount        uint32   `protobuf:"varint,4,opt,name=usersCount,proto3" json:"usersCount,omitempty"`
	RoundEndTime      int64    `protobuf:"varint,5,opt,name=roundEndTime,proto3" json:"roundEndTime,omitempty"`
	RoundEndPoolSize  int64    `protobuf:"varint,6,opt,name=roundEndPoolSize,proto3" json:"roundEndPoolSize,omitempty"`
	WinnerCount       uint32   `protobuf:"varint,7,opt,name=winnerCount,proto3" json:"winnerCount,omitempty"`
	Picks             []uint32 `protobuf:"varint,8,rep,packed,name=picks,proto3" json:"picks,omitempty"`
	Status            int32    `protobuf:"varint,9,opt,name=status,proto3" json:"status,omitempty"`
	EntryFee          int64    `protobuf:"varint,10,opt,name=entryFee,proto3" json:"entryFee,omitempty"`
	TriggererFee      int64    `protobuf:"varint,11,opt,name=triggererFee,proto3" json:"triggererFee,omitempty"`
	MinEntries        uint32   `protobuf:"varint,12,opt,name=minEntries,proto3" json:"minEntries,omitempty"`
	TriggererFeeTaken int64    `protobuf:"varint,13,opt,name=triggererFeeTaken,proto3" json:"triggererFeeTaken,omitempty"`
}

func (m *Round) Reset()         { *m = Round{} }
func (m *Round) String() string { return proto.CompactTextString(m) }
func (*Round) ProtoMessage()    {}

func (m *Round) GetRoundNumber() uint32 {
	if m != nil {
		return m.RoundNumber
	}
	return 0
}

func (m *Round) GetPoolSize() int64 {
	if m != nil {
		return m.PoolSize
	}
	return 0
}

func (m *Round) GetPicks() []uint32 {
	if m != nil {
		return m.Picks
	}
	return nil
}

func (m *Round) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// Bet 用户的一次下注
type Bet struct {
	RoundNumber   uint32 `protobuf:"varint,1,opt,name=roundNumber,proto3" json:"roundNumber,omitempty"`
	Tier          int32  `protobuf:"varint,2,opt,name=tier,proto3" json:"tier,omitempty"`
	Number        uint32 `protobuf:"varint,3,opt,name=number,proto3" json:"number,omitempty"`
	ClaimedReward bool   `protobuf:"varint,4,opt,name=claimedReward,proto3" json:"claimedReward,omitempty"`
	Timestamp     int64  `protobuf:"varint,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Amount        int64  `protobuf:"varint,6,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Bet) Reset()         { *m = Bet{} }
func (m *Bet) String() string { return proto.CompactTextString(m) }
func (*Bet) ProtoMessage()    {}

// UserBets 按下注顺序保存
type UserBets struct {
	Bets []*Bet `protobuf:"bytes,1,rep,name=bets,proto3" json:"bets,omitempty"`
}

func (m *UserBets) Reset()         { *m = UserBets{} }
func (m *UserBets) String() string { return proto.CompactTextString(m) }
func (*UserBets) ProtoMessage()    {}

// Config 合约全局配置与熵缓冲
type Config struct {
	Owner       string   `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Triggerer   string   `protobuf:"bytes,2,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
	TokenExec   string   `protobuf:"bytes,3,opt,name=tokenExec,proto3" json:"tokenExec,omitempty"`
	TokenSymbol string   `protobuf:"bytes,4,opt,name=tokenSymbol,proto3" json:"tokenSymbol,omitempty"`
	PrngSeed    []byte   `protobuf:"bytes,5,opt,name=prngSeed,proto3" json:"prngSeed,omitempty"`
	BaseSeed    []byte   `protobuf:"bytes,6,opt,name=baseSeed,proto3" json:"baseSeed,omitempty"`
	Recent      [][]byte `protobuf:"bytes,7,rep,name=recent,proto3" json:"recent,omitempty"`
	TierCount   int32    `protobuf:"varint,8,opt,name=tierCount,proto3" json:"tierCount,omitempty"`
}

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

type ReceiptLuckyInit struct {
	Owner       string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Triggerer   string `protobuf:"bytes,2,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
	TokenExec   string `protobuf:"bytes,3,opt,name=tokenExec,proto3" json:"tokenExec,omitempty"`
	TokenSymbol string `protobuf:"bytes,4,opt,name=tokenSymbol,proto3" json:"tokenSymbol,omitempty"`
	TierCount   int32  `protobuf:"varint,5,opt,name=tierCount,proto3" json:"tierCount,omitempty"`
}

func (m *ReceiptLuckyInit) Reset()         { *m = ReceiptLuckyInit{} }
func (m *ReceiptLuckyInit) String() string { return proto.CompactTextString(m) }
func (*ReceiptLuckyInit) ProtoMessage()    {}

type ReceiptLuckyBet struct {
	Addr       string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Tier       int32  `protobuf:"varint,2,opt,name=tier,proto3" json:"tier,omitempty"`
	Round      uint32 `protobuf:"varint,3,opt,name=round,proto3" json:"round,omitempty"`
	Number     uint32 `protobuf:"varint,4,opt,name=number,proto3" json:"number,omitempty"`
	Amount     int64  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	PoolSize   int64  `protobuf:"varint,6,opt,name=poolSize,proto3" json:"poolSize,omitempty"`
	UsersCount uint32 `protobuf:"varint,7,opt,name=usersCount,proto3" json:"usersCount,omitempty"`
}

func (m *ReceiptLuckyBet) Reset()         { *m = ReceiptLuckyBet{} }
func (m *ReceiptLuckyBet) String() string { return proto.CompactTextString(m) }
func (*ReceiptLuckyBet) ProtoMessage()    {}

// ReceiptLuckySettle 撤回或领奖
type ReceiptLuckySettle struct {
	Addr     string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Tier     int32  `protobuf:"varint,2,opt,name=tier,proto3" json:"tier,omitempty"`
	Round    uint32 `protobuf:"varint,3,opt,name=round,proto3" json:"round,omitempty"`
	Number   uint32 `protobuf:"varint,4,opt,name=number,proto3" json:"number,omitempty"`
	Amount   int64  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	PoolSize int64  `protobuf:"varint,6,opt,name=poolSize,proto3" json:"poolSize,omitempty"`
}

func (m *ReceiptLuckySettle) Reset()         { *m = ReceiptLuckySettle{} }
func (m *ReceiptLuckySettle) String() string { return proto.CompactTextString(m) }
func (*ReceiptLuckySettle) ProtoMessage()    {}

type ReceiptLuckyDraw struct {
	Tier             int32  `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Round            uint32 `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
	LuckyNumber      uint32 `protobuf:"varint,3,opt,name=luckyNumber,proto3" json:"luckyNumber,omitempty"`
	WinnerCount      uint32 `protobuf:"varint,4,opt,name=winnerCount,proto3" json:"winnerCount,omitempty"`
	RoundEndPoolSize int64  `protobuf:"varint,5,opt,name=roundEndPoolSize,proto3" json:"roundEndPoolSize,omitempty"`
	TriggererFee     int64  `protobuf:"varint,6,opt,name=triggererFee,proto3" json:"triggererFee,omitempty"`
	Rollover         int64  `protobuf:"varint,7,opt,name=rollover,proto3" json:"rollover,omitempty"`
	RoundEndTime     int64  `protobuf:"varint,8,opt,name=roundEndTime,proto3" json:"roundEndTime,omitempty"`
	Triggerer        string `protobuf:"bytes,9,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
}

func (m *ReceiptLuckyDraw) Reset()         { *m = ReceiptLuckyDraw{} }
func (m *ReceiptLuckyDraw) String() string { return proto.CompactTextString(m) }
func (*ReceiptLuckyDraw) ProtoMessage()    {}

type TierDrawResult struct {
	Tier        int32  `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Drawn       bool   `protobuf:"varint,2,opt,name=drawn,proto3" json:"drawn,omitempty"`
	LuckyNumber uint32 `protobuf:"varint,3,opt,name=luckyNumber,proto3" json:"luckyNumber,omitempty"`
	Round       uint32 `protobuf:"varint,4,opt,name=round,proto3" json:"round,omitempty"`
	WinnerCount uint32 `protobuf:"varint,5,opt,name=winnerCount,proto3" json:"winnerCount,omitempty"`
}

func (m *TierDrawResult) Reset()         { *m = TierDrawResult{} }
func (m *TierDrawResult) String() string { return proto.CompactTextString(m) }
func (*TierDrawResult) ProtoMessage()    {}

type ReplyTriggerDraw struct {
	Results []*TierDrawResult `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ReplyTriggerDraw) Reset()         { *m = ReplyTriggerDraw{} }
func (m *ReplyTriggerDraw) String() string { return proto.CompactTextString(m) }
func (*ReplyTriggerDraw) ProtoMessage()    {}

type ReceiptLuckyViewingKey struct {
	Addr string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Key  string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *ReceiptLuckyViewingKey) Reset()         { *m = ReceiptLuckyViewingKey{} }
func (m *ReceiptLuckyViewingKey) String() string { return proto.CompactTextString(m) }
func (*ReceiptLuckyViewingKey) ProtoMessage()    {}

type ReceiptLuckyConfig struct {
	Owner     string      `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Triggerer string      `protobuf:"bytes,2,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
	Tier      int32       `protobuf:"varint,3,opt,name=tier,proto3" json:"tier,omitempty"`
	Config    *TierConfig `protobuf:"bytes,4,opt,name=config,proto3" json:"config,omitempty"`
}

func (m *ReceiptLuckyConfig) Reset()         { *m = ReceiptLuckyConfig{} }
func (m *ReceiptLuckyConfig) String() string { return proto.CompactTextString(m) }
func (*ReceiptLuckyConfig) ProtoMessage()    {}

type ReplyTriggerer struct {
	Triggerer string `protobuf:"bytes,1,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
}

func (m *ReplyTriggerer) Reset()         { *m = ReplyTriggerer{} }
func (m *ReplyTriggerer) String() string { return proto.CompactTextString(m) }
func (*ReplyTriggerer) ProtoMessage()    {}

type ReplyConfig struct {
	Owner       string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Triggerer   string `protobuf:"bytes,2,opt,name=triggerer,proto3" json:"triggerer,omitempty"`
	TokenExec   string `protobuf:"bytes,3,opt,name=tokenExec,proto3" json:"tokenExec,omitempty"`
	TokenSymbol string `protobuf:"bytes,4,opt,name=tokenSymbol,proto3" json:"tokenSymbol,omitempty"`
	TierCount   int32  `protobuf:"varint,5,opt,name=tierCount,proto3" json:"tierCount,omitempty"`
	ExecAddr    string `protobuf:"bytes,6,opt,name=execAddr,proto3" json:"execAddr,omitempty"`
}

func (m *ReplyConfig) Reset()         { *m = ReplyConfig{} }
func (m *ReplyConfig) String() string { return proto.CompactTextString(m) }
func (*ReplyConfig) ProtoMessage()    {}

type BetRef struct {
	Tier  int32  `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Round uint32 `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *BetRef) Reset()         { *m = BetRef{} }
func (m *BetRef) String() string { return proto.CompactTextString(m) }
func (*BetRef) ProtoMessage()    {}

// ReqUserBets Refs 为空时返回全部下注
type ReqUserBets struct {
	Addr string    `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Key  string    `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Refs []*BetRef `protobuf:"bytes,3,rep,name=refs,proto3" json:"refs,omitempty"`
}

func (m *ReqUserBets) Reset()         { *m = ReqUserBets{} }
func (m *ReqUserBets) String() string { return proto.CompactTextString(m) }
func (*ReqUserBets) ProtoMessage()    {}

type ReqPaginatedUserBets struct {
	Addr     string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Key      string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Page     uint32 `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize uint32 `protobuf:"varint,4,opt,name=pageSize,proto3" json:"pageSize,omitempty"`
}

func (m *ReqPaginatedUserBets) Reset()         { *m = ReqPaginatedUserBets{} }
func (m *ReqPaginatedUserBets) String() string { return proto.CompactTextString(m) }
func (*ReqPaginatedUserBets) ProtoMessage()    {}

type ReplyUserBets struct {
	Bets  []*Bet `protobuf:"bytes,1,rep,name=bets,proto3" json:"bets,omitempty"`
	Total uint32 `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *ReplyUserBets) Reset()         { *m = ReplyUserBets{} }
func (m *ReplyUserBets) String() string { return proto.CompactTextString(m) }
func (*ReplyUserBets) ProtoMessage()    {}

func (m *ReplyUserBets) GetBets() []*Bet {
	if m != nil {
		return m.Bets
	}
	return nil
}

type ReqPaginatedRounds struct {
	Tier     int32  `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Page     uint32 `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize uint32 `protobuf:"varint,3,opt,name=pageSize,proto3" json:"pageSize,omitempty"`
}

func (m *ReqPaginatedRounds) Reset()         { *m = ReqPaginatedRounds{} }
func (m *ReqPaginatedRounds) String() string { return proto.CompactTextString(m) }
func (*ReqPaginatedRounds) ProtoMessage()    {}

type ReqRounds struct {
	Tier   int32    `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Rounds []uint32 `protobuf:"varint,2,rep,packed,name=rounds,proto3" json:"rounds,omitempty"`
}

func (m *ReqRounds) Reset()         { *m = ReqRounds{} }
func (m *ReqRounds) String() string { return proto.CompactTextString(m) }
func (*ReqRounds) ProtoMessage()    {}

type ReplyRounds struct {
	Tier   int32    `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Rounds []*Round `protobuf:"bytes,2,rep,name=rounds,proto3" json:"rounds,omitempty"`
	Total  uint32   `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *ReplyRounds) Reset()         { *m = ReplyRounds{} }
func (m *ReplyRounds) String() string { return proto.CompactTextString(m) }
func (*ReplyRounds) ProtoMessage()    {}

func (m *ReplyRounds) GetRounds() []*Round {
	if m != nil {
		return m.Rounds
	}
	return nil
}

type TierInfo struct {
	Tier   int32       `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Config *TierConfig `protobuf:"bytes,2,opt,name=config,proto3" json:"config,omitempty"`
}

func (m *TierInfo) Reset()         { *m = TierInfo{} }
func (m *TierInfo) String() string { return proto.CompactTextString(m) }
func (*TierInfo) ProtoMessage()    {}

type ReplyTierConfigs struct {
	Tiers []*TierInfo `protobuf:"bytes,1,rep,name=tiers,proto3" json:"tiers,omitempty"`
}

func (m *ReplyTierConfigs) Reset()         { *m = ReplyTierConfigs{} }
func (m *ReplyTierConfigs) String() string { return proto.CompactTextString(m) }
func (*ReplyTierConfigs) ProtoMessage()    {}

type TierTrigger struct {
	Tier      int32  `protobuf:"varint,1,opt,name=tier,proto3" json:"tier,omitempty"`
	Round     uint32 `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
	PoolSize  int64  `protobuf:"varint,3,opt,name=poolSize,proto3" json:"poolSize,omitempty"`
	Threshold int64  `protobuf:"varint,4,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Ready     bool   `protobuf:"varint,5,opt,name=ready,proto3" json:"ready,omitempty"`
}

func (m *TierTrigger) Reset()         { *m = TierTrigger{} }
func (m *TierTrigger) String() string { return proto.CompactTextString(m) }
func (*TierTrigger) ProtoMessage()    {}

type ReplyCheckTriggers struct {
	Triggers []*TierTrigger `protobuf:"bytes,1,rep,name=triggers,proto3" json:"triggers,omitempty"`
}

func (m *ReplyCheckTriggers) Reset()         { *m = ReplyCheckTriggers{} }
func (m *ReplyCheckTriggers) String() string { return proto.CompactTextString(m) }
func (*ReplyCheckTriggers) ProtoMessage()    {}
