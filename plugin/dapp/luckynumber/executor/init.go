// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/sha256"
	"encoding/base64"
	"strconv"

	"github.com/33cn/luckynumber/account"
	"github.com/33cn/luckynumber/common/address"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

const (
	defaultTokenExec   = "coins"
	defaultTokenSymbol = "bty"
)

// Init 创建合约，调用者成为 owner，每个档位开启第 0 轮
func (a *Action) Init(payload *ty.LuckyInit) (*types.Receipt, error) {
	if _, err := loadConfig(a.db); err != ty.ErrNotInit {
		if err == nil {
			return nil, ty.ErrAlreadyInit
		}
		return nil, err
	}
	if len(payload.Tiers) == 0 {
		return nil, ty.ErrEmptyTiers
	}
	for _, c := range payload.Tiers {
		if err := checkTierConfig(c); err != nil {
			return nil, err
		}
	}
	triggerer, err := address.NormalizeAddress(payload.Triggerer)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	cfg := &ty.Config{
		Owner:       a.fromaddr,
		Triggerer:   triggerer,
		TokenExec:   payload.TokenExec,
		TokenSymbol: payload.TokenSymbol,
		BaseSeed:    uint64Bytes(payload.Entropy),
		TierCount:   int32(len(payload.Tiers)),
	}
	if cfg.TokenExec == "" {
		cfg.TokenExec = defaultTokenExec
	}
	if cfg.TokenSymbol == "" {
		cfg.TokenSymbol = defaultTokenSymbol
	}
	if _, err := account.NewAccountDB(cfg.TokenExec, cfg.TokenSymbol, a.db); err != nil {
		return nil, err
	}
	seed := sha256.Sum256([]byte(base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(payload.Entropy, 10)))))
	cfg.PrngSeed = seed[:]

	if err := a.saveConfig(cfg); err != nil {
		return nil, err
	}
	for i, c := range payload.Tiers {
		tier := int32(i + 1)
		if err := a.saveTier(tier, c); err != nil {
			return nil, err
		}
		if err := a.appendRound(tier, newRound(0, 0, c)); err != nil {
			return nil, err
		}
	}
	a.addLog(ty.TyLogLuckyInit, &ty.ReceiptLuckyInit{
		Owner:       cfg.Owner,
		Triggerer:   cfg.Triggerer,
		TokenExec:   cfg.TokenExec,
		TokenSymbol: cfg.TokenSymbol,
		TierCount:   cfg.TierCount,
	})
	llog.Info("Init", "owner", cfg.Owner, "triggerer", cfg.Triggerer, "tiers", cfg.TierCount)
	return a.receipt(), nil
}
