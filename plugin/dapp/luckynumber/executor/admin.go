// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/luckynumber/common/address"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

func (a *Action) ownerConfig() (*ty.Config, error) {
	cfg, err := loadConfig(a.db)
	if err != nil {
		return nil, err
	}
	if a.fromaddr != cfg.Owner {
		llog.Error("owner only", "from", a.fromaddr, "owner", cfg.Owner)
		return nil, ty.ErrNoPrivilege
	}
	return cfg, nil
}

func (a *Action) configLog(cfg *ty.Config) {
	a.addLog(ty.TyLogLuckyConfig, &ty.ReceiptLuckyConfig{Owner: cfg.Owner, Triggerer: cfg.Triggerer})
}

// ChangeOwner 转移合约所有权
func (a *Action) ChangeOwner(payload *ty.LuckyChangeOwner) (*types.Receipt, error) {
	cfg, err := a.ownerConfig()
	if err != nil {
		return nil, err
	}
	owner, err := address.NormalizeAddress(payload.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	cfg.Owner = owner
	if err := a.saveConfig(cfg); err != nil {
		return nil, err
	}
	a.configLog(cfg)
	return a.receipt(), nil
}

// ChangeTriggerer 更换开奖人
func (a *Action) ChangeTriggerer(payload *ty.LuckyChangeTriggerer) (*types.Receipt, error) {
	cfg, err := a.ownerConfig()
	if err != nil {
		return nil, err
	}
	triggerer, err := address.NormalizeAddress(payload.Triggerer)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	cfg.Triggerer = triggerer
	if err := a.saveConfig(cfg); err != nil {
		return nil, err
	}
	a.configLog(cfg)
	return a.receipt(), nil
}

// ChangeTierConfig 修改档位参数，只影响之后新开的轮次
func (a *Action) ChangeTierConfig(payload *ty.LuckyChangeTierConfig) (*types.Receipt, error) {
	cfg, err := a.ownerConfig()
	if err != nil {
		return nil, err
	}
	if err := checkTierID(cfg, payload.Tier); err != nil {
		return nil, err
	}
	if err := checkTierConfig(payload.Config); err != nil {
		return nil, err
	}
	if err := a.saveTier(payload.Tier, payload.Config); err != nil {
		return nil, err
	}
	a.addLog(ty.TyLogLuckyConfig, &ty.ReceiptLuckyConfig{
		Owner:     cfg.Owner,
		Triggerer: cfg.Triggerer,
		Tier:      payload.Tier,
		Config:    payload.Config,
	})
	return a.receipt(), nil
}
