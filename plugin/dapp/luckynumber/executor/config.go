// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/luckynumber/common/db"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

func loadConfig(db dbm.KV) (*ty.Config, error) {
	data, err := db.Get(calcConfigKey())
	if err == types.ErrNotFound {
		return nil, ty.ErrNotInit
	}
	if err != nil {
		return nil, err
	}
	var cfg ty.Config
	if err := types.Decode(data, &cfg); err != nil {
		llog.Error("loadConfig", "err", err)
		return nil, types.ErrDecode
	}
	return &cfg, nil
}

func (a *Action) saveConfig(cfg *ty.Config) error {
	return a.save(calcConfigKey(), cfg)
}
