// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	dbm "github.com/33cn/luckynumber/common/db"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/33cn/luckynumber/types"
)

var zeroKeyHash [sha256.Size]byte

func hashViewingKey(key string) []byte {
	h := sha256.Sum256([]byte(key))
	return h[:]
}

func newViewingKey(prngSeed []byte, blocktime int64, sender, entropy string) string {
	h := sha256.New()
	h.Write(prngSeed)
	h.Write(uint64Bytes(uint64(blocktime)))
	h.Write([]byte(sender))
	h.Write([]byte(entropy))
	return ty.ViewingKeyPrefix + base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// checkViewingKey 常数时间比较。没有设置密钥时也和全零比较一次，再返回 false
func checkViewingKey(stored []byte, found bool, key string) bool {
	hash := hashViewingKey(key)
	if !found {
		subtle.ConstantTimeCompare(zeroKeyHash[:], hash)
		return false
	}
	return subtle.ConstantTimeCompare(stored, hash) == 1
}

func loadViewingKey(db dbm.KV, addr string) ([]byte, bool, error) {
	stored, err := db.Get(calcViewingKeyKey(addr))
	if err == types.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return stored, true, nil
}

func verifyViewingKey(db dbm.KV, addr, key string) error {
	stored, found, err := loadViewingKey(db, addr)
	if err != nil {
		return err
	}
	if !checkViewingKey(stored, found, key) {
		return ty.ErrViewingKey
	}
	return nil
}

// CreateViewingKey 生成查看密钥，密钥只出现在收据日志中，链上只存它的哈希
func (a *Action) CreateViewingKey(payload *ty.LuckyCreateViewingKey) (*types.Receipt, error) {
	cfg, err := loadConfig(a.db)
	if err != nil {
		return nil, err
	}
	key := newViewingKey(cfg.PrngSeed, a.blocktime, a.fromaddr, payload.Entropy)
	if err := a.setRaw(calcViewingKeyKey(a.fromaddr), hashViewingKey(key)); err != nil {
		return nil, err
	}
	a.addLog(ty.TyLogLuckyViewingKey, &ty.ReceiptLuckyViewingKey{Addr: a.fromaddr, Key: key})
	return a.receipt(), nil
}

// SetViewingKey 设置自己的查看密钥
func (a *Action) SetViewingKey(payload *ty.LuckySetViewingKey) (*types.Receipt, error) {
	if _, err := loadConfig(a.db); err != nil {
		return nil, err
	}
	if payload.Key == "" {
		return nil, ty.ErrViewingKey
	}
	if err := a.setRaw(calcViewingKeyKey(a.fromaddr), hashViewingKey(payload.Key)); err != nil {
		return nil, err
	}
	a.addLog(ty.TyLogLuckyViewingKey, &ty.ReceiptLuckyViewingKey{Addr: a.fromaddr})
	return a.receipt(), nil
}
