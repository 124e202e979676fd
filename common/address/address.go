// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address base58check 地址：由公钥或执行器名计算，校验与规范化
package address

import (
	"bytes"
	"strings"

	"github.com/33cn/luckynumber/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// version(1) + hash160(20) + checksum(4)
const rawLength = 25

//地址错误
var (
	ErrEmptyAddress    = errors.New("ErrEmptyAddress")
	ErrAddressDecode   = errors.New("ErrAddressDecode")
	ErrAddressLength   = errors.New("ErrAddressLength")
	ErrAddressChecksum = errors.New("ErrAddressChecksum")
)

// 执行器地址由这个前缀加执行器名计算
var execSeed = []byte("address seed bytes for public key")

var (
	execAddrCache *lru.Cache
	checkCache    *lru.Cache
)

func init() {
	execAddrCache, _ = lru.New(10240)
	checkCache, _ = lru.New(10240)
}

//Address 版本号和公钥的 hash160
type Address struct {
	Version byte
	Hash160 [20]byte
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(pub []byte) *Address {
	return &Address{Hash160: common.Rimp160AfterSha256(pub)}
}

//NewAddrFromString 解析并校验 base58 地址
func NewAddrFromString(s string) (*Address, error) {
	raw, err := decode(s)
	if err != nil {
		return nil, err
	}
	a := &Address{Version: raw[0]}
	copy(a.Hash160[:], raw[1:21])
	return a, nil
}

func (a *Address) String() string {
	var raw [rawLength]byte
	raw[0] = a.Version
	copy(raw[1:21], a.Hash160[:])
	sum := common.Sha2Sum(raw[:21])
	copy(raw[21:], sum[:4])
	return base58.Encode(raw[:])
}

func decode(s string) ([]byte, error) {
	raw := base58.Decode(s)
	if len(raw) == 0 {
		return nil, errors.Wrapf(ErrAddressDecode, "%q", s)
	}
	if len(raw) != rawLength {
		return nil, errors.Wrapf(ErrAddressLength, "%q decodes to %d bytes", s, len(raw))
	}
	sum := common.Sha2Sum(raw[:21])
	if !bytes.Equal(sum[:4], raw[21:]) {
		return nil, errors.Wrapf(ErrAddressChecksum, "%q", s)
	}
	return raw, nil
}

//ExecPubKey 执行器的“公钥”，没有对应的私钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("exec name too long: " + name)
	}
	buf := make([]byte, 0, len(execSeed)+len(name))
	buf = append(buf, execSeed...)
	buf = append(buf, name...)
	sum := common.Sha2Sum(buf)
	return sum[:]
}

//ExecAddress 执行器地址，结果有缓存
func ExecAddress(name string) string {
	if v, ok := execAddrCache.Get(name); ok {
		return v.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name)).String()
	execAddrCache.Add(name, addr)
	return addr
}

//CheckAddress 校验地址，结果有缓存
func CheckAddress(addr string) error {
	if v, ok := checkCache.Get(addr); ok {
		if v == nil {
			return nil
		}
		return v.(error)
	}
	_, err := decode(addr)
	checkCache.Add(addr, err)
	return err
}

//NormalizeAddress 去掉空白并重新编码，所有写入和查找用户数据的地址都需要经过这里
func NormalizeAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", ErrEmptyAddress
	}
	if err := CheckAddress(addr); err != nil {
		return "", err
	}
	a, err := NewAddrFromString(addr)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}
