// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/sha256"
	"encoding/binary"

	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"golang.org/x/crypto/chacha20"
)

func uint64Bytes(v uint64) []byte {
	var b [ty.EntropySize]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

// mix SHA256(base || entropy || recent[0] || ... )
func mix(base, entropy []byte, recent [][]byte) [32]byte {
	h := sha256.New()
	h.Write(base)
	h.Write(entropy)
	for _, r := range recent {
		h.Write(r)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// pushEntropy 把下注号码放进熵缓冲，超过容量时丢掉最早的
func pushEntropy(cfg *ty.Config, number uint64) {
	cfg.Recent = append(cfg.Recent, uint64Bytes(number))
	if n := len(cfg.Recent); n > ty.EntropyCapacity {
		cfg.Recent = append([][]byte{}, cfg.Recent[n-ty.EntropyCapacity:]...)
	}
}

type drawSource interface {
	Uint32() uint32
}

// 测试中替换为固定输出
var newDrawRand = func(seed [32]byte) drawSource {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &chachaRand{stream: c}
}

type chachaRand struct {
	stream *chacha20.Cipher
}

func (r *chachaRand) Uint32() uint32 {
	var b [4]byte
	r.stream.XORKeyStream(b[:], b[:])
	return binary.BigEndian.Uint32(b[:])
}

// intn1 在 [1, n] 中均匀取一个数，n 必须大于 0
func intn1(src drawSource, n uint32) uint32 {
	// 丢弃 [limit, 2^32) 中的值避免取模偏差
	limit := (uint64(1) << 32) - (uint64(1)<<32)%uint64(n)
	for {
		v := src.Uint32()
		if uint64(v) < limit {
			return v%n + 1
		}
	}
}
