// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/sha256"
	"testing"

	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/stretchr/testify/assert"
)

func TestMix(t *testing.T) {
	base := uint64Bytes(1)
	entropy := uint64Bytes(2)
	recent := [][]byte{uint64Bytes(3), uint64Bytes(4)}

	var concat []byte
	concat = append(concat, base...)
	concat = append(concat, entropy...)
	concat = append(concat, recent[0]...)
	concat = append(concat, recent[1]...)
	assert.Equal(t, sha256.Sum256(concat), mix(base, entropy, recent))

	// 顺序敏感
	assert.NotEqual(t, mix(base, entropy, recent), mix(base, entropy, [][]byte{recent[1], recent[0]}))
	assert.NotEqual(t, mix(base, entropy, recent), mix(base, uint64Bytes(5), recent))
}

func TestPushEntropy(t *testing.T) {
	cfg := &ty.Config{}
	for i := uint64(1); i <= 8; i++ {
		pushEntropy(cfg, i)
		if i <= ty.EntropyCapacity {
			assert.Len(t, cfg.Recent, int(i))
		}
	}
	assert.Len(t, cfg.Recent, ty.EntropyCapacity)
	for i, e := range cfg.Recent {
		assert.Equal(t, uint64Bytes(uint64(i+3)), e)
		assert.Len(t, e, ty.EntropySize)
	}
}

func TestIntn1(t *testing.T) {
	assert.Equal(t, uint32(3), intn1(&fixedSource{vals: []uint32{2}}, 5))
	assert.Equal(t, uint32(1), intn1(&fixedSource{vals: []uint32{5}}, 5))
	assert.Equal(t, uint32(1), intn1(&fixedSource{vals: []uint32{0xffffffff}}, 1))
	// 2^32 % 10 == 6，最后 6 个值被丢弃
	assert.Equal(t, uint32(8), intn1(&fixedSource{vals: []uint32{0xffffffff, 0xfffffffa, 7}}, 10))
	assert.Equal(t, uint32(10), intn1(&fixedSource{vals: []uint32{0xfffffff9}}, 10))
}

func TestChachaRand(t *testing.T) {
	seed := mix(uint64Bytes(20210312), uint64Bytes(7), nil)
	a := newDrawRand(seed)
	b := newDrawRand(seed)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint32(), b.Uint32())
	}

	other := newDrawRand(mix(uint64Bytes(20210312), uint64Bytes(8), nil))
	same := 0
	src := newDrawRand(seed)
	for i := 0; i < 16; i++ {
		if src.Uint32() == other.Uint32() {
			same++
		}
	}
	assert.Less(t, same, 16)

	counts := make(map[uint32]int)
	for i := 0; i < 2000; i++ {
		n := intn1(src, 5)
		assert.True(t, n >= 1 && n <= 5)
		counts[n]++
	}
	assert.Len(t, counts, 5)
	for _, c := range counts {
		assert.InDelta(t, 400, c, 120)
	}
}
