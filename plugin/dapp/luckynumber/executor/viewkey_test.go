// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"
	"strings"
	"testing"
	"time"

	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	"github.com/stretchr/testify/assert"
)

func TestCheckViewingKey(t *testing.T) {
	stored := hashViewingKey("secret")
	assert.True(t, checkViewingKey(stored, true, "secret"))
	assert.False(t, checkViewingKey(stored, true, "Secret"))
	assert.False(t, checkViewingKey(stored, false, "secret"))
	assert.False(t, checkViewingKey(nil, false, ""))
	assert.False(t, checkViewingKey(stored[:16], true, "secret"))
}

func TestNewViewingKey(t *testing.T) {
	k1 := newViewingKey([]byte("seed"), 100, "addr", "e")
	assert.True(t, strings.HasPrefix(k1, ty.ViewingKeyPrefix))
	assert.Equal(t, k1, newViewingKey([]byte("seed"), 100, "addr", "e"))
	assert.NotEqual(t, k1, newViewingKey([]byte("seed"), 101, "addr", "e"))
	assert.NotEqual(t, k1, newViewingKey([]byte("seed"), 100, "addr2", "e"))
	assert.NotEqual(t, k1, newViewingKey([]byte("seed"), 100, "addr", "f"))
}

// 没有设置密钥和密钥错误两种情况的耗时在统计上应该相同
func TestCheckViewingKeyTiming(t *testing.T) {
	if testing.Short() {
		t.Skip("timing")
	}
	const batches, perBatch = 101, 2000
	stored := hashViewingKey("secret")
	measure := func(found bool) time.Duration {
		samples := make([]time.Duration, 0, batches)
		for b := 0; b < batches; b++ {
			start := time.Now()
			for i := 0; i < perBatch; i++ {
				checkViewingKey(stored, found, "wrong-key")
			}
			samples = append(samples, time.Since(start))
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
		return samples[batches/2]
	}
	measure(true)
	unset := measure(false)
	wrong := measure(true)
	ratio := float64(unset) / float64(wrong)
	assert.True(t, ratio > 0.5 && ratio < 2, "unset %v wrong %v", unset, wrong)
}
