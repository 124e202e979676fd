// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"time"
)

// Clock 提供区块时间（秒）
type Clock interface {
	Now() int64
}

// SystemClock 使用本机时间
type SystemClock struct{}

// Now unix 秒
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// ManualClock 手动推进的时钟，用于测试与回放
type ManualClock struct {
	mu  sync.Mutex
	now int64
}

// NewManualClock new
func NewManualClock(now int64) *ManualClock {
	return &ManualClock{now: now}
}

// Now 当前时间
func (c *ManualClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance 前进 d 秒
func (c *ManualClock) Advance(d int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}
