// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/luckynumber/common/address"
	"github.com/33cn/luckynumber/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate 创建一个新的驱动实例，每笔交易一个
type DriverCreate func() Driver

type driverEntry struct {
	create DriverCreate
	// 从这个高度开始可用
	height int64
}

var registry = struct {
	sync.RWMutex
	byName map[string]*driverEntry
	byAddr map[string]*driverEntry
}{
	byName: make(map[string]*driverEntry),
	byAddr: make(map[string]*driverEntry),
}

func (d *driverEntry) enabled(height int64) bool {
	return height == -1 || height >= d.height
}

// Register 注册驱动，同名重复注册会 panic
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("dapp: Register driver is nil")
	}
	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.byName[name]; dup {
		panic("dapp: Register called twice for driver " + name)
	}
	entry := &driverEntry{create: create, height: height}
	registry.byName[name] = entry
	registry.byAddr[ExecAddress(name)] = entry
}

// LoadDriver 创建驱动实例，height 为 -1 表示查询，不检查启用高度
func LoadDriver(name string, height int64) (Driver, error) {
	registry.RLock()
	entry, ok := registry.byName[name]
	registry.RUnlock()
	if !ok || !entry.enabled(height) {
		elog.Debug("LoadDriver", "driver", name, "height", height)
		return nil, types.ErrUnRegistedDriver
	}
	return entry.create(), nil
}

// IsDriverAddress 是否是已启用的执行器地址
func IsDriverAddress(addr string, height int64) bool {
	registry.RLock()
	defer registry.RUnlock()
	entry, ok := registry.byAddr[addr]
	return ok && entry.enabled(height)
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// CheckAddress 普通地址或者执行器地址都是合法的
func CheckAddress(addr string, height int64) error {
	if IsDriverAddress(addr, height) {
		return nil
	}
	return address.CheckAddress(addr)
}

// DriverNames 已注册的驱动
func DriverNames() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
