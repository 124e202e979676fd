// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"testing"

	"github.com/33cn/luckynumber/common"
	"github.com/33cn/luckynumber/common/address"
	"github.com/33cn/luckynumber/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoDriver struct {
	DriverBase
}

func (d *demoDriver) GetDriverName() string {
	return "demo"
}

func newDemo() Driver {
	d := &demoDriver{}
	d.SetChild(d)
	return d
}

func TestRegister(t *testing.T) {
	Register("demo", newDemo, 10)
	assert.Panics(t, func() { Register("demo", newDemo, 0) })
	assert.Panics(t, func() { Register("nil", nil, 0) })
	assert.Contains(t, DriverNames(), "demo")

	_, err := LoadDriver("demo", 9)
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	d, err := LoadDriver("demo", 10)
	require.NoError(t, err)
	assert.Equal(t, "demo", d.GetDriverName())
	_, err = LoadDriver("demo", -1)
	assert.NoError(t, err)
	_, err = LoadDriver("nosuch", -1)
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	execaddr := ExecAddress("demo")
	assert.False(t, IsDriverAddress(execaddr, 9))
	assert.True(t, IsDriverAddress(execaddr, 10))
	assert.NoError(t, CheckAddress(execaddr, 10))
	assert.NoError(t, CheckAddress(address.PubKeyToAddress(common.Sha256([]byte("x"))).String(), 10))
	assert.Error(t, CheckAddress("bad", 10))
}
