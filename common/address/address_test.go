// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/33cn/luckynumber/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyToAddress(t *testing.T) {
	addr := PubKeyToAddress(common.Sha256([]byte("alice")))
	require.NoError(t, CheckAddress(addr.String()))

	a, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, a.Hash160)
}

func TestCheckAddress(t *testing.T) {
	assert.NoError(t, CheckAddress("12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"))
	assert.Error(t, CheckAddress("12qyocayNF7Lv6C9qW4avxs2E7U41fKSfw"))
	assert.Error(t, CheckAddress("12qyocay"))
	assert.Error(t, CheckAddress("0OIl"))
	//second lookup comes from the cache
	assert.Error(t, CheckAddress("12qyocay"))
}

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("luckynumber")
	require.NoError(t, CheckAddress(addr))
	assert.Equal(t, addr, ExecAddress("luckynumber"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
}

func TestNormalizeAddress(t *testing.T) {
	addr, err := NormalizeAddress("  12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv ")
	require.NoError(t, err)
	assert.Equal(t, "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv", addr)

	_, err = NormalizeAddress("")
	assert.Equal(t, ErrEmptyAddress, err)
	_, err = NormalizeAddress("notanaddress")
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	_, err := NewAddrFromString("0OIl")
	assert.Equal(t, ErrAddressDecode, errors.Cause(err))
	_, err = NewAddrFromString("12qyocay")
	assert.Equal(t, ErrAddressLength, errors.Cause(err))
	_, err = NewAddrFromString("12qyocayNF7Lv6C9qW4avxs2E7U41fKSfw")
	assert.Equal(t, ErrAddressChecksum, errors.Cause(err))
}
