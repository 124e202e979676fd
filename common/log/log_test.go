// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/luckynumber/types"
	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, parseLevel("debug"))
	assert.Equal(t, log15.LvlInfo, parseLevel("info"))
	assert.Equal(t, log15.LvlError, parseLevel("nosuchlevel"))
}

func TestSetFileLog(t *testing.T) {
	dir, err := ioutil.TempDir("", "luckylog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := &types.Log{LogFile: filepath.Join(dir, "lucky.log"), Loglevel: "info", MaxFileSize: 1}
	SetFileLog(cfg)
	New("module", "test").Info("hello", "k", 1)

	data, err := ioutil.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Equal(t, "eror", cfg.LogConsoleLevel)
}

func TestSetLogLevelClosesFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "luckylog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	SetFileLog(&types.Log{LogFile: filepath.Join(dir, "a.log"), Loglevel: "debug"})
	assert.NotNil(t, rotator)
	SetLogLevel("error")
	assert.Nil(t, rotator)
}
