// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io/ioutil"
	"os"
	"testing"

	_ "github.com/33cn/luckynumber/plugin"
	_ "github.com/33cn/luckynumber/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	root := newRootCmd("luckynumber")
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"coins", "luckynumber", "state", "default_config"} {
		assert.True(t, names[name], name)
	}
	for _, args := range [][]string{
		{"luckynumber", "bet"},
		{"luckynumber", "query", "bets"},
		{"luckynumber", "viewkey", "create"},
		{"luckynumber", "owner", "change_tier"},
		{"coins", "send_exec"},
		{"state", "dump"},
	} {
		c, _, err := root.Find(args)
		require.NoError(t, err, args)
		assert.Equal(t, args[len(args)-1], c.Name())
	}
}

func TestStateCommands(t *testing.T) {
	f, err := ioutil.TempFile("", "luckynumber-*.toml")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString("[store]\ndriver = \"memdb\"\n[log]\nlogFile = \"\"\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	for _, args := range [][]string{
		{"state", "height"},
		{"state", "dump"},
		{"state", "drivers"},
		{"coins", "balance", "-a", "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"},
	} {
		root := newRootCmd("luckynumber")
		root.SetArgs(append([]string{"--conf", f.Name()}, args...))
		assert.NoError(t, root.Execute(), args)
	}
}
