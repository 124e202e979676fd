// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/33cn/luckynumber/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginManager(t *testing.T) {
	var inited []string
	Register(&PluginBase{
		Name:     "b",
		ExecName: "bexec",
		Exec: func(name string, cfg *types.Config) error {
			inited = append(inited, name)
			return nil
		},
		Cmd: func() *cobra.Command { return &cobra.Command{Use: "bcmd"} },
	})
	Register(&PluginBase{
		Name:     "a",
		ExecName: "aexec",
		Exec: func(name string, cfg *types.Config) error {
			inited = append(inited, name)
			return nil
		},
	})
	assert.Panics(t, func() { Register(&PluginBase{Name: "a"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })
	assert.Panics(t, func() { Register(nil) })

	cfg, err := types.InitCfgString("")
	require.NoError(t, err)
	require.NoError(t, InitExec(cfg))
	require.NoError(t, InitExec(cfg))
	assert.Equal(t, []string{"aexec", "bexec"}, inited)
	assert.True(t, HasExec("bexec"))
	assert.False(t, HasExec("b"))

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	require.Len(t, root.Commands(), 1)
	assert.Equal(t, "bcmd", root.Commands()[0].Use)
}
