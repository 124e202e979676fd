// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/33cn/luckynumber/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecMetrics(t *testing.T) {
	m := NewExecMetrics(&types.Exec{EnableMetrics: true})
	defer m.Close()
	assert.Len(t, m.Metrics(), 3)

	start := time.Now()
	m.ObserveTx("luckynumber", "Bet", start, nil)
	m.ObserveTx("luckynumber", "Bet", start, errors.New("ErrBetExists"))
	m.ObserveQuery("luckynumber", "GetTriggerer", start)
	assert.Equal(t, int64(2), m.Timer("exec.luckynumber.Bet").Count())

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `luckynumber_exec_txs_total{action="Bet",driver="luckynumber"} 2`)
	assert.Contains(t, out, `luckynumber_exec_failures_total{driver="luckynumber",error="ErrBetExists"} 1`)
	assert.Contains(t, out, `luckynumber_exec_queries_total{driver="luckynumber",func="GetTriggerer"} 1`)
}

func TestExecMetricsDisabled(t *testing.T) {
	m := NewExecMetrics(nil)
	assert.False(t, m.Enabled())
	m.ObserveTx("coins", "Transfer", time.Now(), nil)

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.NotContains(t, buf.String(), "coins")

	var nilMetrics *ExecMetrics
	assert.False(t, nilMetrics.Enabled())
}
