// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器的统计：go-metrics 计时器输出到日志，prometheus 计数器按文本格式导出
package metrics

import (
	"io"
	"reflect"
	"time"

	"github.com/33cn/luckynumber/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	gometrics "github.com/rcrowley/go-metrics"
)

var log = log15.New("module", "metrics")

//Namespace prometheus 指标前缀
var Namespace = "luckynumber"

//Collector 可以导出 prometheus 指标的结构体
type Collector interface {
	Metrics() []prometheus.Collector
}

//PrometheusCollectorsFromFields 收集结构体中所有 prometheus.Collector 类型的字段
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

//ExecMetrics 执行器的指标
type ExecMetrics struct {
	Txs      *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Queries  *prometheus.CounterVec

	registry   *prometheus.Registry
	timers     gometrics.Registry
	enabled    bool
	stopLogger chan struct{}
}

//NewExecMetrics 创建执行器指标，enabled 为 false 时所有操作为空
func NewExecMetrics(cfg *types.Exec) *ExecMetrics {
	m := &ExecMetrics{
		Txs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "exec",
			Name:      "txs_total",
			Help:      "executed transactions by driver and action",
		}, []string{"driver", "action"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "exec",
			Name:      "failures_total",
			Help:      "failed transactions by driver and error",
		}, []string{"driver", "error"}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "exec",
			Name:      "queries_total",
			Help:      "queries by driver and function",
		}, []string{"driver", "func"}),
		registry: prometheus.NewRegistry(),
		timers:   gometrics.NewRegistry(),
	}
	if cfg != nil {
		m.enabled = cfg.EnableMetrics
	}
	m.registry.MustRegister(m.Metrics()...)
	if m.enabled && cfg.MetricsLogInterval > 0 {
		m.stopLogger = make(chan struct{})
		go m.logLoop(time.Duration(cfg.MetricsLogInterval) * time.Second)
	}
	return m
}

//Metrics 实现 Collector
func (m *ExecMetrics) Metrics() []prometheus.Collector {
	return PrometheusCollectorsFromFields(m)
}

//Enabled 是否开启
func (m *ExecMetrics) Enabled() bool {
	return m != nil && m.enabled
}

//ObserveTx 记录一笔交易
func (m *ExecMetrics) ObserveTx(driver, action string, start time.Time, err error) {
	if !m.Enabled() {
		return
	}
	m.Txs.WithLabelValues(driver, action).Inc()
	if err != nil {
		m.Failures.WithLabelValues(driver, err.Error()).Inc()
	}
	gometrics.GetOrRegisterTimer("exec."+driver+"."+action, m.timers).UpdateSince(start)
}

//ObserveQuery 记录一次查询
func (m *ExecMetrics) ObserveQuery(driver, funcname string, start time.Time) {
	if !m.Enabled() {
		return
	}
	m.Queries.WithLabelValues(driver, funcname).Inc()
	gometrics.GetOrRegisterTimer("query."+driver+"."+funcname, m.timers).UpdateSince(start)
}

//Timer 按名字获取计时器
func (m *ExecMetrics) Timer(name string) gometrics.Timer {
	return gometrics.GetOrRegisterTimer(name, m.timers)
}

//WriteText 以 prometheus 文本格式输出
func (m *ExecMetrics) WriteText(w io.Writer) error {
	mfs, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func (m *ExecMetrics) logLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.timers.Each(func(name string, i interface{}) {
				if t, ok := i.(gometrics.Timer); ok {
					ts := t.Snapshot()
					log.Info("timer", "name", name, "count", ts.Count(),
						"mean", time.Duration(ts.Mean()), "p99", time.Duration(ts.Percentile(0.99)))
				}
			})
		case <-m.stopLogger:
			return
		}
	}
}

//Close 停止日志输出
func (m *ExecMetrics) Close() {
	if m.stopLogger != nil {
		close(m.stopLogger)
		m.stopLogger = nil
	}
}
