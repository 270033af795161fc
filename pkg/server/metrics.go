/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(grammar, target string)
	ObserveRenderNS(grammar, target string, t int64)
	ObserveInputBytes(n int)
}

type metricsStore struct {
	registry   *prometheus.Registry
	Requests   *prometheus.CounterVec
	RenderNS   *prometheus.HistogramVec
	InputBytes prometheus.Histogram
}

var (
	GrammarLabel = "grammar"
	TargetLabel  = "target"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Millisecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tint_requests",
			Help: "Render request counts by grammar and target",
		}, []string{GrammarLabel, TargetLabel}),
		RenderNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tint_render_ns",
			Help:    "Tokenize and render times by grammar and target",
			Buckets: buckets,
		}, []string{GrammarLabel, TargetLabel}),
		InputBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tint_input_bytes",
			Help:    "Source sizes submitted for rendering",
			Buckets: prometheus.ExponentialBuckets(64, 4, 10),
		}),
	}
}

func (m *metricsStore) Registry() *prometheus.Registry {
	return m.registry
}

func (m *metricsStore) RegisterCollector(c prometheus.Collector) {
	m.registry.MustRegister(c)
}

func (m *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metricsStore) IncRequests(grammar, target string) {
	m.Requests.WithLabelValues(grammar, target).Inc()
}

func (m *metricsStore) ObserveRenderNS(grammar, target string, t int64) {
	m.RenderNS.WithLabelValues(grammar, target).Observe(float64(t))
}

func (m *metricsStore) ObserveInputBytes(n int) {
	m.InputBytes.Observe(float64(n))
}
