/*
 * Copyright 2026 The Polis Protocol Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metric exposes coordinator state as prometheus metrics.
package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/polis-protocol/polis/coordinator"
	"github.com/polis-protocol/polis/types"
)

// polisStatsMetrics provide description, value, and value type for polis
// stat metrics.
type polisStatsMetrics []struct {
	desc    *prometheus.Desc
	eval    func(types.GlobalStats, types.ChainStats) float64
	valType prometheus.ValueType
}

// PolisCollector evaluates coordinator snapshots on every scrape.
type PolisCollector struct {
	coord   *coordinator.Coordinator
	metrics polisStatsMetrics
}

func polisStatNamespace(s string) string {
	return fmt.Sprintf("polisstats_%s", s)
}

// NewPolisCollector returns a collector bound to one coordinator.
func NewPolisCollector(coord *coordinator.Coordinator) prometheus.Collector {
	return &PolisCollector{
		coord: coord,
		metrics: polisStatsMetrics{
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("shards_total"),
					"Number of registered shards",
					nil, nil,
				),
				eval: func(g types.GlobalStats, _ types.ChainStats) float64 {
					return float64(g.TotalShards)
				},
				valType: prometheus.GaugeValue,
			},
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("online_nodes_total"),
					"Online identities summed over shard memberships",
					nil, nil,
				),
				eval: func(g types.GlobalStats, _ types.ChainStats) float64 {
					return float64(g.TotalOnlineNodes)
				},
				valType: prometheus.GaugeValue,
			},
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("union_strength_total"),
					"Recorded actions summed over all shards",
					nil, nil,
				),
				eval: func(g types.GlobalStats, _ types.ChainStats) float64 {
					return float64(g.TotalUnionStrength)
				},
				valType: prometheus.GaugeValue,
			},
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("capital_diverted_cents"),
					"Diverted value in cents summed over all shards",
					nil, nil,
				),
				eval: func(g types.GlobalStats, _ types.ChainStats) float64 {
					return float64(g.TotalCapitalDiverted)
				},
				valType: prometheus.GaugeValue,
			},
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("active_campaigns_total"),
					"Active campaigns summed over all shards",
					nil, nil,
				),
				eval: func(g types.GlobalStats, _ types.ChainStats) float64 {
					return float64(g.TotalActiveCampaigns)
				},
				valType: prometheus.GaugeValue,
			},
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("blocks_total"),
					"Blocks summed over all shard chains",
					nil, nil,
				),
				eval: func(_ types.GlobalStats, c types.ChainStats) float64 {
					return float64(c.TotalBlocks)
				},
				valType: prometheus.GaugeValue,
			},
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("pending_actions_total"),
					"Pending pool sizes summed over all shards",
					nil, nil,
				),
				eval: func(_ types.GlobalStats, c types.ChainStats) float64 {
					return float64(c.TotalPendingActions)
				},
				valType: prometheus.GaugeValue,
			},
			{
				desc: prometheus.NewDesc(
					polisStatNamespace("actions_per_second"),
					"Recent throughput estimate",
					nil, nil,
				),
				eval: func(_ types.GlobalStats, c types.ChainStats) float64 {
					return float64(c.ActionsPerSecond)
				},
				valType: prometheus.GaugeValue,
			},
		},
	}
}

// Describe returns all descriptions of the collector.
func (pc *PolisCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, i := range pc.metrics {
		ch <- i.desc
	}
}

// Collect returns the current state of all metrics of the collector.
func (pc *PolisCollector) Collect(ch chan<- prometheus.Metric) {
	global := pc.coord.GlobalStats()
	chain := pc.coord.ChainStats()
	for _, i := range pc.metrics {
		ch <- prometheus.MustNewConstMetric(i.desc, i.valType, i.eval(global, chain))
	}
}
