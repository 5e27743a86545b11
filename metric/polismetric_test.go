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

package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/polis-protocol/polis/coordinator"
	"github.com/polis-protocol/polis/types"
)

func TestPolisCollector(t *testing.T) {
	Convey("Given a coordinator with recorded history", t, func() {
		coord := coordinator.NewCoordinator(coordinator.Config{})
		So(coord.CreateShard("everyone", types.IdeologyRange{
			EconomicMin: -100, EconomicMax: 100,
			SocialMin: -100, SocialMax: 100,
			DiplomaticMin: -100, DiplomaticMax: 100,
		}), ShouldBeNil)
		coord.RegisterIdentity("did:polis:alice", types.StanceVector{0, 0, 0})
		So(coord.RecordAction("did:polis:alice", types.Boycott, "ACME", 5000),
			ShouldBeNil)

		collector := NewPolisCollector(coord)

		Convey("The collector registers and gathers", func() {
			registry := prometheus.NewRegistry()
			So(registry.Register(collector), ShouldBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)

			values := make(map[string]float64)
			for _, mf := range families {
				values[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
			}
			So(values["polisstats_shards_total"], ShouldEqual, 1)
			So(values["polisstats_online_nodes_total"], ShouldEqual, 1)
			So(values["polisstats_union_strength_total"], ShouldEqual, 1)
			So(values["polisstats_capital_diverted_cents"], ShouldEqual, 5000)
			So(values["polisstats_active_campaigns_total"], ShouldEqual, 1)
			So(values["polisstats_blocks_total"], ShouldEqual, 1)
			So(values["polisstats_pending_actions_total"], ShouldEqual, 0)
		})
	})
}
