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

// Package demo seeds a coordinator with sample shards, identities, and
// actions for demonstration setups. Production nodes simply leave
// SeedDemoData off.
package demo

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/polis-protocol/polis/coordinator"
	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/types"
	"github.com/polis-protocol/polis/utils/log"
)

var demoShards = []struct {
	id     proto.ShardID
	r      types.IdeologyRange
	target string
	goal   uint64
	dur    uint64
}{
	{
		id: "fair-wages-shard",
		r: types.IdeologyRange{
			EconomicMin: -100, EconomicMax: 0,
			SocialMin: 50, SocialMax: 100,
			DiplomaticMin: 0, DiplomaticMax: 100,
		},
		target: "fair-wages-initiative",
		goal:   15000,
		dur:    10000,
	},
	{
		id: "green-energy-shard",
		r: types.IdeologyRange{
			EconomicMin: -50, EconomicMax: 50,
			SocialMin: 0, SocialMax: 100,
			DiplomaticMin: 50, DiplomaticMax: 100,
		},
		target: "green-energy-support",
		goal:   10000,
		dur:    5000,
	},
	{
		id: "living-wage-shard",
		r: types.IdeologyRange{
			EconomicMin: -100, EconomicMax: -20,
			SocialMin: -50, SocialMax: 50,
			DiplomaticMin: -50, DiplomaticMax: 50,
		},
		target: "living-wage-campaign",
		goal:   20000,
		dur:    15000,
	},
}

// Seed creates the demo shards and populates them with identities and
// recorded boycott and buycott history spread over the past days.
func Seed(coord *coordinator.Coordinator) error {
	for _, s := range demoShards {
		if err := coord.CreateShard(s.id, s.r); err != nil {
			return errors.Wrapf(err, "create demo shard %s", s.id)
		}
		if err := coord.CreateCampaign(s.id, s.target, s.goal, s.dur); err != nil {
			return errors.Wrapf(err, "create demo campaign %s", s.target)
		}
	}

	now := time.Now().Unix()

	// Five boycotters inside the fair wages range.
	for i := uint64(1); i <= 5; i++ {
		did := demoDID(i)
		coord.RegisterIdentity(did, types.StanceVector{-50, 75, 50})
		action := types.NewImpactAction(
			did, types.Boycott, "MEGA CORP", 5000+i*1000, demoProof(i))
		action.Timestamp = now - int64(i)*86400
		if err := coord.SubmitAction("fair-wages-shard", action); err != nil {
			return errors.Wrapf(err, "seed action for %s", did)
		}
	}

	// Five buycotters inside the green energy range.
	for i := uint64(6); i <= 10; i++ {
		did := demoDID(i)
		coord.RegisterIdentity(did, types.StanceVector{0, 50, 75})
		action := types.NewImpactAction(
			did, types.Buycott, "SUNRISE POWER", 3000+i*500, demoProof(i))
		action.Timestamp = now - int64(i)*43200
		if err := coord.SubmitAction("green-energy-shard", action); err != nil {
			return errors.Wrapf(err, "seed action for %s", did)
		}
	}

	// Three members in the living wage shard with no history yet.
	for i := uint64(1); i <= 3; i++ {
		coord.RegisterIdentity(demoDID(i)+"-lw", types.StanceVector{-60, 0, 0})
	}

	log.WithField("shards", len(demoShards)).Info("seeded demo data")
	return nil
}

func demoDID(i uint64) proto.DID {
	return proto.DID(fmt.Sprintf("did:polis:demo_user_%d", i))
}

func demoProof(i uint64) string {
	return fmt.Sprintf("zkproof_demo_%d_abc123def456789xyz0123456789abcdef", i)
}
