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

package coordinator

import (
	"github.com/polis-protocol/polis/chainbus"
	"github.com/polis-protocol/polis/shardchain"
	"github.com/polis-protocol/polis/types"
)

const (
	// DefaultBatchThreshold seals a block for every accepted action.
	DefaultBatchThreshold = 1

	// ThroughputWindow bounds the actions-per-second estimate: a head
	// block older than this many seconds reports zero throughput.
	ThroughputWindow = 10
)

// Config collects the coordinator-wide defaults applied to shards it
// creates and to the block sealing policy.
type Config struct {
	// CampaignGoal and CampaignDuration are handed to every shard the
	// coordinator creates via CreateShard.
	CampaignGoal     uint64
	CampaignDuration uint64

	// BatchThreshold is the pending pool size that triggers block
	// production. Zero means DefaultBatchThreshold.
	BatchThreshold int

	// ProofPolicy overrides the proof acceptance rule on created
	// shards. Nil keeps types.DefaultProofPolicy.
	ProofPolicy types.ProofPolicy

	// Bus receives accepted action and appended block events. Nil
	// disables publication.
	Bus chainbus.Bus
}

func (c *Config) normalize() {
	if c.CampaignGoal == 0 {
		c.CampaignGoal = shardchain.DefaultCampaignGoal
	}
	if c.CampaignDuration == 0 {
		c.CampaignDuration = shardchain.DefaultCampaignDuration
	}
	if c.BatchThreshold <= 0 {
		c.BatchThreshold = DefaultBatchThreshold
	}
}
