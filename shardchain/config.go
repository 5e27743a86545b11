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

package shardchain

import (
	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/types"
)

// Campaign defaults applied when a Config leaves them unset. Lazily created
// campaigns use the configured values, never literals at the call site.
const (
	DefaultCampaignGoal     uint64 = 1000
	DefaultCampaignDuration uint64 = 10000 // height units
)

// Config collects the construction parameters of one shard chain.
type Config struct {
	ShardID proto.ShardID
	Range   types.IdeologyRange

	// CampaignGoal and CampaignDuration parameterize lazily created
	// campaigns. Zero means the package default.
	CampaignGoal     uint64
	CampaignDuration uint64

	// ProofPolicy gates actions entering the pending pool and re-checks
	// them at block verification. Nil means types.DefaultProofPolicy.
	ProofPolicy types.ProofPolicy
}

func (cfg *Config) normalize() {
	if cfg.CampaignGoal == 0 {
		cfg.CampaignGoal = DefaultCampaignGoal
	}
	if cfg.CampaignDuration == 0 {
		cfg.CampaignDuration = DefaultCampaignDuration
	}
	if cfg.ProofPolicy == nil {
		cfg.ProofPolicy = types.DefaultProofPolicy
	}
}
