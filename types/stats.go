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

package types

import "github.com/polis-protocol/polis/proto"

// ShardStats is a pure read snapshot of one shard.
type ShardStats struct {
	ShardID         proto.ShardID
	Height          uint64
	OnlineNodes     uint64
	UnionStrength   uint64
	CapitalDiverted uint64
	ActiveCampaigns uint64
	PendingActions  uint64
}

// GlobalStats aggregates shard stats across the whole coordinator.
type GlobalStats struct {
	TotalShards          uint64
	TotalOnlineNodes     uint64
	TotalUnionStrength   uint64
	TotalCapitalDiverted uint64
	TotalActiveCampaigns uint64
}

// UserStats summarizes one identity's recorded history across shards.
// CampaignsJoined counts one increment per matching action, not per
// distinct target.
type UserStats struct {
	CampaignsJoined uint64
	StreakDays      uint64
	TotalDiverted   uint64
	TotalActions    uint64
}

// ShardInfo is the per-shard line of the chain digest.
type ShardInfo struct {
	ShardID        proto.ShardID
	Height         uint64
	PendingActions uint64
	OnlineNodes    uint64
}

// ChainStats is the cross-shard chain digest. Throughput is a narrow
// estimate: total actions over elapsed seconds since the latest block, and
// only when that gap is at most ten seconds; otherwise zero.
type ChainStats struct {
	TotalBlocks          uint64
	TotalShards          uint64
	TotalPendingActions  uint64
	LatestBlockTimestamp int64
	ActionsPerSecond     uint64
}
