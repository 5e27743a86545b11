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

// Package coordinator owns all shard chains and the identity routing table.
//
// Every public operation takes the coordinator's single mutex for its whole
// duration, reads included, so shard state and routing state always move
// together. Shard chains themselves carry no locks; they must only ever be
// touched through a coordinator.
package coordinator

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/polis-protocol/polis/chainbus"
	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/shardchain"
	"github.com/polis-protocol/polis/types"
	"github.com/polis-protocol/polis/utils/log"
)

// IdentityInfo is a read snapshot of one routing table entry.
type IdentityInfo struct {
	DID          proto.DID
	Vector       types.StanceVector
	Shards       []proto.ShardID
	IsOnline     bool
	LastActivity int64
	TotalActions uint64
}

// CampaignInfo pairs a campaign snapshot with its owning shard.
type CampaignInfo struct {
	ShardID  proto.ShardID
	Campaign *types.Campaign
}

type identityEntry struct {
	did          proto.DID
	vector       types.StanceVector
	shards       []proto.ShardID
	isOnline     bool
	lastActivity int64
	totalActions uint64
}

// Coordinator routes identities and actions to shard chains and aggregates
// cross-shard statistics.
type Coordinator struct {
	cfg Config

	mu         sync.Mutex
	shards     map[proto.ShardID]*shardchain.Chain
	identities map[proto.DID]*identityEntry
}

// NewCoordinator returns a coordinator with no shards and no identities.
func NewCoordinator(cfg Config) *Coordinator {
	cfg.normalize()
	return &Coordinator{
		cfg:        cfg,
		shards:     make(map[proto.ShardID]*shardchain.Chain),
		identities: make(map[proto.DID]*identityEntry),
	}
}

// CreateShard builds a shard chain with the coordinator's campaign defaults
// and registers it under the given label.
func (c *Coordinator) CreateShard(id proto.ShardID, r types.IdeologyRange) error {
	return c.RegisterShard(shardchain.NewChain(&shardchain.Config{
		ShardID:          id,
		Range:            r,
		CampaignGoal:     c.cfg.CampaignGoal,
		CampaignDuration: c.cfg.CampaignDuration,
		ProofPolicy:      c.cfg.ProofPolicy,
	}))
}

// RegisterShard adds a prebuilt shard chain to the coordinator. Duplicate
// labels are rejected rather than silently replaced, since replacing a shard
// would orphan every identity already routed to it.
func (c *Coordinator) RegisterShard(chain *shardchain.Chain) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := chain.ShardID()
	if _, ok := c.shards[id]; ok {
		return errors.Wrapf(ErrShardExists, "register shard %s", id)
	}
	c.shards[id] = chain

	log.WithFields(log.Fields{
		"shard": id,
		"range": chain.Range(),
	}).Info("registered shard")
	return nil
}

// RouteIdentity returns the labels of every shard whose range contains the
// vector, without touching the routing table. The result may be empty.
func (c *Coordinator) RouteIdentity(vector types.StanceVector) []proto.ShardID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.route(vector)
}

func (c *Coordinator) route(vector types.StanceVector) []proto.ShardID {
	regions := make(map[proto.ShardID]types.IdeologyRange, len(c.shards))
	for id, chain := range c.shards {
		regions[id] = chain.Range()
	}
	return Classify(vector, regions)
}

// RegisterIdentity classifies the identity's stance vector, records the
// routing entry, and marks the identity online in every matched shard.
// A vector matching no shard still produces a routing entry; the identity
// simply has nowhere to record actions until shards change.
func (c *Coordinator) RegisterIdentity(
	did proto.DID, vector types.StanceVector,
) []proto.ShardID {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := c.route(vector)
	c.identities[did] = &identityEntry{
		did:          did,
		vector:       vector,
		shards:       matched,
		isOnline:     true,
		lastActivity: time.Now().Unix(),
	}
	for _, id := range matched {
		c.shards[id].UpdateNodeStatus(did, true)
	}

	log.WithFields(log.Fields{
		"did":    did,
		"shards": matched,
	}).Info("registered identity")
	return append([]proto.ShardID(nil), matched...)
}

// SetIdentityActivity flips the identity's online flag in the routing table
// and in every shard it belongs to.
func (c *Coordinator) SetIdentityActivity(did proto.DID, online bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.identities[did]
	if !ok {
		return errors.Wrapf(ErrIdentityNotFound, "set activity of %s", did)
	}
	entry.isOnline = online
	entry.lastActivity = time.Now().Unix()
	for _, id := range entry.shards {
		if chain, ok := c.shards[id]; ok {
			chain.UpdateNodeStatus(did, online)
		}
	}
	return nil
}

// Identity returns a snapshot of one routing table entry.
func (c *Coordinator) Identity(did proto.DID) (IdentityInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.identities[did]
	if !ok {
		return IdentityInfo{}, errors.Wrapf(ErrIdentityNotFound, "lookup %s", did)
	}
	return IdentityInfo{
		DID:          entry.did,
		Vector:       entry.vector,
		Shards:       append([]proto.ShardID(nil), entry.shards...),
		IsOnline:     entry.isOnline,
		LastActivity: entry.lastActivity,
		TotalActions: entry.totalActions,
	}, nil
}

// IdentityShards returns the shard labels an identity is routed to.
func (c *Coordinator) IdentityShards(did proto.DID) ([]proto.ShardID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.identities[did]
	if !ok {
		return nil, errors.Wrapf(ErrIdentityNotFound, "lookup %s", did)
	}
	return append([]proto.ShardID(nil), entry.shards...), nil
}

// SubmitAction enqueues an externally built action on one named shard and
// seals a block if the pending pool reaches the batch threshold.
func (c *Coordinator) SubmitAction(
	shardID proto.ShardID, action *types.ImpactAction,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	chain, ok := c.shards[shardID]
	if !ok {
		return errors.Wrapf(ErrShardNotFound, "submit to %s", shardID)
	}
	if err := chain.AddPendingAction(action); err != nil {
		return errors.Wrapf(err, "submit to %s", shardID)
	}
	c.publishAction(shardID, action)
	c.sealIfDue(chain, action.DID)
	return nil
}

// RecordAction builds a verified action for a registered identity and
// applies it to every shard the identity is routed to: the target campaign
// is upserted, the action enters the pending pool, and a block is sealed
// once the pool reaches the batch threshold. An identity routed to no shard
// records nothing and returns nil.
func (c *Coordinator) RecordAction(
	did proto.DID, actionType types.ActionType, target string, value uint64,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.identities[did]
	if !ok {
		return errors.Wrapf(ErrIdentityNotFound, "record action of %s", did)
	}

	action := types.NewImpactAction(
		did, actionType, target, value, types.VerifiedProofPrefix+string(did))

	for _, id := range entry.shards {
		chain, ok := c.shards[id]
		if !ok {
			continue
		}
		chain.UpsertCampaign(target, action)
		if err := chain.AddPendingAction(action); err != nil {
			return errors.Wrapf(err, "record on %s", id)
		}
		c.publishAction(id, action)
		c.sealIfDue(chain, did)
	}

	entry.totalActions++
	entry.lastActivity = action.Timestamp
	return nil
}

// sealIfDue produces and appends a block when the pending pool has reached
// the batch threshold. Production or verification failures leave the pool's
// actions queued for the next attempt and are logged, not surfaced: the
// action itself was already accepted.
func (c *Coordinator) sealIfDue(chain *shardchain.Chain, producer proto.DID) {
	if chain.PendingCount() < uint64(c.cfg.BatchThreshold) {
		return
	}
	block, err := chain.ProduceBlock(producer)
	if err != nil {
		log.WithFields(log.Fields{
			"shard": chain.ShardID(),
		}).WithError(err).Error("failed to produce block")
		return
	}
	if err = chain.PushBlock(block); err != nil {
		log.WithFields(log.Fields{
			"shard": chain.ShardID(),
			"block": block.BlockHash.Short(4),
		}).WithError(err).Error("failed to append block")
		return
	}
	if c.cfg.Bus != nil {
		c.cfg.Bus.PublishBlock(chainbus.BlockEvent{
			ShardID: chain.ShardID(),
			Block:   block,
		})
	}
	log.WithFields(log.Fields{
		"shard":  chain.ShardID(),
		"height": block.Height,
		"block":  block.BlockHash.Short(4),
	}).Debug("sealed block")
}

func (c *Coordinator) publishAction(id proto.ShardID, action *types.ImpactAction) {
	if c.cfg.Bus == nil {
		return
	}
	c.cfg.Bus.PublishAction(chainbus.ActionEvent{
		ShardID: id,
		Action:  action,
	})
}

// ShardStats returns the snapshot of one shard.
func (c *Coordinator) ShardStats(id proto.ShardID) (types.ShardStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chain, ok := c.shards[id]
	if !ok {
		return types.ShardStats{}, errors.Wrapf(ErrShardNotFound, "stats of %s", id)
	}
	return chain.Stats(), nil
}

// GlobalStats sums every shard's snapshot. An identity online in several
// shards counts once per shard, matching the per-shard membership model.
func (c *Coordinator) GlobalStats() (stats types.GlobalStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, chain := range c.shards {
		s := chain.Stats()
		stats.TotalShards++
		stats.TotalOnlineNodes += s.OnlineNodes
		stats.TotalUnionStrength += s.UnionStrength
		stats.TotalCapitalDiverted += s.CapitalDiverted
		stats.TotalActiveCampaigns += s.ActiveCampaigns
	}
	return
}

// UserStats scans the full block history of the given shards and aggregates
// the identity's recorded actions. CampaignsJoined increments once per
// matching action. StreakDays is the whole-day span between the identity's
// earliest and latest action timestamps.
func (c *Coordinator) UserStats(
	did proto.DID, shardIDs []proto.ShardID,
) (stats types.UserStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var earliest, latest int64
	for _, id := range shardIDs {
		chain, ok := c.shards[id]
		if !ok {
			continue
		}
		for _, block := range chain.Blocks() {
			for _, action := range block.Actions {
				if action.DID != did {
					continue
				}
				stats.TotalActions++
				stats.TotalDiverted += action.Value
				stats.CampaignsJoined++
				if earliest == 0 || action.Timestamp < earliest {
					earliest = action.Timestamp
				}
				if action.Timestamp > latest {
					latest = action.Timestamp
				}
			}
		}
	}
	if latest > earliest {
		stats.StreakDays = uint64((latest - earliest) / 86400)
	}
	return
}

// ShardInfos returns the per-shard chain digest lines, sorted by label.
func (c *Coordinator) ShardInfos() []types.ShardInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	infos := make([]types.ShardInfo, 0, len(c.shards))
	for id, chain := range c.shards {
		infos = append(infos, types.ShardInfo{
			ShardID:        id,
			Height:         chain.Height(),
			PendingActions: chain.PendingCount(),
			OnlineNodes:    chain.Stats().OnlineNodes,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ShardID < infos[j].ShardID })
	return infos
}

// ChainStats builds the cross-shard digest. Throughput divides the total
// recorded action count by the seconds since the newest block, floored at
// one, and reports zero when that gap exceeds the throughput window.
func (c *Coordinator) ChainStats() (stats types.ChainStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var totalActions uint64
	for _, chain := range c.shards {
		stats.TotalShards++
		stats.TotalBlocks += chain.Height()
		stats.TotalPendingActions += chain.PendingCount()
		for _, block := range chain.Blocks() {
			totalActions += uint64(len(block.Actions))
			if block.Timestamp > stats.LatestBlockTimestamp {
				stats.LatestBlockTimestamp = block.Timestamp
			}
		}
	}
	if stats.LatestBlockTimestamp > 0 {
		elapsed := time.Now().Unix() - stats.LatestBlockTimestamp
		if elapsed < 1 {
			elapsed = 1
		}
		if elapsed <= ThroughputWindow {
			stats.ActionsPerSecond = totalActions / uint64(elapsed)
		}
	}
	return
}

// CreateCampaign opens a campaign on one shard with an explicit goal and
// duration, ahead of any recorded action.
func (c *Coordinator) CreateCampaign(
	shardID proto.ShardID, target string, goal, duration uint64,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	chain, ok := c.shards[shardID]
	if !ok {
		return errors.Wrapf(ErrShardNotFound, "create campaign on %s", shardID)
	}
	return chain.CreateCampaign(target, goal, duration)
}

// Campaigns returns every campaign of one shard, sorted by target label.
func (c *Coordinator) Campaigns(id proto.ShardID) ([]*types.Campaign, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chain, ok := c.shards[id]
	if !ok {
		return nil, errors.Wrapf(ErrShardNotFound, "campaigns of %s", id)
	}
	return chain.Campaigns(), nil
}

// AllCampaigns returns every campaign of every shard, sorted by shard label
// then target label.
func (c *Coordinator) AllCampaigns() []CampaignInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []CampaignInfo
	ids := make([]proto.ShardID, 0, len(c.shards))
	for id := range c.shards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		for _, campaign := range c.shards[id].Campaigns() {
			out = append(out, CampaignInfo{ShardID: id, Campaign: campaign})
		}
	}
	return out
}

// Campaign looks up one campaign by shard and target label.
func (c *Coordinator) Campaign(
	shardID proto.ShardID, target string,
) (*types.Campaign, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chain, ok := c.shards[shardID]
	if !ok {
		return nil, errors.Wrapf(ErrShardNotFound, "campaign of %s", shardID)
	}
	campaign, ok := chain.Campaign(target)
	if !ok {
		return nil, errors.Wrapf(ErrCampaignNotFound, "%s in shard %s", target, shardID)
	}
	return campaign, nil
}

// Blocks returns the block list of one shard.
func (c *Coordinator) Blocks(id proto.ShardID) ([]*types.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chain, ok := c.shards[id]
	if !ok {
		return nil, errors.Wrapf(ErrShardNotFound, "blocks of %s", id)
	}
	return chain.Blocks(), nil
}
