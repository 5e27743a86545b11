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
	"sort"
	"time"

	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/types"
	"github.com/polis-protocol/polis/utils/log"
)

// Chain is one stance shard's ledger state.
type Chain struct {
	cfg *Config

	pending   []*types.ImpactAction
	blocks    []*types.Block
	campaigns map[string]*types.Campaign
	nodes     map[proto.DID]*types.NodeStatus

	onlineNodes     uint64
	unionStrength   uint64
	capitalDiverted uint64
}

// NewChain creates an empty shard chain from the given config.
func NewChain(cfg *Config) *Chain {
	cfg.normalize()
	return &Chain{
		cfg:       cfg,
		campaigns: make(map[string]*types.Campaign),
		nodes:     make(map[proto.DID]*types.NodeStatus),
	}
}

// ShardID returns the shard label.
func (c *Chain) ShardID() proto.ShardID {
	return c.cfg.ShardID
}

// Range returns the shard's ideology range.
func (c *Chain) Range() types.IdeologyRange {
	return c.cfg.Range
}

// Height returns the number of blocks on the chain, which is also the height
// the next block will be produced at.
func (c *Chain) Height() uint64 {
	return uint64(len(c.blocks))
}

// Head returns the latest block, or nil on an empty chain.
func (c *Chain) Head() *types.Block {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.blocks[len(c.blocks)-1]
}

// Blocks returns the chain as a slice copy. The blocks themselves are
// immutable once appended.
func (c *Chain) Blocks() []*types.Block {
	return append([]*types.Block(nil), c.blocks...)
}

// PendingCount returns the size of the pending pool.
func (c *Chain) PendingCount() uint64 {
	return uint64(len(c.pending))
}

// AddPendingAction appends an action to the pending pool after checking its
// proof. Duplicate action ids are accepted here; deduplication, if wanted,
// is caller policy.
func (c *Chain) AddPendingAction(action *types.ImpactAction) error {
	if !c.cfg.ProofPolicy(action) {
		return types.ErrInvalidProof
	}
	c.pending = append(c.pending, action)
	return nil
}

// ProduceBlock seals the full pending pool into a new block on top of the
// current head and clears the pool. The block is not appended; push it with
// PushBlock once the transport (or the caller directly) hands it back.
func (c *Chain) ProduceBlock(producer proto.DID) (*types.Block, error) {
	if len(c.pending) == 0 {
		return nil, ErrEmptyPool
	}

	block := types.NewBlock(c.Head(), c.pending, producer)
	c.pending = nil

	log.WithFields(log.Fields{
		"shard":    c.cfg.ShardID,
		"height":   block.Height,
		"actions":  len(block.Actions),
		"producer": producer,
	}).Debug("produced block")
	return block, nil
}

// PushBlock verifies the block against the current head and appends it. On
// success the running totals are updated; on failure the chain state is left
// untouched.
func (c *Chain) PushBlock(block *types.Block) error {
	if err := block.Verify(c.Head(), c.cfg.ProofPolicy); err != nil {
		log.WithFields(log.Fields{
			"shard":  c.cfg.ShardID,
			"height": block.Height,
		}).WithError(err).Warn("rejected block")
		return err
	}

	c.blocks = append(c.blocks, block)
	c.unionStrength += block.Strength
	for _, action := range block.Actions {
		c.capitalDiverted += action.Value
	}
	return nil
}

// CreateCampaign explicitly registers a campaign for a target entity.
func (c *Chain) CreateCampaign(id string, goal, duration uint64) error {
	if _, ok := c.campaigns[id]; ok {
		return ErrCampaignExists
	}

	now := time.Now().Unix()
	c.campaigns[id] = &types.Campaign{
		ID:        id,
		Goal:      goal,
		EndHeight: c.Height() + duration,
		Status:    types.CampaignActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

// UpsertCampaign credits an action against the campaign for its target,
// creating the campaign lazily with the configured defaults. Reaching the
// goal moves an active campaign to achieved; the transition is one-way.
func (c *Chain) UpsertCampaign(target string, action *types.ImpactAction) *types.Campaign {
	campaign, ok := c.campaigns[target]
	if !ok {
		// lazy creation is deliberate: campaigns need no provisioning step
		now := time.Now().Unix()
		campaign = &types.Campaign{
			ID:        target,
			Goal:      c.cfg.CampaignGoal,
			EndHeight: c.Height() + c.cfg.CampaignDuration,
			Status:    types.CampaignActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		c.campaigns[target] = campaign
	}

	campaign.VerifiedParticipants++
	campaign.DivertedValue += action.Value
	campaign.UpdatedAt = time.Now().Unix()

	if campaign.GoalReached() && campaign.Status == types.CampaignActive {
		campaign.Status = types.CampaignAchieved
		log.WithFields(log.Fields{
			"shard":        c.cfg.ShardID,
			"campaign":     campaign.ID,
			"participants": campaign.VerifiedParticipants,
		}).Info("campaign achieved its goal")
	}

	return campaign.Clone()
}

// Campaign returns a snapshot of the campaign for a target entity.
func (c *Chain) Campaign(id string) (*types.Campaign, bool) {
	campaign, ok := c.campaigns[id]
	if !ok {
		return nil, false
	}
	return campaign.Clone(), true
}

// Campaigns returns snapshots of all campaigns, ordered by id.
func (c *Chain) Campaigns() []*types.Campaign {
	ids := make([]string, 0, len(c.campaigns))
	for id := range c.campaigns {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	campaigns := make([]*types.Campaign, len(ids))
	for i, id := range ids {
		campaigns[i] = c.campaigns[id].Clone()
	}
	return campaigns
}

// UpdateNodeStatus upserts the membership record for an identity and
// recounts the shard's online membership. The recount scans the full
// registry; acceptable at shard scale, a known limit.
func (c *Chain) UpdateNodeStatus(did proto.DID, online bool) {
	now := time.Now().Unix()
	if node, ok := c.nodes[did]; ok {
		node.IsOnline = online
		node.LastSeenHeight = c.Height()
		node.LastUpdated = now
	} else {
		c.nodes[did] = &types.NodeStatus{
			DID:            did,
			IsOnline:       online,
			LastSeenHeight: c.Height(),
			ActiveShards:   []proto.ShardID{c.cfg.ShardID},
			LastUpdated:    now,
		}
	}

	var count uint64
	for _, node := range c.nodes {
		if node.IsOnline {
			count++
		}
	}
	c.onlineNodes = count
}

// Node returns a snapshot of an identity's membership record.
func (c *Chain) Node(did proto.DID) (*types.NodeStatus, bool) {
	node, ok := c.nodes[did]
	if !ok {
		return nil, false
	}
	return node.Clone(), true
}

// Stats returns a pure read snapshot of the shard. The campaign count covers
// every registered campaign regardless of status.
func (c *Chain) Stats() types.ShardStats {
	return types.ShardStats{
		ShardID:         c.cfg.ShardID,
		Height:          c.Height(),
		OnlineNodes:     c.onlineNodes,
		UnionStrength:   c.unionStrength,
		CapitalDiverted: c.capitalDiverted,
		ActiveCampaigns: uint64(len(c.campaigns)),
		PendingActions:  uint64(len(c.pending)),
	}
}
