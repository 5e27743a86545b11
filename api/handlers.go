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

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/polis-protocol/polis/coordinator"
	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/types"
)

type registerUserReq struct {
	DID    proto.DID          `json:"did" binding:"required"`
	Vector types.StanceVector `json:"vector"`
}

type heartbeatReq struct {
	Online *bool `json:"online" binding:"required"`
}

type recordActionReq struct {
	DID    proto.DID `json:"did" binding:"required"`
	Type   string    `json:"type" binding:"required"`
	Target string    `json:"target" binding:"required"`
	Value  uint64    `json:"value"`
}

type submitActionReq struct {
	ShardID proto.ShardID `json:"shard_id" binding:"required"`
	DID     proto.DID     `json:"did" binding:"required"`
	Type    string        `json:"type" binding:"required"`
	Target  string        `json:"target" binding:"required"`
	Value   uint64        `json:"value"`
	Proof   string        `json:"proof" binding:"required"`
}

type campaignResp struct {
	ShardID              proto.ShardID `json:"shard_id,omitempty"`
	Target               string        `json:"target"`
	VerifiedParticipants uint64        `json:"verified_participants"`
	Goal                 uint64        `json:"goal"`
	Progress             float64       `json:"progress"`
	DivertedValue        uint64        `json:"diverted_value"`
	DivertedUSD          float64       `json:"diverted_usd"`
	EndHeight            uint64        `json:"end_height"`
	Status               string        `json:"status"`
	CreatedAt            int64         `json:"created_at"`
	UpdatedAt            int64         `json:"updated_at"`
}

func campaignToResp(shardID proto.ShardID, campaign *types.Campaign) campaignResp {
	return campaignResp{
		ShardID:              shardID,
		Target:               campaign.ID,
		VerifiedParticipants: campaign.VerifiedParticipants,
		Goal:                 campaign.Goal,
		Progress:             campaign.Progress(),
		DivertedValue:        campaign.DivertedValue,
		DivertedUSD:          campaign.DivertedUSD(),
		EndHeight:            campaign.EndHeight,
		Status:               campaign.Status.String(),
		CreatedAt:            campaign.CreatedAt,
		UpdatedAt:            campaign.UpdatedAt,
	}
}

func statusOf(err error) int {
	switch errors.Cause(err) {
	case coordinator.ErrShardNotFound,
		coordinator.ErrIdentityNotFound,
		coordinator.ErrCampaignNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func (s *Service) health(c *gin.Context) {
	responseWithData(c, http.StatusOK, gin.H{"status": "ok"})
}

func (s *Service) globalStats(c *gin.Context) {
	stats := s.coord.GlobalStats()
	responseWithData(c, http.StatusOK, gin.H{
		"total_shards":           stats.TotalShards,
		"total_online_nodes":     stats.TotalOnlineNodes,
		"total_union_strength":   stats.TotalUnionStrength,
		"total_capital_diverted": stats.TotalCapitalDiverted,
		"total_active_campaigns": stats.TotalActiveCampaigns,
	})
}

func (s *Service) chainStats(c *gin.Context) {
	stats := s.coord.ChainStats()
	responseWithData(c, http.StatusOK, gin.H{
		"total_blocks":           stats.TotalBlocks,
		"total_shards":           stats.TotalShards,
		"total_pending_actions":  stats.TotalPendingActions,
		"latest_block_timestamp": stats.LatestBlockTimestamp,
		"actions_per_second":     stats.ActionsPerSecond,
	})
}

func (s *Service) listShards(c *gin.Context) {
	infos := s.coord.ShardInfos()
	out := make([]gin.H, 0, len(infos))
	for _, info := range infos {
		out = append(out, gin.H{
			"shard_id":        info.ShardID,
			"height":          info.Height,
			"pending_actions": info.PendingActions,
			"online_nodes":    info.OnlineNodes,
		})
	}
	responseWithData(c, http.StatusOK, out)
}

func (s *Service) shardBlocks(c *gin.Context) {
	blocks, err := s.coord.Blocks(proto.ShardID(c.Param("shard")))
	if err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	out := make([]gin.H, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, gin.H{
			"height":        block.Height,
			"timestamp":     block.Timestamp,
			"block_hash":    block.BlockHash.String(),
			"previous_hash": block.PreviousHash.String(),
			"merkle_root":   block.MerkleRoot.String(),
			"strength":      block.Strength,
			"producer":      block.Producer,
			"action_count":  len(block.Actions),
		})
	}
	responseWithData(c, http.StatusOK, out)
}

func (s *Service) shardCampaigns(c *gin.Context) {
	shardID := proto.ShardID(c.Param("shard"))
	campaigns, err := s.coord.Campaigns(shardID)
	if err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	out := make([]campaignResp, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, campaignToResp(shardID, campaign))
	}
	responseWithData(c, http.StatusOK, out)
}

func (s *Service) allCampaigns(c *gin.Context) {
	all := s.coord.AllCampaigns()
	out := make([]campaignResp, 0, len(all))
	for _, info := range all {
		out = append(out, campaignToResp(info.ShardID, info.Campaign))
	}
	responseWithData(c, http.StatusOK, out)
}

func (s *Service) campaign(c *gin.Context) {
	shardID := proto.ShardID(c.Param("shard"))
	campaign, err := s.coord.Campaign(shardID, c.Param("target"))
	if err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	responseWithData(c, http.StatusOK, campaignToResp(shardID, campaign))
}

func (s *Service) registerUser(c *gin.Context) {
	var req registerUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	shards := s.coord.RegisterIdentity(req.DID, req.Vector)
	responseWithData(c, http.StatusOK, gin.H{
		"did":    req.DID,
		"shards": shards,
	})
}

func (s *Service) userInfo(c *gin.Context) {
	info, err := s.coord.Identity(proto.DID(c.Param("did")))
	if err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	responseWithData(c, http.StatusOK, gin.H{
		"did":           info.DID,
		"vector":        info.Vector,
		"shards":        info.Shards,
		"is_online":     info.IsOnline,
		"last_activity": info.LastActivity,
		"total_actions": info.TotalActions,
	})
}

func (s *Service) userImpact(c *gin.Context) {
	did := proto.DID(c.Param("did"))
	shards, err := s.coord.IdentityShards(did)
	if err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	stats := s.coord.UserStats(did, shards)
	responseWithData(c, http.StatusOK, gin.H{
		"campaigns_joined": stats.CampaignsJoined,
		"streak_days":      stats.StreakDays,
		"total_diverted":   stats.TotalDiverted,
		"total_actions":    stats.TotalActions,
	})
}

func (s *Service) heartbeat(c *gin.Context) {
	var req heartbeatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	did := proto.DID(c.Param("did"))
	if err := s.coord.SetIdentityActivity(did, *req.Online); err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	responseWithData(c, http.StatusOK, gin.H{"did": did, "online": *req.Online})
}

func (s *Service) recordAction(c *gin.Context) {
	var req recordActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	actionType, err := types.ParseActionType(req.Type)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	if err = s.coord.RecordAction(req.DID, actionType, req.Target, req.Value); err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	responseWithData(c, http.StatusOK, gin.H{
		"did":    req.DID,
		"type":   actionType.String(),
		"target": req.Target,
		"value":  req.Value,
	})
}

func (s *Service) submitAction(c *gin.Context) {
	var req submitActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	actionType, err := types.ParseActionType(req.Type)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	action := types.NewImpactAction(req.DID, actionType, req.Target, req.Value, req.Proof)
	if err = s.coord.SubmitAction(req.ShardID, action); err != nil {
		abortWithError(c, statusOf(err), err)
		return
	}
	responseWithData(c, http.StatusOK, gin.H{
		"action_id": action.ActionID,
		"shard_id":  req.ShardID,
	})
}
