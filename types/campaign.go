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

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus int32

// Campaign lifecycle states. Active transitions to Achieved exactly once,
// when the verified participant count reaches the goal. Expired and Paused
// are modeled for external policy to set; the ledger core defines no
// automatic trigger for them.
const (
	CampaignActive CampaignStatus = iota
	CampaignAchieved
	CampaignExpired
	CampaignPaused
)

// String implements fmt.Stringer.
func (s CampaignStatus) String() string {
	switch s {
	case CampaignActive:
		return "ACTIVE"
	case CampaignAchieved:
		return "ACHIEVED"
	case CampaignExpired:
		return "EXPIRED"
	case CampaignPaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Campaign is a per-shard progress counter keyed by a target entity. One
// campaign belongs to exactly one shard: the same target in two shards
// produces two independent campaigns.
type Campaign struct {
	ID                   string // the target entity label
	VerifiedParticipants uint64
	Goal                 uint64
	DivertedValue        uint64
	EndHeight            uint64
	Status               CampaignStatus
	CreatedAt            int64
	UpdatedAt            int64
}

// GoalReached reports whether the participant goal has been met.
func (c *Campaign) GoalReached() bool {
	return c.VerifiedParticipants >= c.Goal
}

// Progress returns the completion percentage, capped at 100.
func (c *Campaign) Progress() float64 {
	if c.Goal == 0 {
		return 0
	}
	p := float64(c.VerifiedParticipants) / float64(c.Goal) * 100
	if p > 100 {
		return 100
	}
	return p
}

// DivertedUSD converts the diverted value from cents for display.
func (c *Campaign) DivertedUSD() float64 {
	return float64(c.DivertedValue) / 100
}

// Clone returns an independent snapshot of the campaign.
func (c *Campaign) Clone() *Campaign {
	clone := *c
	return &clone
}
