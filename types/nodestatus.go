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

// NodeStatus is one shard's membership record for an identity. An identity
// may hold a record in several shards at once.
type NodeStatus struct {
	DID            proto.DID
	IsOnline       bool
	LastSeenHeight uint64
	ActiveShards   []proto.ShardID
	// Reputation is accumulated by external policy; the ledger core only
	// stores it.
	Reputation  uint64
	LastUpdated int64
}

// Clone returns an independent snapshot of the membership record.
func (n *NodeStatus) Clone() *NodeStatus {
	clone := *n
	clone.ActiveShards = append([]proto.ShardID(nil), n.ActiveShards...)
	return &clone
}
