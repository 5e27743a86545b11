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

import "errors"

var (
	// ErrShardNotFound indicates an unknown shard label.
	ErrShardNotFound = errors.New("shard not found")

	// ErrShardExists indicates a shard registration with a duplicate label.
	ErrShardExists = errors.New("shard already registered")

	// ErrIdentityNotFound indicates an identity with no routing entry.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrCampaignNotFound indicates an unknown campaign target on a shard.
	ErrCampaignNotFound = errors.New("campaign not found")
)
