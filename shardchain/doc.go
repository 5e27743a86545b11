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

// Package shardchain implements the per-shard ledger: a pending action pool,
// an append-only hash-linked block sequence, a campaign registry and a
// membership registry, all scoped to one region of the stance space.
//
// A Chain carries no lock of its own. Every chain is exclusively owned by
// one coordinator, which serializes all access behind a single coarse lock;
// see the coordinator package.
package shardchain
