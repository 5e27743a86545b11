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

import "errors"

var (
	// ErrUnknownActionType indicates an action type name outside the closed enum.
	ErrUnknownActionType = errors.New("unknown action type")

	// ErrInvalidProof indicates that an action's proof token failed the proof policy.
	ErrInvalidProof = errors.New("invalid action proof")

	// ErrHashVerification indicates that a block's stored hash does not match its recomputed hash.
	ErrHashVerification = errors.New("block hash verification failed")

	// ErrMerkleRootVerification indicates that a block's merkle root does not match its actions.
	ErrMerkleRootVerification = errors.New("block merkle root does not match the action hashes")

	// ErrParentNotMatch indicates that a block's parent hash does not extend the chain head.
	ErrParentNotMatch = errors.New("block parent hash cannot match chain head")

	// ErrBlockHeightMismatch indicates a block height that is not parent height plus one.
	ErrBlockHeightMismatch = errors.New("block height is not monotonically increasing")
)
