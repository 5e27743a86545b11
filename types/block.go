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

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/polis-protocol/polis/crypto/hash"
	"github.com/polis-protocol/polis/merkle"
	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/utils"
)

// Block is an immutable hash-linked batch of impact actions. Actions are
// bound into the block hash only through the merkle root.
type Block struct {
	Height       uint64
	Timestamp    int64
	Actions      []*ImpactAction
	PreviousHash hash.Hash // all-zero for the block at height 0
	Strength     uint64
	MerkleRoot   hash.Hash
	BlockHash    hash.Hash
	Producer     proto.DID
}

// ActionHashes returns the content hashes of all actions in pool order.
func (b *Block) ActionHashes() []*hash.Hash {
	hs := make([]*hash.Hash, len(b.Actions))
	for i, action := range b.Actions {
		h := action.ContentHash()
		hs[i] = &h
	}
	return hs
}

// CalculateStrength returns the union strength of the block. Strength is the
// plain action count; weighting action types differently is a possible
// extension, not current behavior.
func (b *Block) CalculateStrength() uint64 {
	return uint64(len(b.Actions))
}

// CalculateHash recomputes the block hash from the header fields.
func (b *Block) CalculateHash() hash.Hash {
	buffer := bytes.NewBuffer(nil)
	// fixed-width and hash writes only, cannot fail
	_ = utils.WriteElements(buffer, binary.BigEndian,
		b.Height,
		b.Timestamp,
		b.PreviousHash,
		b.MerkleRoot,
		b.Strength,
	)
	return hash.THashH(buffer.Bytes())
}

// NewBlock assembles, roots and hashes a block holding the given actions on
// top of the previous block. A nil previous block starts the chain: height 0
// with the all-zero parent hash.
func NewBlock(previous *Block, actions []*ImpactAction, producer proto.DID) *Block {
	b := &Block{
		Height:    0,
		Timestamp: time.Now().Unix(),
		Actions:   actions,
		Producer:  producer,
	}
	if previous != nil {
		b.Height = previous.Height + 1
		b.PreviousHash = previous.BlockHash
	}
	b.Strength = b.CalculateStrength()
	b.MerkleRoot = *merkle.NewMerkle(b.ActionHashes()).GetRoot()
	b.BlockHash = b.CalculateHash()
	return b
}

// Verify checks the integrity of the block: its own hash, the merkle root,
// the linkage to the previous block if one is given, and the proof of every
// contained action. Any failure is returned as a typed error; there is no
// partial acceptance.
func (b *Block) Verify(previous *Block, policy ProofPolicy) error {
	if recomputed := b.CalculateHash(); !recomputed.IsEqual(&b.BlockHash) {
		return ErrHashVerification
	}

	if root := merkle.NewMerkle(b.ActionHashes()).GetRoot(); !root.IsEqual(&b.MerkleRoot) {
		return ErrMerkleRootVerification
	}

	if previous != nil {
		if !b.PreviousHash.IsEqual(&previous.BlockHash) {
			return ErrParentNotMatch
		}
		if b.Height != previous.Height+1 {
			return ErrBlockHeightMismatch
		}
	}

	for _, action := range b.Actions {
		if !policy(action) {
			return ErrInvalidProof
		}
	}

	return nil
}
