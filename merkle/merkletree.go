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

// Package merkle implements the merkle tree over action content hashes
// (https://en.wikipedia.org/wiki/Merkle_tree).
//
// Leaves are folded level by level in submission order. When a level holds
// an odd number of nodes, the trailing node is carried to the next level
// unchanged; it is neither duplicated nor hashed with itself. Implementations
// that duplicate the last node produce different roots and are not chain
// compatible.
package merkle

import (
	"github.com/polis-protocol/polis/crypto/hash"
)

// Merkle is a merkle tree built from a sequence of leaf hashes.
type Merkle struct {
	leaves int
	root   hash.Hash
}

// MergeTwoHash computes the hash of the concatenation of two hashes.
func MergeTwoHash(l, r *hash.Hash) *hash.Hash {
	result := hash.THashH(append(append([]byte{}, (*l)[:]...), (*r)[:]...))
	return &result
}

// NewMerkle builds a merkle tree from the given leaf hashes. An empty or nil
// leaf set yields the all-zero sentinel root.
func NewMerkle(items []*hash.Hash) *Merkle {
	merkle := &Merkle{leaves: len(items)}
	if len(items) == 0 {
		return merkle
	}

	level := make([]*hash.Hash, len(items))
	copy(level, items)

	for len(level) > 1 {
		next := make([]*hash.Hash, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, MergeTwoHash(level[i], level[i+1]))
		}
		if len(level)%2 != 0 {
			// odd trailing node moves up untouched
			next = append(next, level[len(level)-1])
		}
		level = next
	}

	merkle.root = *level[0]
	return merkle
}

// GetRoot returns the root of the merkle tree.
func (merkle *Merkle) GetRoot() *hash.Hash {
	return &merkle.root
}

// LeafCount returns the number of leaves the tree was built from.
func (merkle *Merkle) LeafCount() int {
	return merkle.leaves
}
