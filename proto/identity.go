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

// Package proto defines the identity and shard handle types shared by all
// ledger components.
package proto

import (
	"fmt"

	"github.com/polis-protocol/polis/crypto/asymmetric"
	"github.com/polis-protocol/polis/crypto/hash"
)

// DIDPrefix is the scheme prefix of every internal identity handle.
const DIDPrefix = "did:polis:"

// DID is an opaque decentralized identity handle. It is the only identity
// the ledger core knows about; mapping an external account to a DID is the
// identity provider's concern.
type DID string

// ShardID is the label of one stance shard.
type ShardID string

// DIDFromPublicKey derives a stable DID from a public key hash.
func DIDFromPublicKey(pub *asymmetric.PublicKey) DID {
	h := hash.THashH(pub.Serialize())
	return DID(DIDPrefix + h.Short(20))
}

// DIDFromExternalID derives the DID assigned to an externally authenticated
// account, e.g. did:polis:firebase:<uid>.
func DIDFromExternalID(provider, uid string) DID {
	return DID(fmt.Sprintf("%s%s:%s", DIDPrefix, provider, uid))
}

// String implements fmt.Stringer.
func (id DID) String() string {
	return string(id)
}

// String implements fmt.Stringer.
func (s ShardID) String() string {
	return string(s)
}
