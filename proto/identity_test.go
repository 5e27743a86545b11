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

package proto

import (
	"strings"
	"testing"

	"github.com/polis-protocol/polis/crypto/asymmetric"
)

func TestDIDFromPublicKey(t *testing.T) {
	_, pub, err := asymmetric.GenSecp256k1KeyPair()
	if err != nil {
		t.Fatalf("Error occurred: %v", err)
	}

	did := DIDFromPublicKey(pub)
	if !strings.HasPrefix(did.String(), DIDPrefix) {
		t.Fatalf("Unexpected DID prefix: %v", did)
	}
	if did != DIDFromPublicKey(pub) {
		t.Fatal("Unexpected result: DID derivation is not stable")
	}

	_, pub2, err := asymmetric.GenSecp256k1KeyPair()
	if err != nil {
		t.Fatalf("Error occurred: %v", err)
	}
	if did == DIDFromPublicKey(pub2) {
		t.Fatal("Unexpected result: different keys derived the same DID")
	}
}

func TestDIDFromExternalID(t *testing.T) {
	did := DIDFromExternalID("firebase", "uid-123")
	if did != DID("did:polis:firebase:uid-123") {
		t.Fatalf("Unexpected DID: %v", did)
	}
}
