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

package hash

import (
	"bytes"
	"encoding/json"
	"testing"
)

// mainNetGenesisHash is a known byte-reversed hash string pair used to verify
// string encoding and decoding round trips.
var knownHash = Hash([HashSize]byte{
	0x6f, 0xe2, 0x8c, 0x0a, 0xb6, 0xf1, 0xb3, 0x72,
	0xc1, 0xa6, 0xa2, 0x46, 0xae, 0x63, 0xf7, 0x4f,
	0x93, 0x1e, 0x83, 0x65, 0xe1, 0x5a, 0x08, 0x9c,
	0x68, 0xd6, 0x19, 0x00, 0x00, 0x00, 0x00, 0x00,
})

func TestHashSetBytes(t *testing.T) {
	var h Hash
	if err := h.SetBytes(knownHash.CloneBytes()); err != nil {
		t.Fatalf("Error occurred: %v", err)
	}
	if !h.IsEqual(&knownHash) {
		t.Fatalf("Values don't match: v1 = %v, v2 = %v", h, knownHash)
	}
	if err := h.SetBytes([]byte{0x01}); err == nil {
		t.Fatal("Unexpected result: returned nil while expecting an error")
	}
}

func TestHashStringRoundTrip(t *testing.T) {
	s := knownHash.String()
	decoded, err := NewHashFromStr(s)
	if err != nil {
		t.Fatalf("Error occurred: %v", err)
	}
	if !decoded.IsEqual(&knownHash) {
		t.Fatalf("Values don't match: v1 = %v, v2 = %v", decoded, knownHash)
	}
	if _, err = NewHashFromStr(s + "00"); err != ErrHashStrSize {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestHashJSONRoundTrip(t *testing.T) {
	enc, err := json.Marshal(knownHash)
	if err != nil {
		t.Fatalf("Error occurred: %v", err)
	}
	var decoded Hash
	if err = json.Unmarshal(enc, &decoded); err != nil {
		t.Fatalf("Error occurred: %v", err)
	}
	if !decoded.IsEqual(&knownHash) {
		t.Fatalf("Values don't match: v1 = %v, v2 = %v", decoded, knownHash)
	}
}

func TestHashIsZero(t *testing.T) {
	var zero Hash
	if !zero.IsZero() {
		t.Fatal("Unexpected result: zero hash reported as non-zero")
	}
	if knownHash.IsZero() {
		t.Fatal("Unexpected result: non-zero hash reported as zero")
	}
}

func TestHashFuncs(t *testing.T) {
	data := []byte("polis hash function test vector")

	if !bytes.Equal(HashB(data), HashH(data).AsBytes()) {
		t.Fatal("Unexpected result: HashB and HashH disagree")
	}
	if !bytes.Equal(DoubleHashB(data), DoubleHashH(data).AsBytes()) {
		t.Fatal("Unexpected result: DoubleHashB and DoubleHashH disagree")
	}
	if !bytes.Equal(THashB(data), THashH(data).AsBytes()) {
		t.Fatal("Unexpected result: THashB and THashH disagree")
	}
	if THashH(data) == HashH(data) {
		t.Fatal("Unexpected result: THashH should differ from plain sha256")
	}
	// determinism
	if THashH(data) != THashH(data) {
		t.Fatal("Unexpected result: THashH is not deterministic")
	}
}
