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

// Package asymmetric wraps btcsuite's secp256k1 implementation, exporting
// only the key pair and signature operations the ledger boundary needs. The
// ledger core itself validates proof tokens through a pluggable predicate;
// this package is the verify(data, signature, publicKey) collaborator a
// production deployment substitutes for that predicate.
package asymmetric

import (
	"crypto/ecdsa"
	"math/big"

	ec "github.com/btcsuite/btcd/btcec"
)

// PrivateKey is a type representing a secp256k1 private key.
type PrivateKey ec.PrivateKey

// PublicKey is a type representing a secp256k1 public key.
type PublicKey ec.PublicKey

// Signature is a type representing an ecdsa signature.
type Signature struct {
	R *big.Int
	S *big.Int
}

// GenSecp256k1KeyPair creates a new private/public key pair.
func GenSecp256k1KeyPair() (privateKey *PrivateKey, publicKey *PublicKey, err error) {
	priv, err := ec.NewPrivateKey(ec.S256())
	if err != nil {
		return nil, nil, err
	}
	return (*PrivateKey)(priv), (*PublicKey)(priv.PubKey()), nil
}

// PubKey returns the public key corresponding to the private key.
func (p *PrivateKey) PubKey() *PublicKey {
	return (*PublicKey)((*ec.PrivateKey)(p).PubKey())
}

// Sign generates an ECDSA signature for the provided hash (which should be
// the result of hashing a larger message) using the private key. Produced
// signature is deterministic (same message and same key yield the same
// signature) and canonical in accordance with RFC6979 and BIP0062.
func (p *PrivateKey) Sign(hash []byte) (*Signature, error) {
	s, err := (*ec.PrivateKey)(p).Sign(hash)
	if err != nil {
		return nil, err
	}
	return &Signature{R: s.R, S: s.S}, nil
}

// Serialize converts the signature to DER bytes.
func (s *Signature) Serialize() []byte {
	return (&ec.Signature{R: s.R, S: s.S}).Serialize()
}

// ParseDERSignature recovers a signature from DER bytes.
func ParseDERSignature(sigStr []byte) (*Signature, error) {
	sig, err := ec.ParseDERSignature(sigStr, ec.S256())
	if err != nil {
		return nil, err
	}
	return &Signature{R: sig.R, S: sig.S}, nil
}

// IsEqual returns true if two signatures are equal.
func (s *Signature) IsEqual(signature *Signature) bool {
	return (&ec.Signature{R: s.R, S: s.S}).IsEqual(&ec.Signature{R: signature.R, S: signature.S})
}

// Verify calls ecdsa.Verify to verify the signature of hash using the public
// key. It returns true if the signature is valid, false otherwise.
func (s *Signature) Verify(hash []byte, signee *PublicKey) bool {
	return ecdsa.Verify((*ec.PublicKey)(signee).ToECDSA(), hash, s.R, s.S)
}

// Serialize converts the public key to compressed bytes.
func (p *PublicKey) Serialize() []byte {
	return (*ec.PublicKey)(p).SerializeCompressed()
}

// ParsePubKey parses a compressed public key from bytes.
func ParsePubKey(pubKeyStr []byte) (*PublicKey, error) {
	key, err := ec.ParsePubKey(pubKeyStr, ec.S256())
	return (*PublicKey)(key), err
}
