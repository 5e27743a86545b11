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
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/polis-protocol/polis/crypto/hash"
	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/utils"
)

// ActionType enumerates the kinds of impact actions a participant can submit.
type ActionType int32

// Supported action types.
const (
	Boycott ActionType = iota
	Buycott
	Vote
	Donate
	Rally
)

// String implements fmt.Stringer.
func (t ActionType) String() string {
	switch t {
	case Boycott:
		return "BOYCOTT"
	case Buycott:
		return "BUYCOTT"
	case Vote:
		return "VOTE"
	case Donate:
		return "DONATE"
	case Rally:
		return "RALLY"
	default:
		return "UNKNOWN"
	}
}

// ParseActionType parses an action type name, case insensitively.
func ParseActionType(s string) (ActionType, error) {
	switch strings.ToUpper(s) {
	case "BOYCOTT":
		return Boycott, nil
	case "BUYCOTT":
		return Buycott, nil
	case "VOTE":
		return Vote, nil
	case "DONATE":
		return Donate, nil
	case "RALLY":
		return Rally, nil
	default:
		return 0, ErrUnknownActionType
	}
}

// ImpactAction is one submitted, timestamped unit of activity. It is
// immutable after creation; the ledger only ever copies and hashes it.
type ImpactAction struct {
	DID       proto.DID
	Type      ActionType
	Target    string
	Value     uint64 // smallest currency unit, never floating point
	Proof     string
	Timestamp int64
	ActionID  string
}

// NewImpactAction assembles an action stamped with the current time and a
// fresh action id.
func NewImpactAction(
	did proto.DID, actionType ActionType, target string, value uint64, proof string,
) *ImpactAction {
	return &ImpactAction{
		DID:       did,
		Type:      actionType,
		Target:    target,
		Value:     value,
		Proof:     proof,
		Timestamp: time.Now().Unix(),
		ActionID:  uuid.Must(uuid.NewV4()).String(),
	}
}

// ContentHash returns the deterministic digest of the action content. The
// action id and proof token are excluded on purpose: two logically identical
// submissions at the same timestamp hash identically. The digest doubles as
// the action's merkle leaf.
func (a *ImpactAction) ContentHash() hash.Hash {
	buffer := bytes.NewBuffer(nil)
	// only fixed-width and length-prefixed writes below, cannot fail
	_ = utils.WriteElements(buffer, binary.BigEndian,
		a.DID,
		a.Type.String(),
		a.Target,
		a.Value,
		a.Timestamp,
	)
	return hash.THashH(buffer.Bytes())
}

// VerifiedProofPrefix marks a proof token vouched for by an external
// authority and accepted regardless of its length.
const VerifiedProofPrefix = "authority_verified_"

// ProofPolicy decides whether an action's proof token is acceptable. The
// default policy is a placeholder for a real zero-knowledge verification and
// is injected at ledger construction so a production scheme can replace it
// without touching ledger logic.
type ProofPolicy func(action *ImpactAction) bool

// DefaultProofPolicy accepts a non-empty token which either carries the
// external authority prefix or is at least 32 bytes long.
func DefaultProofPolicy(action *ImpactAction) bool {
	if action.Proof == "" {
		return false
	}
	return strings.HasPrefix(action.Proof, VerifiedProofPrefix) || len(action.Proof) >= 32
}
