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
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestActionContentHash(t *testing.T) {
	Convey("Given two logically identical actions", t, func() {
		a1 := &ImpactAction{
			DID:       "did:polis:user1",
			Type:      Boycott,
			Target:    "MegaCorp",
			Value:     5000,
			Proof:     "proof_data_here_with_sufficient_length",
			Timestamp: 1700000000,
			ActionID:  "action_001",
		}
		a2 := &ImpactAction{
			DID:       "did:polis:user1",
			Type:      Boycott,
			Target:    "MegaCorp",
			Value:     5000,
			Proof:     "a_completely_different_proof_token_here",
			Timestamp: 1700000000,
			ActionID:  "action_002",
		}

		Convey("Their content hashes should match despite id and proof", func() {
			h1, h2 := a1.ContentHash(), a2.ContentHash()
			So(h1.IsEqual(&h2), ShouldBeTrue)
		})

		Convey("Changing any hashed field should change the hash", func() {
			base := a1.ContentHash()

			changed := *a1
			changed.Target = "OtherCorp"
			h := changed.ContentHash()
			So(h.IsEqual(&base), ShouldBeFalse)

			changed = *a1
			changed.Value = 5001
			h = changed.ContentHash()
			So(h.IsEqual(&base), ShouldBeFalse)

			changed = *a1
			changed.Type = Buycott
			h = changed.ContentHash()
			So(h.IsEqual(&base), ShouldBeFalse)

			changed = *a1
			changed.Timestamp = 1700000001
			h = changed.ContentHash()
			So(h.IsEqual(&base), ShouldBeFalse)
		})
	})
}

func TestDefaultProofPolicy(t *testing.T) {
	Convey("Given the default proof policy", t, func() {
		action := func(proof string) *ImpactAction {
			return &ImpactAction{DID: "did:polis:user1", Proof: proof}
		}

		Convey("An empty token should be rejected", func() {
			So(DefaultProofPolicy(action("")), ShouldBeFalse)
		})
		Convey("A short unrecognized token should be rejected", func() {
			So(DefaultProofPolicy(action("short")), ShouldBeFalse)
		})
		Convey("A 32-byte token should pass", func() {
			So(DefaultProofPolicy(action(strings.Repeat("x", 32))), ShouldBeTrue)
		})
		Convey("An authority verified token should pass regardless of length", func() {
			So(DefaultProofPolicy(action(VerifiedProofPrefix+"uid1")), ShouldBeTrue)
		})
	})
}

func TestNewImpactAction(t *testing.T) {
	Convey("A fresh action should carry a unique id and a timestamp", t, func() {
		a1 := NewImpactAction("did:polis:user1", Donate, "ACME", 100, VerifiedProofPrefix+"u")
		a2 := NewImpactAction("did:polis:user1", Donate, "ACME", 100, VerifiedProofPrefix+"u")
		So(a1.ActionID, ShouldNotBeEmpty)
		So(a1.ActionID, ShouldNotEqual, a2.ActionID)
		So(a1.Timestamp, ShouldBeGreaterThan, 0)
	})
}

func TestParseActionType(t *testing.T) {
	Convey("Action type names should round trip through parsing", t, func() {
		for _, at := range []ActionType{Boycott, Buycott, Vote, Donate, Rally} {
			parsed, err := ParseActionType(at.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, at)
		}

		parsed, err := ParseActionType("boycott")
		So(err, ShouldBeNil)
		So(parsed, ShouldEqual, Boycott)

		_, err = ParseActionType("PROTEST")
		So(err, ShouldEqual, ErrUnknownActionType)
	})
}
