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

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/polis-protocol/polis/coordinator"
	"github.com/polis-protocol/polis/types"
)

func testServer(t *testing.T) (*coordinator.Coordinator, http.Handler) {
	gin.SetMode(gin.TestMode)
	coord := coordinator.NewCoordinator(coordinator.Config{})
	if err := coord.CreateShard("progressive", types.IdeologyRange{
		EconomicMin: -100, EconomicMax: -20,
		SocialMin: 20, SocialMax: 100,
		DiplomaticMin: -100, DiplomaticMax: 100,
	}); err != nil {
		t.Fatalf("Error occurred: %v", err)
	}
	server, err := NewServer("127.0.0.1:0", coord)
	if err != nil {
		t.Fatalf("Error occurred: %v", err)
	}
	return coord, server.Handler
}

func doJSON(
	handler http.Handler, method, path string, body interface{},
) (code int, resp map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	resp = make(map[string]interface{})
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec.Code, resp
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given a running service", t, func() {
		_, handler := testServer(t)

		Convey("Health reports ok", func() {
			code, resp := doJSON(handler, "GET", "/v1/health", nil)
			So(code, ShouldEqual, http.StatusOK)
			So(resp["success"], ShouldBeTrue)
		})
		Convey("Global stats start empty", func() {
			code, resp := doJSON(handler, "GET", "/v1/stats/global", nil)
			So(code, ShouldEqual, http.StatusOK)
			data := resp["data"].(map[string]interface{})
			So(data["total_shards"], ShouldEqual, 1)
			So(data["total_capital_diverted"], ShouldEqual, 0)
		})
		Convey("Chain stats start empty", func() {
			code, resp := doJSON(handler, "GET", "/v1/stats/chain", nil)
			So(code, ShouldEqual, http.StatusOK)
			data := resp["data"].(map[string]interface{})
			So(data["total_blocks"], ShouldEqual, 0)
		})
	})
}

func TestUserLifecycle(t *testing.T) {
	Convey("Given a running service", t, func() {
		_, handler := testServer(t)

		Convey("Registration routes the user", func() {
			code, resp := doJSON(handler, "POST", "/v1/users/register", gin.H{
				"did":    "did:polis:alice",
				"vector": []float32{-80, 80, 0},
			})
			So(code, ShouldEqual, http.StatusOK)
			data := resp["data"].(map[string]interface{})
			So(data["shards"], ShouldResemble, []interface{}{"progressive"})

			Convey("The user can be looked up", func() {
				code, resp := doJSON(handler, "GET", "/v1/users/did:polis:alice", nil)
				So(code, ShouldEqual, http.StatusOK)
				data := resp["data"].(map[string]interface{})
				So(data["is_online"], ShouldBeTrue)
			})
			Convey("Heartbeat flips activity", func() {
				code, _ := doJSON(handler, "POST",
					"/v1/users/did:polis:alice/heartbeat", gin.H{"online": false})
				So(code, ShouldEqual, http.StatusOK)

				_, resp := doJSON(handler, "GET", "/v1/users/did:polis:alice", nil)
				data := resp["data"].(map[string]interface{})
				So(data["is_online"], ShouldBeFalse)
			})
		})
		Convey("Unknown users return not found", func() {
			code, resp := doJSON(handler, "GET", "/v1/users/did:polis:nobody", nil)
			So(code, ShouldEqual, http.StatusNotFound)
			So(resp["success"], ShouldBeFalse)
		})
		Convey("A registration without a did is rejected", func() {
			code, _ := doJSON(handler, "POST", "/v1/users/register", gin.H{
				"vector": []float32{0, 0, 0},
			})
			So(code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestActionEndpoints(t *testing.T) {
	Convey("Given a registered user", t, func() {
		_, handler := testServer(t)
		code, _ := doJSON(handler, "POST", "/v1/users/register", gin.H{
			"did":    "did:polis:alice",
			"vector": []float32{-80, 80, 0},
		})
		So(code, ShouldEqual, http.StatusOK)

		Convey("Recording an action updates campaigns and stats", func() {
			code, _ := doJSON(handler, "POST", "/v1/actions/record", gin.H{
				"did":    "did:polis:alice",
				"type":   "BOYCOTT",
				"target": "ACME",
				"value":  5000,
			})
			So(code, ShouldEqual, http.StatusOK)

			code, resp := doJSON(handler, "GET", "/v1/campaigns", nil)
			So(code, ShouldEqual, http.StatusOK)
			campaigns := resp["data"].([]interface{})
			So(campaigns, ShouldHaveLength, 1)
			campaign := campaigns[0].(map[string]interface{})
			So(campaign["target"], ShouldEqual, "ACME")
			So(campaign["verified_participants"], ShouldEqual, 1)
			So(campaign["diverted_usd"], ShouldEqual, 50)
			So(campaign["status"], ShouldEqual, "ACTIVE")

			code, resp = doJSON(handler, "GET",
				"/v1/campaigns/progressive/ACME", nil)
			So(code, ShouldEqual, http.StatusOK)

			code, resp = doJSON(handler, "GET",
				"/v1/users/did:polis:alice/impact", nil)
			So(code, ShouldEqual, http.StatusOK)
			data := resp["data"].(map[string]interface{})
			So(data["total_actions"], ShouldEqual, 1)
			So(data["total_diverted"], ShouldEqual, 5000)

			code, resp = doJSON(handler, "GET",
				"/v1/shards/progressive/blocks", nil)
			So(code, ShouldEqual, http.StatusOK)
			blocks := resp["data"].([]interface{})
			So(blocks, ShouldHaveLength, 1)
		})
		Convey("An unknown action type is rejected", func() {
			code, _ := doJSON(handler, "POST", "/v1/actions/record", gin.H{
				"did":    "did:polis:alice",
				"type":   "SABOTAGE",
				"target": "ACME",
			})
			So(code, ShouldEqual, http.StatusBadRequest)
		})
		Convey("Recording for an unknown user fails", func() {
			code, _ := doJSON(handler, "POST", "/v1/actions/record", gin.H{
				"did":    "did:polis:nobody",
				"type":   "VOTE",
				"target": "PROP-1",
			})
			So(code, ShouldEqual, http.StatusNotFound)
		})
		Convey("Direct submission honors the proof policy", func() {
			code, _ := doJSON(handler, "POST", "/v1/actions/submit", gin.H{
				"shard_id": "progressive",
				"did":      "did:polis:ext",
				"type":     "RALLY",
				"target":   "TOWNHALL",
				"proof":    "junk",
			})
			So(code, ShouldEqual, http.StatusBadRequest)

			code, resp := doJSON(handler, "POST", "/v1/actions/submit", gin.H{
				"shard_id": "progressive",
				"did":      "did:polis:ext",
				"type":     "RALLY",
				"target":   "TOWNHALL",
				"proof":    "authority_verified_ext",
			})
			So(code, ShouldEqual, http.StatusOK)
			data := resp["data"].(map[string]interface{})
			So(data["action_id"], ShouldNotBeBlank)
		})
	})
}

func TestMetricsEndpoint(t *testing.T) {
	Convey("Given a running service", t, func() {
		_, handler := testServer(t)

		Convey("The scrape endpoint exposes coordinator gauges", func() {
			code, _ := doJSON(handler, "GET", "/v1/health", nil)
			So(code, ShouldEqual, http.StatusOK)

			req := httptest.NewRequest("GET", "/metrics", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.Contains(rec.Body.String(), "polisstats_shards_total"),
				ShouldBeTrue)
			So(strings.Contains(rec.Body.String(), "polis_api_requests_total"),
				ShouldBeTrue)
		})
	})
}
