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

// Package api serves the coordinator over HTTP.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polis-protocol/polis/coordinator"
	"github.com/polis-protocol/polis/metric"
)

// Service binds the coordinator to the HTTP handlers.
type Service struct {
	coord *coordinator.Coordinator
}

// NewService returns a service over one coordinator.
func NewService(coord *coordinator.Coordinator) *Service {
	return &Service{coord: coord}
}

// NewServer builds the HTTP server: cors, the v1 routes, and the prometheus
// scrape endpoint.
func NewServer(addr string, coord *coordinator.Coordinator) (*http.Server, error) {
	e := gin.New()
	e.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	e.Use(cors.New(corsCfg))

	registry := prometheus.NewRegistry()
	if err := registry.Register(metric.NewPolisCollector(coord)); err != nil {
		return nil, errors.Wrap(err, "register collector")
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polis_api_requests_total",
		Help: "API requests by route and status code",
	}, []string{"route", "code"})
	if err := registry.Register(requests); err != nil {
		return nil, errors.Wrap(err, "register request counter")
	}
	e.Use(func(c *gin.Context) {
		c.Next()
		requests.WithLabelValues(
			c.Request.URL.Path, strconv.Itoa(c.Writer.Status())).Inc()
	})

	service := NewService(coord)
	service.AddRoutes(e)

	e.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return &http.Server{
		Addr:    addr,
		Handler: e,
	}, nil
}

// AddRoutes registers the v1 API under the engine.
func (s *Service) AddRoutes(e *gin.Engine) {
	v1 := e.Group("/v1")
	{
		v1.GET("/health", s.health)

		v1.GET("/stats/global", s.globalStats)
		v1.GET("/stats/chain", s.chainStats)

		v1.GET("/shards", s.listShards)
		v1.GET("/shards/:shard/blocks", s.shardBlocks)
		v1.GET("/shards/:shard/campaigns", s.shardCampaigns)

		v1.GET("/campaigns", s.allCampaigns)
		v1.GET("/campaigns/:shard/:target", s.campaign)

		v1.POST("/users/register", s.registerUser)
		v1.GET("/users/:did", s.userInfo)
		v1.GET("/users/:did/impact", s.userImpact)
		v1.POST("/users/:did/heartbeat", s.heartbeat)

		v1.POST("/actions/record", s.recordAction)
		v1.POST("/actions/submit", s.submitAction)
	}
}
