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

// Command polisd runs a polis coordinator node with its HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/polis-protocol/polis/api"
	"github.com/polis-protocol/polis/chainbus"
	"github.com/polis-protocol/polis/conf"
	"github.com/polis-protocol/polis/coordinator"
	"github.com/polis-protocol/polis/demo"
	"github.com/polis-protocol/polis/utils"
	"github.com/polis-protocol/polis/utils/log"
)

const name = "polisd"

var (
	version     = "unknown"
	listenAddr  string
	configFile  string
	seedDemo    bool
	showVersion bool
)

func init() {
	flag.StringVar(&listenAddr, "listen", "",
		"API listen addr (will override settings in config file)")
	flag.StringVar(&configFile, "config", "./config.yaml",
		"Configuration file for polisd")
	flag.BoolVar(&seedDemo, "demo", false,
		"Seed demo shards and history (will override settings in config file)")
	flag.BoolVar(&showVersion, "version", false,
		"Show version information and exit")
}

func main() {
	flag.Parse()
	if showVersion {
		fmt.Printf("%v %v %v %v %v\n",
			name, version, runtime.GOOS, runtime.GOARCH, runtime.Version())
		os.Exit(0)
	}

	flag.Visit(func(f *flag.Flag) {
		log.Infof("args %#v : %s", f.Name, f.Value)
	})

	cfg, err := conf.LoadConfig(configFile)
	if err != nil {
		log.WithError(err).Error("read config failed")
		os.Exit(-1)
	}
	conf.GConf = cfg

	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if seedDemo {
		cfg.SeedDemoData = true
	}
	log.SetStringLevel(cfg.LogLevel, log.InfoLevel)

	bus := chainbus.New()
	bus.SubscribeBlock(func(e chainbus.BlockEvent) {
		log.WithFields(log.Fields{
			"shard":  e.ShardID,
			"height": e.Block.Height,
			"block":  e.Block.BlockHash.Short(4),
		}).Info("new block")
	})

	coord := coordinator.NewCoordinator(coordinator.Config{
		CampaignGoal:     cfg.CampaignGoal,
		CampaignDuration: cfg.CampaignDuration,
		BatchThreshold:   cfg.BatchThreshold,
		Bus:              bus,
	})

	for _, s := range cfg.Shards {
		if err = coord.CreateShard(s.ShardID, s.Range); err != nil {
			log.WithError(err).Error("create shard failed")
			os.Exit(-1)
		}
	}

	if cfg.SeedDemoData {
		if err = demo.Seed(coord); err != nil {
			log.WithError(err).Error("seed demo data failed")
			os.Exit(-1)
		}
	}

	var server *http.Server
	if server, err = api.NewServer(cfg.ListenAddr, coord); err != nil {
		log.WithError(err).Error("init server failed")
		os.Exit(-1)
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("serve api failed")
		}
	}()

	log.WithField("addr", cfg.ListenAddr).Info("started polisd")

	<-utils.WaitForExit()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_ = server.Shutdown(ctx)
	bus.WaitAsync()
	log.Info("stopped polisd")
}
