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

// Package conf loads the polisd node configuration from a yaml file.
package conf

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/types"
	"github.com/polis-protocol/polis/utils/log"
)

// ShardInfo declares one shard chain to create at startup.
type ShardInfo struct {
	// ShardID is the shard label, unique across the node.
	ShardID proto.ShardID `yaml:"ShardID"`
	// Range is the closed ideology region the shard accepts.
	Range types.IdeologyRange `yaml:"Range"`
}

// Config holds all the config read from the yaml config file.
type Config struct {
	// ListenAddr is the api server bind address.
	ListenAddr string `yaml:"ListenAddr"`
	// LogLevel is a logrus level name, empty means info.
	LogLevel string `yaml:"LogLevel"`

	// CampaignGoal and CampaignDuration override the campaign defaults of
	// every shard. Zero keeps the package defaults.
	CampaignGoal     uint64 `yaml:"CampaignGoal"`
	CampaignDuration uint64 `yaml:"CampaignDuration"`
	// BatchThreshold is the pending pool size that seals a block.
	BatchThreshold int `yaml:"BatchThreshold"`

	// SeedDemoData populates the shards with sample identities and actions.
	SeedDemoData bool `yaml:"SeedDemoData"`

	Shards []ShardInfo `yaml:"Shards"`
}

// GConf is the global config pointer.
var GConf *Config

// LoadConfig loads config from configPath.
func LoadConfig(configPath string) (config *Config, err error) {
	configBytes, err := ioutil.ReadFile(configPath)
	if err != nil {
		err = errors.Wrap(err, "read config file failed")
		return
	}
	config = &Config{}
	if err = yaml.Unmarshal(configBytes, config); err != nil {
		err = errors.Wrap(err, "unmarshal config file failed")
		config = nil
		return
	}
	if config.ListenAddr == "" {
		config.ListenAddr = "0.0.0.0:8546"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	log.WithField("path", configPath).Debug("loaded config")
	return
}
