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

package conf

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleConfig = `
ListenAddr: "127.0.0.1:9000"
LogLevel: debug
CampaignGoal: 500
BatchThreshold: 5
SeedDemoData: true
Shards:
  - ShardID: progressive
    Range:
      EconomicMin: -100
      EconomicMax: -20
      SocialMin: 20
      SocialMax: 100
      DiplomaticMin: -100
      DiplomaticMax: 100
  - ShardID: conservative
    Range:
      EconomicMin: 20
      EconomicMax: 100
      SocialMin: -100
      SocialMax: -20
      DiplomaticMin: -100
      DiplomaticMax: 100
`

func TestLoadConfig(t *testing.T) {
	Convey("Given a yaml config file", t, func() {
		dir, err := ioutil.TempDir("", "polis-conf")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "config.yaml")
		So(ioutil.WriteFile(path, []byte(sampleConfig), 0644), ShouldBeNil)

		Convey("Loading parses shards and settings", func() {
			config, err := LoadConfig(path)
			So(err, ShouldBeNil)
			So(config.ListenAddr, ShouldEqual, "127.0.0.1:9000")
			So(config.LogLevel, ShouldEqual, "debug")
			So(config.CampaignGoal, ShouldEqual, 500)
			So(config.BatchThreshold, ShouldEqual, 5)
			So(config.SeedDemoData, ShouldBeTrue)
			So(config.Shards, ShouldHaveLength, 2)
			So(config.Shards[0].ShardID, ShouldEqual, "progressive")
			So(config.Shards[0].Range.EconomicMax, ShouldEqual, -20)
		})
		Convey("Defaults fill empty fields", func() {
			So(ioutil.WriteFile(path, []byte("Shards: []\n"), 0644), ShouldBeNil)
			config, err := LoadConfig(path)
			So(err, ShouldBeNil)
			So(config.ListenAddr, ShouldEqual, "0.0.0.0:8546")
			So(config.LogLevel, ShouldEqual, "info")
		})
		Convey("A missing file fails", func() {
			_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
			So(err, ShouldNotBeNil)
		})
		Convey("Malformed yaml fails", func() {
			So(ioutil.WriteFile(path, []byte("{{nope"), 0644), ShouldBeNil)
			_, err := LoadConfig(path)
			So(err, ShouldNotBeNil)
		})
	})
}
