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

package chainbus

import (
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/polis-protocol/polis/types"
)

func TestChainBus(t *testing.T) {
	Convey("Given a bus with block and action subscribers", t, func() {
		bus := New()

		var blockCount, actionCount int64
		bus.SubscribeBlock(func(event BlockEvent) {
			atomic.AddInt64(&blockCount, 1)
		})
		bus.SubscribeBlock(func(event BlockEvent) {
			atomic.AddInt64(&blockCount, 1)
		})
		bus.SubscribeAction(func(event ActionEvent) {
			atomic.AddInt64(&actionCount, 1)
		})

		Convey("A block event should fan out to every block handler", func() {
			bus.PublishBlock(BlockEvent{ShardID: "test", Block: &types.Block{}})
			bus.WaitAsync()
			So(atomic.LoadInt64(&blockCount), ShouldEqual, 2)
			So(atomic.LoadInt64(&actionCount), ShouldEqual, 0)
		})

		Convey("An action event should reach only action handlers", func() {
			bus.PublishAction(ActionEvent{ShardID: "test", Action: &types.ImpactAction{}})
			bus.WaitAsync()
			So(atomic.LoadInt64(&actionCount), ShouldEqual, 1)
			So(atomic.LoadInt64(&blockCount), ShouldEqual, 0)
		})

		Convey("Publishing with no subscribers should be a no-op", func() {
			empty := New()
			empty.PublishBlock(BlockEvent{})
			empty.PublishAction(ActionEvent{})
			empty.WaitAsync()
		})
	})
}
