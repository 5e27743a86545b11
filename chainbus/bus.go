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

// Package chainbus carries ledger state changes to interested observers.
//
// The coordinator publishes every accepted action and every appended block
// here; a transport collaborator subscribes and propagates them to peers.
// The ledger core itself never calls out to a transport. Handlers run on
// their own goroutines so publishing never blocks the coordinator lock.
package chainbus

import (
	"sync"

	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/types"
)

// BlockEvent announces a block appended to one shard's chain.
type BlockEvent struct {
	ShardID proto.ShardID
	Block   *types.Block
}

// ActionEvent announces an action accepted into one shard's pending pool.
type ActionEvent struct {
	ShardID proto.ShardID
	Action  *types.ImpactAction
}

// BlockHandler consumes block events.
type BlockHandler func(BlockEvent)

// ActionHandler consumes action events.
type ActionHandler func(ActionEvent)

// ChainSuber defines the subscribing side of the bus.
type ChainSuber interface {
	SubscribeBlock(handler BlockHandler)
	SubscribeAction(handler ActionHandler)
}

// ChainPuber defines the publishing side of the bus.
type ChainPuber interface {
	PublishBlock(event BlockEvent)
	PublishAction(event ActionEvent)
}

// Bus combines both sides plus synchronization.
type Bus interface {
	ChainSuber
	ChainPuber
	// WaitAsync blocks until all in-flight handler invocations return.
	WaitAsync()
}

// ChainBus is the in-process Bus implementation.
type ChainBus struct {
	lock           sync.Mutex
	wg             sync.WaitGroup
	blockHandlers  []BlockHandler
	actionHandlers []ActionHandler
}

// New returns a new ChainBus with no subscribers.
func New() Bus {
	return &ChainBus{}
}

// SubscribeBlock registers a handler for appended blocks.
func (bus *ChainBus) SubscribeBlock(handler BlockHandler) {
	bus.lock.Lock()
	defer bus.lock.Unlock()
	bus.blockHandlers = append(bus.blockHandlers, handler)
}

// SubscribeAction registers a handler for accepted actions.
func (bus *ChainBus) SubscribeAction(handler ActionHandler) {
	bus.lock.Lock()
	defer bus.lock.Unlock()
	bus.actionHandlers = append(bus.actionHandlers, handler)
}

// PublishBlock fans the event out to all block handlers.
func (bus *ChainBus) PublishBlock(event BlockEvent) {
	bus.lock.Lock()
	handlers := append([]BlockHandler(nil), bus.blockHandlers...)
	bus.lock.Unlock()

	for _, handler := range handlers {
		bus.wg.Add(1)
		go func(handler BlockHandler) {
			defer bus.wg.Done()
			handler(event)
		}(handler)
	}
}

// PublishAction fans the event out to all action handlers.
func (bus *ChainBus) PublishAction(event ActionEvent) {
	bus.lock.Lock()
	handlers := append([]ActionHandler(nil), bus.actionHandlers...)
	bus.lock.Unlock()

	for _, handler := range handlers {
		bus.wg.Add(1)
		go func(handler ActionHandler) {
			defer bus.wg.Done()
			handler(event)
		}(handler)
	}
}

// WaitAsync waits for all in-flight handler invocations to complete.
func (bus *ChainBus) WaitAsync() {
	bus.wg.Wait()
}
