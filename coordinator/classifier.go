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

package coordinator

import (
	"sort"

	"github.com/polis-protocol/polis/proto"
	"github.com/polis-protocol/polis/types"
)

// Classify maps a stance vector to the labels of every region that
// contains it. Regions may overlap, so a vector can match several
// shards at once, or none at all. Labels are returned in lexical
// order so repeated calls over the same regions yield the same slice.
func Classify(vector types.StanceVector, regions map[proto.ShardID]types.IdeologyRange) (matched []proto.ShardID) {
	for id, r := range regions {
		if r.Contains(vector) {
			matched = append(matched, id)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i] < matched[j] })
	return
}
