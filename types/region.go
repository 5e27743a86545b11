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

// StanceVector is a point in the classification space:
// [economic, social, diplomatic], each in [-100, 100] by convention.
type StanceVector [3]float32

// IdeologyRange is an axis-aligned bounding box over the classification
// space, labeling one shard's membership criterion. It is immutable once the
// shard is created. Ranges of different shards may overlap; a vector may fall
// into zero, one or many of them.
type IdeologyRange struct {
	EconomicMin   float32 `yaml:"EconomicMin"`
	EconomicMax   float32 `yaml:"EconomicMax"`
	SocialMin     float32 `yaml:"SocialMin"`
	SocialMax     float32 `yaml:"SocialMax"`
	DiplomaticMin float32 `yaml:"DiplomaticMin"`
	DiplomaticMax float32 `yaml:"DiplomaticMax"`
}

// Contains reports whether the vector lies within the closed bounds of the
// range on every axis. Boundary values count as inside.
func (r *IdeologyRange) Contains(vector StanceVector) bool {
	economic, social, diplomatic := vector[0], vector[1], vector[2]
	return economic >= r.EconomicMin && economic <= r.EconomicMax &&
		social >= r.SocialMin && social <= r.SocialMax &&
		diplomatic >= r.DiplomaticMin && diplomatic <= r.DiplomaticMax
}
