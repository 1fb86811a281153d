/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package timescale

// BandSpec requests one scale band with a relative height weight.
type BandSpec struct {
	Gran   Granularity
	Weight float64
}

// Band is a horizontal strip allocated to one granularity.
type Band struct {
	Gran Granularity
	Y    float64
	H    float64
}

// AllocateBands splits a vertical span between the requested scale bands and
// the row area beneath them. Each band gets height*(w/(1+sum of weights)); the
// remaining 1/(1+sum) share is the row area. With no bands the whole span is
// the row area.
func AllocateBands(y, height float64, specs []BandSpec) (bands []Band, rowTop, rowHeight float64) {
	var sum float64
	for _, s := range specs {
		sum += s.Weight
	}
	cursor := y
	for _, s := range specs {
		h := height * (s.Weight / (1 + sum))
		bands = append(bands, Band{Gran: s.Gran, Y: cursor, H: h})
		cursor += h
	}
	return bands, cursor, height * (1 / (1 + sum))
}
