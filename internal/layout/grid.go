/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package layout turns rows, swimlanes and tasks into pixel geometry. It is
// pure computation; drawing happens in the render package.
package layout

// Grid is the row frame: the rectangle holding all task rows.
type Grid struct {
	Left, Top     float64
	Width, Height float64
	NumRows       int
	RowHeight     float64
}

// NewGrid divides a rectangle into numRows equal-height rows.
func NewGrid(left, top, width, height float64, numRows int) Grid {
	if numRows < 1 {
		numRows = 1
	}
	return Grid{
		Left: left, Top: top, Width: width, Height: height,
		NumRows:   numRows,
		RowHeight: height / float64(numRows),
	}
}

// RowTop returns the top edge of a 1-based row number.
func (g Grid) RowTop(row int) float64 {
	return g.Top + float64(row-1)*g.RowHeight
}

// RowCenter returns the vertical midpoint of a 1-based row number.
func (g Grid) RowCenter(row int) float64 {
	return g.RowTop(row) + g.RowHeight*0.5
}

// Right returns the right edge of the row frame.
func (g Grid) Right() float64 { return g.Left + g.Width }

// Bottom returns the bottom edge of the row frame.
func (g Grid) Bottom() float64 { return g.Top + g.Height }

// Skip records an element left out of the render and why.
type Skip struct {
	Element string
	ID      int
	Reason  string
}
