/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"fmt"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
)

// laneLabelInset is the horizontal gap between a swimlane title and the
// nearer edge of the row frame.
const laneLabelInset = 5.0

// LaneLabel is a positioned swimlane title. Anchor is an SVG text-anchor
// value, "start" for left-edge titles and "end" for right-edge ones.
type LaneLabel struct {
	Text   string
	X, Y   float64
	Anchor string
}

// LaneBand is one swimlane resolved to a row span.
type LaneBand struct {
	Lane     domain.Swimlane
	FirstRow int
	LastRow  int
	// Divider is set when a line should be drawn under LastRow. The lane
	// whose bottom edge is the row frame bottom gets none.
	Divider  bool
	DividerY float64
	Label    *LaneLabel
}

// PlaceSwimlanes assigns contiguous row bands to swimlanes in list order,
// starting at row 1. A lane that would run past the last row is skipped, but
// the cursor still advances by its row count so later lanes keep their
// intended positions.
func PlaceSwimlanes(g Grid, lanes []domain.Swimlane, style config.RenderStyle) ([]LaneBand, []Skip) {
	var bands []LaneBand
	var skips []Skip
	firstRow := 1
	for _, ln := range lanes {
		lastRow := firstRow + ln.RowCount - 1
		if firstRow < 1 || lastRow > g.NumRows {
			skips = append(skips, Skip{
				Element: "swimlane",
				ID:      ln.ID,
				Reason:  fmt.Sprintf("rows %d-%d outside 1-%d", firstRow, lastRow, g.NumRows),
			})
			firstRow += ln.RowCount
			continue
		}
		band := LaneBand{Lane: ln, FirstRow: firstRow, LastRow: lastRow}
		bottom := g.RowTop(lastRow) + g.RowHeight
		if bottom < g.Bottom()-0.5 {
			band.Divider = true
			band.DividerY = bottom
		}
		if ln.Title != "" {
			band.Label = laneLabel(g, band, ln, style)
		}
		bands = append(bands, band)
		firstRow += ln.RowCount
	}
	return bands, skips
}

func laneLabel(g Grid, band LaneBand, ln domain.Swimlane, style config.RenderStyle) *LaneLabel {
	fontSize := style.Fonts.Swimlane
	lbl := &LaneLabel{Text: ln.Title}
	if ln.Position.Left() {
		lbl.X = g.Left + laneLabelInset
		lbl.Anchor = "start"
	} else {
		lbl.X = g.Right() - laneLabelInset
		lbl.Anchor = "end"
	}
	// The alignment factor sweeps the title across its anchor row: 0 puts
	// the text flush with the row top, 0.5 centers it, 1 rests it on the
	// row bottom. The fontSize term converts the glyph-box position to a
	// baseline.
	if ln.Position.Top() {
		lbl.Y = rowAlignedBaseline(g.RowTop(band.FirstRow), g.RowHeight, fontSize, style.SwimlaneTopVAlignFactor)
	} else {
		lbl.Y = rowAlignedBaseline(g.RowTop(band.LastRow), g.RowHeight, fontSize, style.SwimlaneBottomVAlignFactor)
	}
	return lbl
}

func rowAlignedBaseline(rowTop, rowHeight, fontSize, factor float64) float64 {
	return rowTop + (rowHeight-fontSize)*factor + fontSize
}
