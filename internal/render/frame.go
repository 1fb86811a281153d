/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/layout"
	"github.com/haymanjoyce/compactgantt-sub000/internal/timescale"
)

// gridlineWeight maps granularities to stroke widths so coarser boundaries
// read stronger.
func gridlineWeight(g timescale.Granularity) float64 {
	switch g {
	case timescale.Years:
		return 3.0
	case timescale.Months:
		return 2.0
	case timescale.Weeks:
		return 1.5
	default:
		return 1.0
	}
}

func (r *Renderer) drawHeaderFooter(canvas *svg.SVG, frame domain.FrameConfig, g geom) {
	if frame.HeaderHeight > 0 && frame.HeaderText != "" {
		y := r.baseline(g.headerY+frame.HeaderHeight/2, r.style.Fonts.HeaderFooter)
		canvas.Text(g.chartX+g.chartW/2, y, frame.HeaderText,
			r.textStyle(r.style.Fonts.HeaderFooter, "black", "middle"))
	}
	if frame.FooterHeight > 0 && frame.FooterText != "" {
		y := r.baseline(g.footerY+frame.FooterHeight/2, r.style.Fonts.HeaderFooter)
		canvas.Text(g.chartX+g.chartW/2, y, frame.FooterText,
			r.textStyle(r.style.Fonts.HeaderFooter, "black", "middle"))
	}
}

// drawScaleBands paints each enabled granularity band: background, period
// separators strictly inside the drawable width, and width-dependent period
// labels.
func (r *Renderer) drawScaleBands(canvas *svg.SVG, frame domain.FrameConfig, g geom) {
	bandStyle := style("fill", r.style.Colors.BandFill) +
		style("stroke", r.style.Colors.BandStroke) + "stroke-width:0.5"
	sepStyle := style("stroke", r.style.Colors.BandStroke) + "stroke-width:0.5"
	right := g.chartX + g.chartW

	for _, band := range g.bands {
		canvas.Rect(g.chartX, band.Y, g.chartW, band.H, bandStyle)
		for _, p := range g.mapper.Periods(band.Gran) {
			xStart := g.mapper.DateToX(p.Start)
			xNext := g.mapper.DateToX(p.Next)
			if xNext > g.chartX && xNext < right {
				canvas.Line(xNext, band.Y, xNext, band.Y+band.H, sepStyle)
			}
			label := timescale.PeriodLabel(band.Gran, p.Start, xNext-xStart,
				r.style.FullLabelWidth, r.style.ShortLabelWidth)
			if label == "" {
				continue
			}
			mid := (xStart + xNext) / 2
			canvas.Text(mid, r.baseline(band.Y+band.H/2, r.style.Fonts.Scale), label,
				r.textStyle(r.style.Fonts.Scale, "black", "middle"))
		}
	}
}

// drawRowFrame paints the row area border, horizontal gridlines between rows,
// and the optional row numbers along the left edge.
func (r *Renderer) drawRowFrame(canvas *svg.SVG, frame domain.FrameConfig, g geom, snap *domain.Snapshot) {
	grid := g.grid
	canvas.Rect(grid.Left, grid.Top, grid.Width, grid.Height,
		style("fill", "none")+style("stroke", r.style.Colors.BandStroke)+"stroke-width:0.5")

	if frame.HorizontalGridlines {
		lineStyle := style("stroke", r.style.Colors.Gridline) + "stroke-width:1"
		for row := 2; row <= grid.NumRows; row++ {
			y := grid.RowTop(row)
			canvas.Line(grid.Left, y, grid.Right(), y, lineStyle)
		}
	}

	if frame.ShowRowNumbers {
		size := r.style.Fonts.RowNumber
		for row := 1; row <= grid.NumRows; row++ {
			canvas.Text(grid.Left+3, r.baseline(grid.RowCenter(row), size),
				strconv.Itoa(row), r.textStyle(size, r.style.Colors.BandStroke, "start"))
		}
	}
}

// drawVerticalGridlines extends period boundaries down through the row frame
// for each enabled granularity, coarser granularities drawn with heavier
// strokes.
func (r *Renderer) drawVerticalGridlines(canvas *svg.SVG, frame domain.FrameConfig, g geom) {
	enabled := map[timescale.Granularity]bool{
		timescale.Years:  frame.VerticalGridlines.Years,
		timescale.Months: frame.VerticalGridlines.Months,
		timescale.Weeks:  frame.VerticalGridlines.Weeks,
		timescale.Days:   frame.VerticalGridlines.Days,
	}
	grid := g.grid
	right := grid.Right()
	for _, gran := range timescale.All {
		if !enabled[gran] {
			continue
		}
		lineStyle := style("stroke", r.style.Colors.Gridline) +
			"stroke-width:" + strconv.FormatFloat(gridlineWeight(gran), 'g', -1, 64)
		for _, p := range g.mapper.Periods(gran) {
			x := g.mapper.DateToX(p.Next)
			if x <= grid.Left || x >= right {
				continue
			}
			canvas.Line(x, grid.Top, x, grid.Bottom(), lineStyle)
		}
	}
}

func (r *Renderer) drawSwimlanes(canvas *svg.SVG, bands []layout.LaneBand, g geom) {
	divStyle := style("stroke", r.style.Colors.BandStroke) + "stroke-width:1"
	for _, band := range bands {
		if band.Divider {
			canvas.Line(g.grid.Left, band.DividerY, g.grid.Right(), band.DividerY, divStyle)
		}
		if band.Label != nil {
			canvas.Text(band.Label.X, band.Label.Y, band.Label.Text,
				r.textStyle(r.style.Fonts.Swimlane, "black", band.Label.Anchor))
		}
	}
}
