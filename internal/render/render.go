/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render composes a project snapshot into an SVG document. Drawing
// follows a fixed z-order; the outer frame border goes down last so nothing
// ever occludes it. Rendering is synchronous and produces either a complete
// document or an error with no partial output obligations on the caller.
package render

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/layout"
	"github.com/haymanjoyce/compactgantt-sub000/internal/links"
	"github.com/haymanjoyce/compactgantt-sub000/internal/log"
	"github.com/haymanjoyce/compactgantt-sub000/internal/textlayout"
	"github.com/haymanjoyce/compactgantt-sub000/internal/timescale"
)

// ErrNoChartRange aborts a render whose frame lacks a usable start/end date.
var ErrNoChartRange = errors.New("chart start and end dates are required")

// Renderer turns snapshots into SVG. It is safe to reuse across renders; all
// per-render state lives on the stack of Compose.
type Renderer struct {
	style config.RenderStyle
	meas  *textlayout.Measurer
}

// New builds a renderer with the given immutable style.
func New(style config.RenderStyle) *Renderer {
	return &Renderer{style: style, meas: textlayout.NewMeasurer()}
}

// geom is the global geometry derived once per render.
type geom struct {
	outerW, outerH float64
	// chart area: inside margins, between header and footer bands
	chartX, chartY, chartW, chartH float64
	headerY, footerY               float64
	bands                          []timescale.Band
	grid                           layout.Grid
	mapper                         timescale.Mapper
}

// decorTop is where full-height decorations start: the top of the scale
// area when scale bands are shown, otherwise the row frame.
func (g geom) decorTop() float64 {
	if len(g.bands) > 0 {
		return g.bands[0].Y
	}
	return g.grid.Top
}

// Compose renders the snapshot onto w as a complete SVG document. A missing
// or inverted chart range is fatal; any other malformed element is skipped
// with a warning and the rest of the chart still renders.
func (r *Renderer) Compose(w io.Writer, snap *domain.Snapshot) error {
	logger := log.WithComponent("render")

	frame := snap.Frame
	if frame.ChartStart.IsZero() || frame.ChartEnd.IsZero() {
		return ErrNoChartRange
	}
	if !frame.ChartEnd.After(frame.ChartStart.Time) {
		return fmt.Errorf("%w: end %s not after start %s", ErrNoChartRange, frame.ChartEnd.ISO(), frame.ChartStart.ISO())
	}

	g := r.deriveGeometry(frame)
	boxes, drawOrder, taskSkips := layout.PlaceTasks(snap, g.mapper, g.grid, r.style, r.meas)
	laneBands, laneSkips := layout.PlaceSwimlanes(g.grid, snap.Swimlanes, r.style)
	routes, linkRes := links.Resolve(snap, boxes)

	for _, s := range append(taskSkips, laneSkips...) {
		logger.Warn("element skipped", "element", s.Element, "id", s.ID, "reason", s.Reason)
	}
	for id, res := range linkRes {
		if !res.Valid && res.Reason != "" {
			logger.Warn("link not drawn", "id", id, "from", res.FromName, "to", res.ToName, "reason", res.Reason)
		}
	}

	canvas := svg.New(w)
	canvas.Start(g.outerW, g.outerH)

	// Fixed z-order, bottom first.
	canvas.Rect(0, 0, g.outerW, g.outerH, style("fill", r.style.Colors.Background))
	r.drawHeaderFooter(canvas, frame, g)
	r.drawScaleBands(canvas, frame, g)
	r.drawRowFrame(canvas, frame, g, snap)
	r.drawVerticalGridlines(canvas, frame, g)
	r.drawSwimlanes(canvas, laneBands, g)
	r.drawPipes(canvas, snap, g, logger)
	r.drawCurtains(canvas, snap, g, logger)
	r.drawTasks(canvas, drawOrder)
	r.drawLinks(canvas, routes)
	r.drawNotes(canvas, snap)
	r.drawBadges(canvas, drawOrder)
	canvas.Rect(0, 0, g.outerW, g.outerH,
		style("fill", "none")+style("stroke", r.style.Colors.FrameBorder)+"stroke-width:1")

	canvas.End()
	return nil
}

func (r *Renderer) deriveGeometry(frame domain.FrameConfig) geom {
	g := geom{outerW: frame.OuterWidth, outerH: frame.OuterHeight}
	m := frame.Margins
	g.chartX = m.Left
	g.chartW = frame.OuterWidth - m.Left - m.Right
	g.headerY = m.Top
	g.chartY = m.Top + frame.HeaderHeight
	g.footerY = frame.OuterHeight - m.Bottom - frame.FooterHeight
	g.chartH = g.footerY - g.chartY

	var specs []timescale.BandSpec
	for _, bs := range []struct {
		gran   timescale.Granularity
		on     bool
		weight float64
	}{
		{timescale.Years, frame.ShowScales.Years, r.style.Scale.Years},
		{timescale.Months, frame.ShowScales.Months, r.style.Scale.Months},
		{timescale.Weeks, frame.ShowScales.Weeks, r.style.Scale.Weeks},
		{timescale.Days, frame.ShowScales.Days, r.style.Scale.Days},
	} {
		if bs.on {
			specs = append(specs, timescale.BandSpec{Gran: bs.gran, Weight: bs.weight})
		}
	}
	bands, rowTop, rowHeight := timescale.AllocateBands(g.chartY, g.chartH, specs)
	g.bands = bands
	g.grid = layout.NewGrid(g.chartX, rowTop, g.chartW, rowHeight, frame.NumRows)
	g.mapper = timescale.NewMapper(frame.ChartStart, frame.ChartEnd, g.chartX, g.chartW)
	return g
}

// style formats one CSS property for an svgo style string.
func style(prop, val string) string { return prop + ":" + val + ";" }

// textStyle builds the common text attributes.
func (r *Renderer) textStyle(size float64, fill, anchor string) string {
	return fmt.Sprintf("fill:%s;font-size:%.4gpx;font-family:%s;text-anchor:%s", fill, size, r.style.FontFamily, anchor)
}

// baseline vertically centers a text line of the given size on centerY.
func (r *Renderer) baseline(centerY, size float64) float64 {
	return centerY + size*r.style.TextVAlignFactor/2
}
