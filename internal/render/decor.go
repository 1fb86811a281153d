/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"log/slog"

	svg "github.com/ajstarks/svgo/float"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/textlayout"
)

// rotatedNameInset offsets a pipe or curtain name from its line.
const rotatedNameInset = 3.0

func (r *Renderer) drawPipes(canvas *svg.SVG, snap *domain.Snapshot, g geom, logger *slog.Logger) {
	for _, p := range snap.Pipes {
		if p.DateErr || p.Date.IsZero() {
			logger.Warn("element skipped", "element", "pipe", "id", p.ID, "reason", "unparsable date")
			continue
		}
		if p.Date.Before(g.mapper.Start.Time) || p.Date.After(g.mapper.End.Time) {
			logger.Warn("element skipped", "element", "pipe", "id", p.ID, "reason", "outside chart range")
			continue
		}
		x := g.mapper.DateToX(p.Date)
		top := g.decorTop()
		canvas.Line(x, top, x, g.grid.Bottom(), style("stroke", p.Color)+"stroke-width:1")
		if p.Name != "" {
			r.rotatedName(canvas, x, top, p.Name)
		}
	}
}

func (r *Renderer) drawCurtains(canvas *svg.SVG, snap *domain.Snapshot, g geom, logger *slog.Logger) {
	left, right := g.grid.Left, g.grid.Right()
	top := g.decorTop()
	for _, c := range snap.Curtains {
		if c.DateErr || c.Start.IsZero() || c.End.IsZero() {
			logger.Warn("element skipped", "element", "curtain", "id", c.ID, "reason", "unparsable date")
			continue
		}
		x1 := g.mapper.DateToX(c.Start)
		x2 := g.mapper.DateToX(c.End)
		if x2 <= x1 {
			continue
		}
		canvas.Rect(x1, top, x2-x1, g.grid.Bottom()-top,
			style("fill", c.Color)+fmt.Sprintf("fill-opacity:%.4g", r.style.CurtainOpacity))
		// Border lines only where the edge itself falls inside the chart.
		border := style("stroke", c.Color) + "stroke-width:1"
		if !c.Start.Before(g.mapper.Start.Time) && x1 >= left && x1 <= right {
			canvas.Line(x1, top, x1, g.grid.Bottom(), border)
		}
		if !c.End.After(g.mapper.End.Time) && x2 >= left && x2 <= right {
			canvas.Line(x2, top, x2, g.grid.Bottom(), border)
		}
		if c.Name != "" {
			r.rotatedName(canvas, x1, top, c.Name)
		}
	}
}

// rotatedName draws a marker caption running downward from the top of its
// line.
func (r *Renderer) rotatedName(canvas *svg.SVG, x, top float64, name string) {
	canvas.TranslateRotate(x+rotatedNameInset, top+rotatedNameInset, 90)
	canvas.Text(0, 0, name, r.textStyle(r.style.Fonts.Note, "black", "start"))
	canvas.Gend()
}

func (r *Renderer) drawNotes(canvas *svg.SVG, snap *domain.Snapshot) {
	pad := r.style.NotePadding
	size := r.style.Fonts.Note
	spec := textlayout.FontSpec{Family: r.style.FontFamily, SizePt: size}
	lineH := r.meas.LineHeight(spec)

	for _, n := range snap.Notes {
		canvas.Rect(n.X, n.Y, n.W, n.H,
			style("fill", "white")+style("stroke", r.style.Colors.FrameBorder)+"stroke-width:0.5")
		if n.Text == "" {
			continue
		}
		// The wrap budget is widened because measured widths run narrow
		// against the final renderer.
		budget := (n.W - 2*pad) * r.style.NoteWidthCorrection
		lines := r.meas.WrapToLines(n.Text, spec, budget)
		blockH := float64(len(lines)) * lineH

		var top float64
		switch n.VAlign {
		case domain.AlignMiddle:
			top = n.Y + (n.H-blockH)/2
		case domain.AlignBottom:
			top = n.Y + n.H - pad - blockH
		default:
			top = n.Y + pad
		}

		var x float64
		var anchor string
		switch n.HAlign {
		case domain.AlignCenter:
			x, anchor = n.X+n.W/2, "middle"
		case domain.AlignRight:
			x, anchor = n.X+n.W-pad, "end"
		default:
			x, anchor = n.X+pad, "start"
		}
		textStyle := r.textStyle(size, "black", anchor)
		for i, line := range lines {
			if line == "" {
				continue
			}
			y := r.baseline(top+float64(i)*lineH+lineH/2, size)
			canvas.Text(x, y, line, textStyle)
		}
	}
}
