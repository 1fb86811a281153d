/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	svg "github.com/ajstarks/svgo/float"

	"github.com/haymanjoyce/compactgantt-sub000/internal/layout"
	"github.com/haymanjoyce/compactgantt-sub000/internal/links"
)

const (
	barCornerRadius = 3.0
	shapeStroke     = "stroke-width:0.5"
	originMarkerR   = 2.0
)

func (r *Renderer) drawTasks(canvas *svg.SVG, boxes []*layout.TaskBox) {
	for _, box := range boxes {
		shape := style("fill", box.Task.Fill) + style("stroke", r.style.Colors.TaskStroke) + shapeStroke
		if box.Milestone {
			canvas.Circle(box.CX, box.CY, box.R, shape)
		} else {
			canvas.Roundrect(box.X, box.Y, box.W, box.H, barCornerRadius, barCornerRadius, shape)
		}
		if lbl := box.Label; lbl != nil && lbl.Text != "" {
			if lbl.Leader != nil {
				canvas.Line(lbl.Leader.X1, lbl.Leader.Y1, lbl.Leader.X2, lbl.Leader.Y2,
					style("stroke", r.style.Colors.Gridline)+"stroke-width:0.5")
			}
			canvas.Text(lbl.X, lbl.Y, lbl.Text, r.textStyle(r.style.Fonts.Task, lbl.Color, lbl.Anchor))
		}
	}
}

func (r *Renderer) drawLinks(canvas *svg.SVG, routes []links.Route) {
	for _, rt := range routes {
		color := rt.Link.Color
		lineStyle := style("stroke", color) + style("fill", "none") + "stroke-width:1.5"
		if rt.Dash != "" {
			lineStyle += ";stroke-dasharray:" + rt.Dash
		}
		xs := make([]float64, len(rt.Points))
		ys := make([]float64, len(rt.Points))
		for i, p := range rt.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polyline(xs, ys, lineStyle)

		origin := rt.Points[0]
		canvas.Circle(origin.X, origin.Y, originMarkerR, style("fill", color))
		terminus := rt.Points[len(rt.Points)-1]
		drawArrowhead(canvas, terminus.X, terminus.Y, rt.Arrow, color)
	}
}

// drawArrowhead places a triangle with its tip on (x, y) and its base
// extending back along the named direction: a "left" head belongs to a line
// arriving from the left.
func drawArrowhead(canvas *svg.SVG, x, y float64, dir links.ArrowDir, color string) {
	s := links.ArrowSizePx
	var xs, ys []float64
	switch dir {
	case links.ArrowLeft:
		xs, ys = []float64{x, x - s, x - s}, []float64{y, y - s/2, y + s/2}
	case links.ArrowRight:
		xs, ys = []float64{x, x + s, x + s}, []float64{y, y - s/2, y + s/2}
	case links.ArrowUp:
		xs, ys = []float64{x, x - s/2, x + s/2}, []float64{y, y + s, y + s}
	default: // down
		xs, ys = []float64{x, x - s/2, x + s/2}, []float64{y, y - s, y - s}
	}
	canvas.Polygon(xs, ys, style("fill", color)+style("stroke", "none"))
}

// drawBadges paints the id tags after everything else so they never hide
// behind links or decorations.
func (r *Renderer) drawBadges(canvas *svg.SVG, boxes []*layout.TaskBox) {
	for _, box := range boxes {
		b := box.Badge
		if b == nil {
			continue
		}
		canvas.Roundrect(b.X, b.Y, b.W, b.H, 2, 2,
			style("fill", r.style.Colors.BadgeFill)+style("stroke", r.style.Colors.TaskStroke)+shapeStroke)
		canvas.Text(b.TextX, b.TextY, b.Text,
			r.textStyle(r.style.Fonts.Badge, r.style.Colors.BadgeText, "middle"))
	}
}
