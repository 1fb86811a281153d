/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package links resolves dependency links between placed tasks into orthogonal
// polyline routes. Everything computed here is render-local scratch state; the
// input model is never written to.
package links

import (
	"math"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/layout"
)

// Hand-tuned same-row suppression thresholds in days. A link bridging a gap
// smaller than these reads as clutter, not information.
const (
	suppressTaskTask           = 3 // task to task, gap <= 3
	suppressTaskMilestone      = 4 // either endpoint a milestone, gap < 4
	suppressMilestoneMilestone = 6 // both endpoints milestones, gap < 6
)

// alignEpsilonPx is the horizontal slack within which endpoints on different
// rows still collapse to a single vertical stroke.
const alignEpsilonPx = 2.0

// ArrowSizePx is the side length of the arrowhead triangle.
const ArrowSizePx = 5.0

// ArrowDir names the arrowhead shape by where its base extends from the tip;
// ArrowLeft is the head of a line arriving from the left. The tip always sits
// exactly on the terminus point.
type ArrowDir int

const (
	ArrowLeft ArrowDir = iota
	ArrowRight
	ArrowUp
	ArrowDown
)

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Route is a drawable link: an origin marker at Points[0], straight segments
// through the remaining points, and an arrowhead at the last one.
type Route struct {
	Link   *domain.Link
	Points []Point
	Arrow  ArrowDir
	// Dash is the SVG stroke-dasharray for the link's line style, empty
	// for solid.
	Dash string
}

// Resolution is the render-local outcome for one link. FromName and ToName
// are cached for logging; they are recomputed every render and never stored
// back on the model.
type Resolution struct {
	Valid      bool
	Suppressed bool
	FromName   string
	ToName     string
	Reason     string
}

// Resolve routes every drawable link. Invalid links (missing endpoint, or a
// successor starting before its predecessor finishes) and suppressed links
// get a Resolution entry but no Route.
func Resolve(snap *domain.Snapshot, boxes map[int]*layout.TaskBox) ([]Route, map[int]Resolution) {
	res := make(map[int]Resolution, len(snap.Links))
	var routes []Route
	for i := range snap.Links {
		ln := &snap.Links[i]
		route, r := resolveOne(ln, snap, boxes)
		res[ln.ID] = r
		if route != nil {
			routes = append(routes, *route)
		}
	}
	return routes, res
}

func resolveOne(ln *domain.Link, snap *domain.Snapshot, boxes map[int]*layout.TaskBox) (*Route, Resolution) {
	r := Resolution{}
	fromTask := snap.TaskByID(ln.FromID)
	toTask := snap.TaskByID(ln.ToID)
	if fromTask == nil || toTask == nil {
		r.Reason = "endpoint task not found"
		return nil, r
	}
	r.FromName = fromTask.Name
	r.ToName = toTask.Name

	// Validity is a date question, not a geometry one: finish-to-start
	// dependencies where the successor starts earlier are never drawn.
	fromFinish := fromTask.EffectiveFinish()
	toStart := toTask.EffectiveStart()
	if fromFinish.IsZero() || toStart.IsZero() {
		r.Reason = "endpoint has no dates"
		return nil, r
	}
	if toStart.Before(fromFinish.Time) {
		r.Reason = "successor starts before predecessor finishes"
		return nil, r
	}
	r.Valid = true

	from, to := boxes[ln.FromID], boxes[ln.ToID]
	if from == nil || to == nil {
		r.Reason = "endpoint task not drawn"
		return nil, r
	}

	gapDays := domain.DaysBetween(fromFinish, toStart)
	if from.Row == to.Row {
		if suppressSameRow(from, to, gapDays) {
			r.Suppressed = true
			r.Reason = "same-row gap too small"
			return nil, r
		}
		origin := Point{X: from.Right(), Y: from.RowCenter}
		terminus := Point{X: to.Left(), Y: to.RowCenter}
		return &Route{
			Link:   ln,
			Points: []Point{origin, terminus},
			Arrow:  ArrowLeft,
			Dash:   dashFor(ln.Style),
		}, r
	}
	return crossRowRoute(ln, from, to, gapDays), r
}

// suppressSameRow applies the gap thresholds for links whose endpoints share
// a row. Touching bars (zero gap) are always suppressed.
func suppressSameRow(from, to *layout.TaskBox, gapDays int) bool {
	if gapDays == 0 {
		return true
	}
	switch {
	case from.Milestone && to.Milestone:
		return gapDays < suppressMilestoneMilestone
	case from.Milestone || to.Milestone:
		return gapDays < suppressTaskMilestone
	default:
		return gapDays <= suppressTaskTask
	}
}

func crossRowRoute(ln *domain.Link, from, to *layout.TaskBox, gapDays int) *Route {
	down := to.Row > from.Row
	goesRight := to.CenterX() >= from.CenterX()
	origin := originPoint(ln.Route, from, down, goesRight)
	terminus := terminusPoint(ln.Route, to, down, goesRight)

	route := &Route{Link: ln, Dash: dashFor(ln.Style)}

	// Flush endpoints collapse to one vertical stroke. A successor starting
	// the day after its predecessor finishes sits pixel-aligned with it
	// because bars extend one day past their finish date.
	if gapDays <= 1 && math.Abs(terminus.X-origin.X) < alignEpsilonPx {
		route.Points = []Point{{X: origin.X, Y: origin.Y}, {X: origin.X, Y: terminus.Y}}
		route.Arrow = verticalArrow(down)
		return route
	}

	switch ln.Route {
	case domain.RouteHV:
		route.Points = []Point{origin, {X: terminus.X, Y: origin.Y}, terminus}
	case domain.RouteVH:
		route.Points = []Point{origin, {X: origin.X, Y: terminus.Y}, terminus}
	default:
		midY := (origin.Y + terminus.Y) / 2
		route.Points = []Point{
			origin,
			{X: origin.X, Y: midY},
			{X: terminus.X, Y: midY},
			terminus,
		}
	}
	route.Arrow = approachArrow(route.Points)
	return route
}

// originPoint picks where the link leaves the predecessor. Bars always exit
// from the right edge; a milestone circle exposes four cardinal points and
// the routing mode picks the one facing the first segment's direction.
func originPoint(mode domain.RouteMode, from *layout.TaskBox, down, goesRight bool) Point {
	if !from.Milestone {
		return Point{X: from.Right(), Y: from.RowCenter}
	}
	switch mode {
	case domain.RouteHV:
		if goesRight {
			return Point{X: from.CX + from.R, Y: from.CY}
		}
		return Point{X: from.CX - from.R, Y: from.CY}
	default: // VH and auto both leave vertically
		if down {
			return Point{X: from.CX, Y: from.CY + from.R}
		}
		return Point{X: from.CX, Y: from.CY - from.R}
	}
}

// terminusPoint picks where the link enters the successor. Bars are always
// entered at the left edge; milestone circles at the cardinal point facing
// the final segment's direction.
func terminusPoint(mode domain.RouteMode, to *layout.TaskBox, down, goesRight bool) Point {
	if !to.Milestone {
		return Point{X: to.Left(), Y: to.RowCenter}
	}
	switch mode {
	case domain.RouteVH:
		if goesRight {
			return Point{X: to.CX - to.R, Y: to.CY}
		}
		return Point{X: to.CX + to.R, Y: to.CY}
	default: // HV and auto both arrive vertically
		if down {
			return Point{X: to.CX, Y: to.CY - to.R}
		}
		return Point{X: to.CX, Y: to.CY + to.R}
	}
}

// approachArrow orients the arrowhead along the final segment.
func approachArrow(pts []Point) ArrowDir {
	last, prev := pts[len(pts)-1], pts[len(pts)-2]
	dx, dy := last.X-prev.X, last.Y-prev.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return ArrowLeft
		}
		return ArrowRight
	}
	return verticalArrow(dy > 0)
}

func verticalArrow(down bool) ArrowDir {
	if down {
		return ArrowDown
	}
	return ArrowUp
}

func dashFor(style domain.LineStyle) string {
	switch style {
	case domain.LineDotted:
		return "2,3"
	case domain.LineDashed:
		return "6,4"
	default:
		return ""
	}
}
