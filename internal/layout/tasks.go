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
	"strconv"
	"strings"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/textlayout"
	"github.com/haymanjoyce/compactgantt-sub000/internal/timescale"
)

// barHeightShare is the fraction of the row height a task bar occupies.
const barHeightShare = 0.8

// lightFills are fill colors dark text reads well against. Anything else
// gets white inside labels.
var lightFills = map[string]bool{
	"yellow":  true,
	"white":   true,
	"cyan":    true,
	"orange":  true,
	"magenta": true,
}

// Leader is a straight connector between a bar end and an offset label.
type Leader struct {
	X1, Y1, X2, Y2 float64
}

// TaskLabel is the positioned caption of one task or milestone.
type TaskLabel struct {
	Text   string
	X, Y   float64
	Anchor string // SVG text-anchor
	Color  string
	Leader *Leader
}

// Badge is the small id tag drawn on the overlay layer.
type Badge struct {
	Text       string
	X, Y, W, H float64
	TextX      float64
	TextY      float64
}

// TaskBox is the resolved geometry of one task. Bars use X/Y/W/H; milestones
// use CX/CY/R. Both expose a bar-equivalent extent so links and badges can
// attach without caring about the shape.
type TaskBox struct {
	Task      *domain.Task
	Milestone bool

	X, Y, W, H float64
	CX, CY, R  float64

	Row       int
	RowCenter float64
	Label     *TaskLabel
	Badge     *Badge
}

// Left returns the leftmost x of the drawn shape.
func (b TaskBox) Left() float64 {
	if b.Milestone {
		return b.CX - b.R
	}
	return b.X
}

// Right returns the rightmost x of the drawn shape.
func (b TaskBox) Right() float64 {
	if b.Milestone {
		return b.CX + b.R
	}
	return b.X + b.W
}

// CenterX returns the horizontal midpoint of the drawn shape.
func (b TaskBox) CenterX() float64 { return (b.Left() + b.Right()) / 2 }

func (b TaskBox) elementHeight() float64 {
	if b.Milestone {
		return 2 * b.R
	}
	return b.H
}

// PlaceTasks computes geometry for every drawable task and reports the ones
// that had to be skipped. The returned map is keyed by task id for the link
// router; the slice preserves input order for drawing.
func PlaceTasks(snap *domain.Snapshot, m timescale.Mapper, g Grid, style config.RenderStyle, meas *textlayout.Measurer) (map[int]*TaskBox, []*TaskBox, []Skip) {
	byID := make(map[int]*TaskBox)
	var order []*TaskBox
	var skips []Skip
	for i := range snap.Tasks {
		t := &snap.Tasks[i]
		box, reason := placeTask(t, m, g, style, meas)
		if reason != "" {
			skips = append(skips, Skip{Element: "task", ID: t.ID, Reason: reason})
			continue
		}
		byID[t.ID] = box
		order = append(order, box)
	}
	return byID, order, skips
}

func placeTask(t *domain.Task, m timescale.Mapper, g Grid, style config.RenderStyle, meas *textlayout.Measurer) (*TaskBox, string) {
	if t.DateErr {
		return nil, "unparsable date"
	}
	start := t.EffectiveStart()
	finish := t.EffectiveFinish()
	if start.IsZero() && finish.IsZero() {
		return nil, "no dates"
	}
	if finish.Before(start.Time) {
		return nil, fmt.Sprintf("finish %s before start %s", finish.ISO(), start.ISO())
	}
	if finish.Before(m.Start.Time) || start.After(m.End.Time) {
		return nil, "outside chart range"
	}
	if t.Row < 1 || t.Row > g.NumRows {
		return nil, fmt.Sprintf("row %d outside 1-%d", t.Row, g.NumRows)
	}

	xStart := m.DateToX(start)
	xEnd := m.DateToX(finish.AddDays(1))
	barW := xEnd - xStart
	if barW < m.DayWidth() {
		barW = m.DayWidth()
	}
	barH := g.RowHeight * barHeightShare
	box := &TaskBox{
		Task:      t,
		Milestone: t.IsMilestone(),
		Row:       t.Row,
		RowCenter: g.RowCenter(t.Row),
	}
	if box.Milestone {
		cx := xEnd
		if t.Finish.IsZero() {
			cx = xStart
		}
		box.CX, box.CY, box.R = cx, box.RowCenter, barH/2
	} else {
		box.X = xStart
		box.Y = g.RowTop(t.Row) + (g.RowHeight-barH)/2
		box.W = barW
		box.H = barH
	}
	box.Label = taskLabel(box, style, meas)
	if style.ShowTaskIDs {
		box.Badge = taskBadge(box, style, meas)
	}
	return box, ""
}

// labelText builds the caption per the task's content mode, using the task's
// display format when set and the chart default otherwise.
func labelText(t *domain.Task, chartFormat string) string {
	format := t.DateFormat
	if format == "" {
		format = chartFormat
	}
	df := domain.LookupDateFormat(format)
	start := t.EffectiveStart()
	finish := t.EffectiveFinish()
	var dates string
	if start.Equal(finish.Time) {
		dates = df.Display(start)
	} else {
		dates = df.Display(start) + " - " + df.Display(finish)
	}
	switch t.LabelContent {
	case domain.ContentNone:
		return ""
	case domain.ContentDateOnly:
		return dates
	case domain.ContentNameAndDate:
		return fmt.Sprintf("%s (%s)", t.Name, dates)
	default:
		return t.Name
	}
}

func taskLabel(box *TaskBox, style config.RenderStyle, meas *textlayout.Measurer) *TaskLabel {
	t := box.Task
	text := labelText(t, style.DateFormat)
	if text == "" {
		return nil
	}
	spec := textlayout.FontSpec{Family: style.FontFamily, SizePt: style.Fonts.Task}
	baseline := box.RowCenter + style.Fonts.Task*style.TextVAlignFactor/2

	if t.LabelPlacement == domain.LabelInside && !box.Milestone {
		lbl := &TaskLabel{Y: baseline, Color: insideTextColor(t.Fill)}
		pad := style.NotePadding
		lbl.Text = meas.TruncateToWidth(text, spec, box.W-2*pad)
		switch t.LabelAlignment {
		case domain.AlignLeft:
			lbl.X = box.X + pad
			lbl.Anchor = "start"
		case domain.AlignRight:
			lbl.X = box.X + box.W - pad
			lbl.Anchor = "end"
		default:
			lbl.X = box.X + box.W/2
			lbl.Anchor = "middle"
		}
		return lbl
	}

	// Outside labels hang off the right edge of the bar or circle.
	x := box.Right() + style.OutsideLabelOffset + t.LabelOffset
	lbl := &TaskLabel{Text: text, X: x, Y: baseline, Anchor: "start", Color: "black"}
	if t.LabelOffset > 0 {
		lbl.Leader = &Leader{X1: box.Right(), Y1: box.RowCenter, X2: x, Y2: box.RowCenter}
	}
	return lbl
}

// insideTextColor picks black on light fills and white on everything else.
func insideTextColor(fill string) string {
	if lightFills[strings.ToLower(fill)] {
		return "black"
	}
	return "white"
}

const (
	badgePad = 3.0
	badgeGap = 4.0
)

func taskBadge(box *TaskBox, style config.RenderStyle, meas *textlayout.Measurer) *Badge {
	text := strconv.Itoa(box.Task.ID)
	spec := textlayout.FontSpec{Family: style.FontFamily, SizePt: style.Fonts.Badge}
	w := meas.Width(text, spec) + 2*badgePad
	h := style.Fonts.Badge + 2*badgePad
	top := box.RowCenter - box.elementHeight()/2
	y := top + (box.elementHeight()-h)*style.BadgeVAlignFactor
	b := &Badge{
		Text: text,
		X:    box.Left() - badgeGap - w,
		Y:    y,
		W:    w,
		H:    h,
	}
	b.TextX = b.X + w/2
	b.TextY = b.Y + h/2 + style.Fonts.Badge*style.TextVAlignFactor/2
	return b
}
