/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import "fmt"

// Input structs mirror the manifest's string-typed fields. BuildSnapshot is
// the single defaulting/migration step: after it runs, the Snapshot is fully
// typed and the renderer performs no field lookups with fallbacks.

type FrameInput struct {
	OuterWidth   float64  `json:"outer_width"`
	OuterHeight  float64  `json:"outer_height"`
	HeaderHeight float64  `json:"header_height"`
	FooterHeight float64  `json:"footer_height"`
	Margins      *Margins `json:"margins"`
	NumRows      int      `json:"num_rows"`
	ChartStart   string   `json:"chart_start_date"`
	ChartEnd     string   `json:"chart_end_date"`
	HeaderText   string   `json:"header_text"`
	FooterText   string   `json:"footer_text"`

	HorizontalGridlines bool `json:"horizontal_gridlines"`
	VerticalYears       bool `json:"vertical_gridline_years"`
	VerticalMonths      bool `json:"vertical_gridline_months"`
	VerticalWeeks       bool `json:"vertical_gridline_weeks"`
	VerticalDays        bool `json:"vertical_gridline_days"`
	ShowYears           bool `json:"show_years"`
	ShowMonths          bool `json:"show_months"`
	ShowWeeks           bool `json:"show_weeks"`
	ShowDays            bool `json:"show_days"`
	ShowRowNumbers      bool `json:"show_row_numbers"`
}

type TaskInput struct {
	ID         int     `json:"task_id"`
	Name       string  `json:"task_name"`
	Start      string  `json:"start_date"`
	Finish     string  `json:"finish_date"`
	Row        int     `json:"row_number"`
	Milestone  bool    `json:"is_milestone"`
	Placement  string  `json:"label_placement"`
	Content    string  `json:"label_content"`
	Alignment  string  `json:"label_alignment"`
	Offset     float64 `json:"label_horizontal_offset"`
	Fill       string  `json:"fill_color"`
	DateFormat string  `json:"date_format"`
}

type LinkInput struct {
	ID     int    `json:"link_id"`
	FromID int    `json:"from_task_id"`
	ToID   int    `json:"to_task_id"`
	Color  string `json:"line_color"`
	Style  string `json:"line_style"`
	Route  string `json:"routing_mode"`
}

type SwimlaneInput struct {
	ID       int    `json:"swimlane_id"`
	RowCount int    `json:"row_count"`
	Title    string `json:"name"`
	Position string `json:"label_position"`
}

type PipeInput struct {
	ID    int    `json:"pipe_id"`
	Date  string `json:"date"`
	Color string `json:"color"`
	Name  string `json:"name"`
}

type CurtainInput struct {
	ID    int    `json:"curtain_id"`
	Start string `json:"start_date"`
	End   string `json:"end_date"`
	Color string `json:"color"`
	Name  string `json:"name"`
}

type NoteInput struct {
	ID     int     `json:"note_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Text   string  `json:"text"`
	HAlign string  `json:"text_align"`
	VAlign string  `json:"vertical_align"`
}

type SnapshotInput struct {
	Frame     FrameInput      `json:"frame_config"`
	Tasks     []TaskInput     `json:"tasks"`
	Links     []LinkInput     `json:"links"`
	Swimlanes []SwimlaneInput `json:"swimlanes"`
	Pipes     []PipeInput     `json:"pipes"`
	Curtains  []CurtainInput  `json:"curtains"`
	Notes     []NoteInput     `json:"notes"`
}

// Problem records a normalization issue tied to one element. Problems are
// advisory: the element stays in the snapshot, flagged so the renderer can
// skip it with a warning.
type Problem struct {
	Kind   string // "task", "link", "pipe", "curtain"
	ID     int
	Detail string
}

func (p Problem) String() string { return fmt.Sprintf("%s %d: %s", p.Kind, p.ID, p.Detail) }

// Frame geometry defaults.
const (
	defaultOuterWidth   = 800
	defaultOuterHeight  = 600
	defaultHeaderHeight = 20
	defaultFooterHeight = 20
	defaultMargin       = 10
)

// BuildSnapshot converts raw manifest input into a normalized Snapshot.
// Dates are parsed exactly once here; elements whose date text is malformed
// are flagged rather than dropped, so the render pass can log the skip.
func BuildSnapshot(in SnapshotInput) (*Snapshot, []Problem) {
	var problems []Problem

	frame := FrameConfig{
		OuterWidth:   in.Frame.OuterWidth,
		OuterHeight:  in.Frame.OuterHeight,
		HeaderHeight: in.Frame.HeaderHeight,
		FooterHeight: in.Frame.FooterHeight,
		Margins:      Margins{Top: defaultMargin, Right: defaultMargin, Bottom: defaultMargin, Left: defaultMargin},
		NumRows:      in.Frame.NumRows,
		HeaderText:   in.Frame.HeaderText,
		FooterText:   in.Frame.FooterText,

		HorizontalGridlines: in.Frame.HorizontalGridlines,
		VerticalGridlines: ScaleFlags{
			Years:  in.Frame.VerticalYears,
			Months: in.Frame.VerticalMonths,
			Weeks:  in.Frame.VerticalWeeks,
			Days:   in.Frame.VerticalDays,
		},
		ShowScales: ScaleFlags{
			Years:  in.Frame.ShowYears,
			Months: in.Frame.ShowMonths,
			Weeks:  in.Frame.ShowWeeks,
			Days:   in.Frame.ShowDays,
		},
		ShowRowNumbers: in.Frame.ShowRowNumbers,
	}
	if frame.OuterWidth <= 0 {
		frame.OuterWidth = defaultOuterWidth
	}
	if frame.OuterHeight <= 0 {
		frame.OuterHeight = defaultOuterHeight
	}
	if frame.HeaderHeight <= 0 {
		frame.HeaderHeight = defaultHeaderHeight
	}
	if frame.FooterHeight <= 0 {
		frame.FooterHeight = defaultFooterHeight
	}
	if in.Frame.Margins != nil {
		frame.Margins = *in.Frame.Margins
	}
	if frame.NumRows < 1 {
		frame.NumRows = 1
	}
	// Chart range dates are left zero on parse failure; whether that is
	// fatal is the compositor's call, not ours.
	frame.ChartStart, _ = ParseDate(in.Frame.ChartStart)
	frame.ChartEnd, _ = ParseDate(in.Frame.ChartEnd)

	snap := &Snapshot{Frame: frame}

	for _, t := range in.Tasks {
		task := Task{
			ID:             t.ID,
			Name:           t.Name,
			Row:            t.Row,
			Milestone:      t.Milestone,
			LabelPlacement: ParseLabelPlacement(t.Placement),
			LabelContent:   ParseLabelContent(t.Content),
			LabelAlignment: ParseHAlign(t.Alignment),
			LabelOffset:    t.Offset,
			Fill:           t.Fill,
			DateFormat:     t.DateFormat,
		}
		if task.Fill == "" {
			task.Fill = "blue"
		}
		var err error
		if task.Start, err = ParseDate(t.Start); err != nil {
			task.DateErr = true
			problems = append(problems, Problem{Kind: "task", ID: t.ID, Detail: err.Error()})
		}
		if task.Finish, err = ParseDate(t.Finish); err != nil {
			task.DateErr = true
			problems = append(problems, Problem{Kind: "task", ID: t.ID, Detail: err.Error()})
		}
		snap.Tasks = append(snap.Tasks, task)
	}

	for _, l := range in.Links {
		link := Link{
			ID:     l.ID,
			FromID: l.FromID,
			ToID:   l.ToID,
			Color:  l.Color,
			Style:  ParseLineStyle(l.Style),
			Route:  ParseRouteMode(l.Route),
		}
		if link.Color == "" {
			link.Color = "black"
		}
		snap.Links = append(snap.Links, link)
	}

	for _, s := range in.Swimlanes {
		lane := Swimlane{ID: s.ID, RowCount: s.RowCount, Title: s.Title, Position: ParseLanePosition(s.Position)}
		if lane.RowCount < 1 {
			lane.RowCount = 1
		}
		snap.Swimlanes = append(snap.Swimlanes, lane)
	}

	for _, p := range in.Pipes {
		pipe := Pipe{ID: p.ID, Color: p.Color, Name: p.Name}
		if pipe.Color == "" {
			pipe.Color = "red"
		}
		var err error
		if pipe.Date, err = ParseDate(p.Date); err != nil {
			pipe.DateErr = true
			problems = append(problems, Problem{Kind: "pipe", ID: p.ID, Detail: err.Error()})
		}
		snap.Pipes = append(snap.Pipes, pipe)
	}

	for _, c := range in.Curtains {
		curtain := Curtain{ID: c.ID, Color: c.Color, Name: c.Name}
		if curtain.Color == "" {
			curtain.Color = "red"
		}
		var err error
		if curtain.Start, err = ParseDate(c.Start); err != nil {
			curtain.DateErr = true
			problems = append(problems, Problem{Kind: "curtain", ID: c.ID, Detail: err.Error()})
		}
		if curtain.End, err = ParseDate(c.End); err != nil {
			curtain.DateErr = true
			problems = append(problems, Problem{Kind: "curtain", ID: c.ID, Detail: err.Error()})
		}
		snap.Curtains = append(snap.Curtains, curtain)
	}

	for _, n := range in.Notes {
		note := Note{
			ID: n.ID, X: n.X, Y: n.Y, W: n.Width, H: n.Height,
			Text:   n.Text,
			HAlign: ParseHAlign(n.HAlign),
			VAlign: ParseVAlign(n.VAlign),
		}
		if note.W <= 0 {
			note.W = 100
		}
		if note.H <= 0 {
			note.H = 50
		}
		snap.Notes = append(snap.Notes, note)
	}

	return snap, problems
}
