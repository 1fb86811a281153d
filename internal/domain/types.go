/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package domain defines the chart data model. All entities are read-only
// inputs for a render pass; normalization and defaulting happen once at
// snapshot-build time, never during rendering.
package domain

// Margins are outer frame margins in pixels, clockwise from the top.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// ScaleFlags toggles the four calendar granularities independently.
type ScaleFlags struct {
	Years  bool `json:"years"`
	Months bool `json:"months"`
	Weeks  bool `json:"weeks"`
	Days   bool `json:"days"`
}

// Any reports whether at least one granularity is enabled.
func (f ScaleFlags) Any() bool { return f.Years || f.Months || f.Weeks || f.Days }

// FrameConfig is the global chart geometry and display toggles.
type FrameConfig struct {
	OuterWidth   float64
	OuterHeight  float64
	HeaderHeight float64
	FooterHeight float64
	Margins      Margins
	NumRows      int

	ChartStart Date
	ChartEnd   Date

	HeaderText string
	FooterText string

	HorizontalGridlines bool
	VerticalGridlines   ScaleFlags
	ShowScales          ScaleFlags
	ShowRowNumbers      bool
}

// Task is a bar or milestone occupying one row.
//
// A task with exactly one of Start/Finish set is still rendered; the missing
// date defaults to the present one. DateErr marks a task whose supplied date
// text failed to parse; such tasks are skipped at render time.
type Task struct {
	ID      int
	Name    string
	Start   Date
	Finish  Date
	Row     int // 1-based
	DateErr bool

	Milestone      bool
	LabelPlacement LabelPlacement
	LabelContent   LabelContent
	LabelAlignment HAlign
	LabelOffset    float64 // extra horizontal offset for outside labels
	Fill           string
	DateFormat     string // display format override; "" = chart default
}

// IsMilestone reports the effective milestone state: the explicit flag, or a
// zero-duration task (start equals finish).
func (t Task) IsMilestone() bool {
	if t.Milestone {
		return true
	}
	return !t.Start.IsZero() && !t.Finish.IsZero() && t.Start.Equal(t.Finish.Time)
}

// EffectiveStart returns the start date, falling back to the finish date.
func (t Task) EffectiveStart() Date {
	if t.Start.IsZero() {
		return t.Finish
	}
	return t.Start
}

// EffectiveFinish returns the finish date, falling back to the start date.
func (t Task) EffectiveFinish() Date {
	if t.Finish.IsZero() {
		return t.Start
	}
	return t.Finish
}

// Link is a finish-to-start dependency between two tasks. Validity is not a
// field: it is computed per render into a separate resolution structure.
type Link struct {
	ID     int
	FromID int
	ToID   int
	Color  string
	Style  LineStyle
	Route  RouteMode
}

// Swimlane groups contiguous rows. Its band is determined by list order: each
// lane starts where the previous one ended, beginning at row 1.
type Swimlane struct {
	ID       int
	RowCount int
	Title    string
	Position LanePosition
}

// Pipe is a full-height vertical date marker.
type Pipe struct {
	ID      int
	Date    Date
	Color   string
	Name    string
	DateErr bool
}

// Curtain is a full-height translucent band between two dates.
type Curtain struct {
	ID      int
	Start   Date
	End     Date
	Color   string
	Name    string
	DateErr bool
}

// Note is an absolutely positioned annotation box, independent of the
// timeline.
type Note struct {
	ID     int
	X, Y   float64
	W, H   float64
	Text   string
	HAlign HAlign
	VAlign VAlign
}

// Snapshot is the immutable project model consumed by one render pass.
type Snapshot struct {
	Frame     FrameConfig
	Tasks     []Task
	Links     []Link
	Swimlanes []Swimlane
	Pipes     []Pipe
	Curtains  []Curtain
	Notes     []Note
}

// TaskByID returns the task with the given id, or nil.
func (s *Snapshot) TaskByID(id int) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}
