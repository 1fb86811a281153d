/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/textlayout"
	"github.com/haymanjoyce/compactgantt-sub000/internal/timescale"
)

func testGrid() Grid { return NewGrid(0, 100, 600, 200, 5) }

func testMapper() timescale.Mapper {
	return timescale.NewMapper(domain.MustDate("2025-01-01"), domain.MustDate("2025-03-01"), 0, 600)
}

func placeOne(t *testing.T, task domain.Task) (*TaskBox, []Skip) {
	t.Helper()
	snap := &domain.Snapshot{Tasks: []domain.Task{task}}
	byID, order, skips := PlaceTasks(snap, testMapper(), testGrid(), config.Defaults(), textlayout.NewMeasurer())
	if len(order) > 0 {
		return byID[task.ID], skips
	}
	return nil, skips
}

func TestRowGeometry(t *testing.T) {
	g := testGrid()
	if g.RowHeight != 40 {
		t.Fatalf("row height %v, want 40", g.RowHeight)
	}
	if g.RowTop(1) != 100 || g.RowTop(3) != 180 {
		t.Fatalf("row tops wrong: %v, %v", g.RowTop(1), g.RowTop(3))
	}
	if g.RowCenter(2) != 160 {
		t.Fatalf("row 2 center %v, want 160", g.RowCenter(2))
	}
}

func TestSwimlaneOverflowSkippedCursorAdvances(t *testing.T) {
	lanes := []domain.Swimlane{
		{ID: 1, RowCount: 3, Title: "Build"},
		{ID: 2, RowCount: 3, Title: "Overflow", Position: domain.LaneTopLeft},
		{ID: 3, RowCount: 1, Title: "Late"},
	}
	bands, skips := PlaceSwimlanes(testGrid(), lanes, config.Defaults())
	if len(skips) != 2 {
		t.Fatalf("want 2 skipped lanes, got %+v", skips)
	}
	// Lane 2 spans rows 4-6 in a 5-row grid, so it is dropped, but lane 3
	// still starts at row 7 and is dropped for the same reason.
	if skips[0].ID != 2 || skips[1].ID != 3 {
		t.Fatalf("wrong lanes skipped: %+v", skips)
	}
	if !strings.Contains(skips[1].Reason, "7-7") {
		t.Fatalf("cursor did not advance past the skipped lane: %q", skips[1].Reason)
	}
	if len(bands) != 1 || bands[0].FirstRow != 1 || bands[0].LastRow != 3 {
		t.Fatalf("unexpected surviving bands: %+v", bands)
	}
	if !bands[0].Divider {
		t.Fatalf("lane ending above the frame bottom needs a divider")
	}
}

func TestSwimlaneLabelFactorSweepsAnchorRow(t *testing.T) {
	g := testGrid()
	style := config.Defaults()
	fontSize := style.Fonts.Swimlane
	lanes := []domain.Swimlane{{ID: 1, RowCount: 2, Title: "Build", Position: domain.LaneTopLeft}}

	cases := []struct {
		factor float64
		wantY  float64
	}{
		{0, g.RowTop(1) + fontSize},                      // text top flush with row top
		{0.5, g.RowTop(1) + g.RowHeight/2 + fontSize/2},  // text box centered in the row
		{1, g.RowTop(1) + g.RowHeight},                   // baseline on the row bottom
	}
	for _, tc := range cases {
		style.SwimlaneTopVAlignFactor = tc.factor
		bands, _ := PlaceSwimlanes(g, lanes, style)
		if len(bands) != 1 || bands[0].Label == nil {
			t.Fatalf("factor %v: no label placed", tc.factor)
		}
		if got := bands[0].Label.Y; got != tc.wantY {
			t.Errorf("factor %v: label Y = %v, want %v", tc.factor, got, tc.wantY)
		}
	}
}

func TestSwimlaneBottomLabelAnchorsLastRow(t *testing.T) {
	g := testGrid()
	style := config.Defaults()
	style.SwimlaneBottomVAlignFactor = 1
	lanes := []domain.Swimlane{{ID: 1, RowCount: 3, Title: "Test", Position: domain.LaneBottomRight}}
	bands, _ := PlaceSwimlanes(g, lanes, style)
	if len(bands) != 1 || bands[0].Label == nil {
		t.Fatal("no label placed")
	}
	if want := g.RowTop(3) + g.RowHeight; bands[0].Label.Y != want {
		t.Errorf("label Y = %v, want last row bottom %v", bands[0].Label.Y, want)
	}
	if bands[0].Label.Anchor != "end" {
		t.Errorf("right-edge label anchor = %q, want end", bands[0].Label.Anchor)
	}
}

func TestSwimlaneAtFrameBottomHasNoDivider(t *testing.T) {
	bands, _ := PlaceSwimlanes(testGrid(), []domain.Swimlane{{ID: 1, RowCount: 5}}, config.Defaults())
	if len(bands) != 1 || bands[0].Divider {
		t.Fatalf("lane touching the frame bottom must not draw a divider: %+v", bands)
	}
}

func TestTaskBarGeometry(t *testing.T) {
	box, skips := placeOne(t, domain.Task{
		ID: 1, Name: "Design", Row: 2, Fill: "blue",
		Start:  domain.MustDate("2025-01-01"),
		Finish: domain.MustDate("2025-01-10"),
	})
	if box == nil {
		t.Fatalf("task skipped: %+v", skips)
	}
	m := testMapper()
	if box.X != 0 {
		t.Fatalf("bar starts at %v, want 0", box.X)
	}
	wantW := m.DateToX(domain.MustDate("2025-01-11"))
	if math.Abs(box.W-wantW) > 1e-9 {
		t.Fatalf("bar width %v, want %v", box.W, wantW)
	}
	if box.H != 32 { // 0.8 of the 40px row
		t.Fatalf("bar height %v, want 32", box.H)
	}
	if box.Y != 144 { // centered in row 2 (140..180)
		t.Fatalf("bar top %v, want 144", box.Y)
	}
}

func TestZeroDurationTaskBecomesMilestone(t *testing.T) {
	box, _ := placeOne(t, domain.Task{
		ID: 1, Name: "Go live", Row: 1, Fill: "red",
		Start:  domain.MustDate("2025-02-01"),
		Finish: domain.MustDate("2025-02-01"),
	})
	if box == nil || !box.Milestone {
		t.Fatalf("equal dates must render as a milestone, got %+v", box)
	}
	if box.R != 16 {
		t.Fatalf("milestone radius %v, want half the bar height 16", box.R)
	}
}

func TestTaskSkipReasons(t *testing.T) {
	cases := []struct {
		name string
		task domain.Task
		want string
	}{
		{"no dates", domain.Task{ID: 1, Row: 1}, "no dates"},
		{"bad date", domain.Task{ID: 2, Row: 1, DateErr: true}, "unparsable"},
		{"reversed", domain.Task{ID: 3, Row: 1,
			Start: domain.MustDate("2025-02-10"), Finish: domain.MustDate("2025-02-01")}, "before start"},
		{"out of range", domain.Task{ID: 4, Row: 1,
			Start: domain.MustDate("2026-01-01"), Finish: domain.MustDate("2026-02-01")}, "outside chart range"},
		{"bad row", domain.Task{ID: 5, Row: 9,
			Start: domain.MustDate("2025-01-05"), Finish: domain.MustDate("2025-01-08")}, "row 9"},
	}
	for _, c := range cases {
		box, skips := placeOne(t, c.task)
		if box != nil {
			t.Errorf("%s: task should be skipped", c.name)
			continue
		}
		if len(skips) != 1 || !strings.Contains(skips[0].Reason, c.want) {
			t.Errorf("%s: skip reason %+v, want %q", c.name, skips, c.want)
		}
	}
}

func TestInsideLabelContrast(t *testing.T) {
	for fill, want := range map[string]string{"yellow": "black", "Blue": "white", "CYAN": "black"} {
		if got := insideTextColor(fill); got != want {
			t.Errorf("insideTextColor(%q) = %q, want %q", fill, got, want)
		}
	}
}

func TestOutsideLabelLeaderOnlyWithUserOffset(t *testing.T) {
	base := domain.Task{
		ID: 1, Name: "Task", Row: 1, Fill: "blue",
		Start:  domain.MustDate("2025-01-05"),
		Finish: domain.MustDate("2025-01-10"),
	}
	box, _ := placeOne(t, base)
	if box.Label == nil || box.Label.Leader != nil {
		t.Fatalf("no leader expected without a user offset: %+v", box.Label)
	}
	base.LabelOffset = 30
	box, _ = placeOne(t, base)
	if box.Label.Leader == nil {
		t.Fatalf("user offset must add a leader line")
	}
	style := config.Defaults()
	wantX := box.Right() + style.OutsideLabelOffset + 30
	if math.Abs(box.Label.X-wantX) > 1e-9 {
		t.Fatalf("label x %v, want %v", box.Label.X, wantX)
	}
}

func TestLabelTextModes(t *testing.T) {
	task := domain.Task{
		Name:   "Design",
		Start:  domain.MustDate("2025-01-05"),
		Finish: domain.MustDate("2025-01-10"),
	}
	task.LabelContent = domain.ContentDateOnly
	if got := labelText(&task, "dd/MM/yyyy"); got != "05/01/2025 - 10/01/2025" {
		t.Fatalf("date only label = %q", got)
	}
	task.LabelContent = domain.ContentNameAndDate
	if got := labelText(&task, "dd/MM/yyyy"); got != "Design (05/01/2025 - 10/01/2025)" {
		t.Fatalf("name and date label = %q", got)
	}
	task.Finish = task.Start
	task.LabelContent = domain.ContentDateOnly
	if got := labelText(&task, "dd/MM/yyyy"); got != "05/01/2025" {
		t.Fatalf("equal dates must collapse to one date, got %q", got)
	}
	task.LabelContent = domain.ContentNone
	if got := labelText(&task, "dd/MM/yyyy"); got != "" {
		t.Fatalf("none mode produced %q", got)
	}
}

func TestBadgePlacedLeftOfBar(t *testing.T) {
	style := config.Defaults()
	style.ShowTaskIDs = true
	snap := &domain.Snapshot{Tasks: []domain.Task{{
		ID: 7, Name: "Task", Row: 1, Fill: "blue",
		Start:  domain.MustDate("2025-01-20"),
		Finish: domain.MustDate("2025-01-25"),
	}}}
	byID, _, _ := PlaceTasks(snap, testMapper(), testGrid(), style, textlayout.NewMeasurer())
	box := byID[7]
	if box.Badge == nil {
		t.Fatalf("badge toggle on but no badge laid out")
	}
	if box.Badge.X+box.Badge.W >= box.Left() {
		t.Fatalf("badge [%v,%v] overlaps bar start %v", box.Badge.X, box.Badge.X+box.Badge.W, box.Left())
	}
	if box.Badge.Text != "7" {
		t.Fatalf("badge text %q, want task id", box.Badge.Text)
	}
}
