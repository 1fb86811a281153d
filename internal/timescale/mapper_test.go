/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package timescale

import (
	"math"
	"testing"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
)

func TestDateToXAnchorsAndClamps(t *testing.T) {
	start := domain.MustDate("2025-01-01")
	end := domain.MustDate("2025-01-11")
	m := NewMapper(start, end, 100, 500)

	if got := m.DateToX(start); got != 100 {
		t.Fatalf("chart start maps to %v, want 100", got)
	}
	if got := m.DateToX(domain.MustDate("2024-12-15")); got != 100 {
		t.Fatalf("date before range maps to %v, want left edge 100", got)
	}
	if got := m.DateToX(domain.MustDate("2025-03-01")); got != 600 {
		t.Fatalf("date past range maps to %v, want right edge 600", got)
	}
	if got := m.DateToX(domain.MustDate("2025-01-06")); math.Abs(got-350) > 1e-9 {
		t.Fatalf("midpoint maps to %v, want 350", got)
	}
}

func TestDateToXMonotonic(t *testing.T) {
	start := domain.MustDate("2025-03-03")
	end := domain.MustDate("2025-04-30")
	m := NewMapper(start, end, 0, 777)

	prev := math.Inf(-1)
	for d := domain.MustDate("2025-02-20"); !d.After(domain.MustDate("2025-05-10").Time); d = d.AddDays(1) {
		x := m.DateToX(d)
		if x < prev {
			t.Fatalf("DateToX decreased at %s: %v < %v", d.ISO(), x, prev)
		}
		prev = x
	}
}

func TestNextPeriod(t *testing.T) {
	cases := []struct {
		g    Granularity
		in   string
		want string
	}{
		{Days, "2025-01-31", "2025-02-01"},
		{Weeks, "2025-01-01", "2025-01-06"}, // Wednesday to next Monday
		{Weeks, "2025-01-06", "2025-01-13"}, // Monday advances a full week
		{Weeks, "2025-01-05", "2025-01-06"}, // Sunday to the day after
		{Months, "2025-01-15", "2025-02-01"},
		{Months, "2025-12-31", "2026-01-01"},
		{Years, "2025-06-15", "2026-01-01"},
	}
	for _, c := range cases {
		got := NextPeriod(domain.MustDate(c.in), c.g)
		if got.ISO() != c.want {
			t.Errorf("NextPeriod(%s, %s) = %s, want %s", c.in, c.g, got.ISO(), c.want)
		}
	}
}

func TestPeriodsCoverRange(t *testing.T) {
	start := domain.MustDate("2025-01-15")
	end := domain.MustDate("2025-03-10")
	m := NewMapper(start, end, 0, 100)

	ps := m.Periods(Months)
	if len(ps) != 3 {
		t.Fatalf("got %d month periods, want 3", len(ps))
	}
	if !ps[0].Start.Equal(start.Time) {
		t.Fatalf("first period starts %s, want chart start", ps[0].Start.ISO())
	}
	if ps[1].Start.ISO() != "2025-02-01" || ps[2].Start.ISO() != "2025-03-01" {
		t.Fatalf("unexpected period boundaries: %s, %s", ps[1].Start.ISO(), ps[2].Start.ISO())
	}
	if ps[2].Next.After(end.Time) != true {
		t.Fatalf("last period should extend past the chart end")
	}
}

func TestAllocateBands(t *testing.T) {
	specs := []BandSpec{
		{Gran: Months, Weight: 2.0},
		{Gran: Weeks, Weight: 1.5},
	}
	bands, rowTop, rowHeight := AllocateBands(50, 450, specs)

	if len(bands) != 2 {
		t.Fatalf("got %d bands, want 2", len(bands))
	}
	if bands[0].Y != 50 {
		t.Fatalf("first band starts at %v, want 50", bands[0].Y)
	}
	wantMonth := 450 * (2.0 / 4.5)
	if math.Abs(bands[0].H-wantMonth) > 1e-9 {
		t.Fatalf("month band height %v, want %v", bands[0].H, wantMonth)
	}
	total := bands[0].H + bands[1].H + rowHeight
	if math.Abs(total-450) > 1e-9 {
		t.Fatalf("bands plus row area sum to %v, want 450", total)
	}
	if math.Abs(rowTop-(50+bands[0].H+bands[1].H)) > 1e-9 {
		t.Fatalf("row area top %v does not sit under the bands", rowTop)
	}
}

func TestAllocateBandsNoScales(t *testing.T) {
	bands, rowTop, rowHeight := AllocateBands(10, 300, nil)
	if len(bands) != 0 || rowTop != 10 || rowHeight != 300 {
		t.Fatalf("with no bands the whole span is rows; got %d bands, top %v, height %v", len(bands), rowTop, rowHeight)
	}
}

func TestPeriodLabelForms(t *testing.T) {
	d := domain.MustDate("2025-01-08") // Wednesday, ISO week 2
	cases := []struct {
		g     Granularity
		width float64
		want  string
	}{
		{Years, 60, "2025"},
		{Years, 30, "25"},
		{Years, 10, ""},
		{Months, 60, "Jan"},
		{Months, 30, "J"},
		{Weeks, 60, "02"},
		{Weeks, 30, "02"},
		{Weeks, 10, ""},
		{Days, 60, "Wed"},
		{Days, 30, "W"},
		{Days, 10, ""},
	}
	for _, c := range cases {
		got := PeriodLabel(c.g, d, c.width, 50, 20)
		if got != c.want {
			t.Errorf("PeriodLabel(%s, width=%v) = %q, want %q", c.g, c.width, got, c.want)
		}
	}
}
