/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package timescale converts calendar dates to pixel positions and iterates
// calendar periods at year/month/week/day granularity.
package timescale

import (
	"time"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
)

// Granularity is one calendar subdivision of the chart's scale area.
type Granularity string

const (
	Years  Granularity = "years"
	Months Granularity = "months"
	Weeks  Granularity = "weeks"
	Days   Granularity = "days"
)

// All lists granularities coarsest-first, the order scale bands stack in.
var All = []Granularity{Years, Months, Weeks, Days}

// Mapper is the shared date→pixel function of one render pass.
type Mapper struct {
	Start domain.Date
	End   domain.Date
	X0    float64
	Width float64

	pixelsPerDay float64
}

// NewMapper builds a mapper for the chart range across the given pixel span.
func NewMapper(start, end domain.Date, x0, width float64) Mapper {
	days := domain.DaysBetween(start, end)
	if days < 1 {
		days = 1
	}
	return Mapper{Start: start, End: end, X0: x0, Width: width, pixelsPerDay: width / float64(days)}
}

// DayWidth returns the pixel width of a single day.
func (m Mapper) DayWidth() float64 { return m.pixelsPerDay }

// DateToX maps a date to an x position, clamped to the drawable span.
// It is monotonically non-decreasing and maps the chart start to X0.
func (m Mapper) DateToX(d domain.Date) float64 {
	days := domain.DaysBetween(m.Start, d)
	if days < 0 {
		days = 0
	}
	x := m.X0 + float64(days)*m.pixelsPerDay
	if max := m.X0 + m.Width; x > max {
		x = max
	}
	return x
}

// NextPeriod advances a date to the next period boundary for the granularity:
// the next day, the next Monday, the first of the next month, or January 1 of
// the next year. It always moves forward by at least one day.
func NextPeriod(d domain.Date, g Granularity) domain.Date {
	switch g {
	case Weeks:
		// Monday-based weeks; from a Monday the next boundary is a full
		// week ahead.
		offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
		if offset == 0 {
			offset = 7
		}
		return d.AddDays(offset)
	case Months:
		t := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		return domain.Date{Time: t}
	case Years:
		return domain.Date{Time: time.Date(d.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)}
	default:
		return d.AddDays(1)
	}
}

// Period is one scale interval. Start is inclusive; Next is the following
// boundary (possibly past the chart end for the last, clipped interval).
type Period struct {
	Start domain.Date
	Next  domain.Date
}

// Periods returns the period intervals covering the chart range. The first
// interval starts at the chart start even when that is mid-period.
func (m Mapper) Periods(g Granularity) []Period {
	var out []Period
	for cur := m.Start; !cur.After(m.End.Time); {
		next := NextPeriod(cur, g)
		out = append(out, Period{Start: cur, Next: next})
		cur = next
	}
	return out
}
