/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the canonical storage form for all model dates.
const ISOLayout = "2006-01-02"

// Date is a calendar day. The zero value means "not set".
type Date struct {
	time.Time
}

// ParseDate parses a canonical ISO date string. Empty input yields the zero
// Date with no error; malformed input yields the zero Date and an error.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// MustDate is a test helper; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DaysBetween returns b - a in whole days.
func DaysBetween(a, b Date) int {
	return int(b.Sub(a.Time) / (24 * time.Hour))
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date { return Date{d.AddDate(0, 0, n)} }

// ISO renders the canonical form, or "" for the zero Date.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(ISOLayout)
}

// DateFormat maps a user-facing format name to a Go time layout. Unknown
// names fall back to the British day-first format the original charts used.
type DateFormat struct {
	Name   string
	Layout string
}

var dateFormats = map[string]string{
	"dd/MM/yyyy":  "02/01/2006",
	"MM/dd/yyyy":  "01/02/2006",
	"yyyy-MM-dd":  "2006-01-02",
	"dd-MM-yyyy":  "02-01-2006",
	"dd MMM yyyy": "02 Jan 2006",
}

// LookupDateFormat resolves a display format by name.
func LookupDateFormat(name string) DateFormat {
	if layout, ok := dateFormats[strings.TrimSpace(name)]; ok {
		return DateFormat{Name: name, Layout: layout}
	}
	return DateFormat{Name: "dd/MM/yyyy", Layout: "02/01/2006"}
}

// Display renders d in the given display format, or "" for the zero Date.
func (f DateFormat) Display(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(f.Layout)
}
