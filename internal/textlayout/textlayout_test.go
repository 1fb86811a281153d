/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

import (
	"strings"
	"testing"
)

var spec10 = FontSpec{Family: "Arial", SizePt: 10}

func TestWidthScalesWithSize(t *testing.T) {
	m := NewMeasurer()
	w10 := m.Width("hello", FontSpec{SizePt: 10})
	w20 := m.Width("hello", FontSpec{SizePt: 20})
	if w10 <= 0 {
		t.Fatalf("width should be positive, got %v", w10)
	}
	if w20 <= w10 {
		t.Fatalf("doubling the size should widen the text: %v vs %v", w10, w20)
	}
}

func TestTruncateKeepsFittingText(t *testing.T) {
	m := NewMeasurer()
	s := "short"
	if got := m.TruncateToWidth(s, spec10, m.Width(s, spec10)+1); got != s {
		t.Fatalf("fitting text was altered: %q", got)
	}
}

func TestTruncateNeverExceedsBudget(t *testing.T) {
	m := NewMeasurer()
	s := "a fairly long task name that will not fit"
	for _, max := range []float64{1, 3, 10, 25, 40, 80, 120} {
		got := m.TruncateToWidth(s, spec10, max)
		if w := m.Width(got, spec10); w > max {
			t.Errorf("truncated %q measures %v, budget %v", got, w, max)
		}
		if got != s && got != "" && !strings.HasSuffix(got, ellipsis) {
			t.Errorf("cut text %q has no ellipsis", got)
		}
	}
}

func TestTruncateTinyBudgetReturnsEmpty(t *testing.T) {
	m := NewMeasurer()
	if got := m.TruncateToWidth("hello", spec10, 1); got != "" {
		t.Fatalf("nothing fits a 1px budget, got %q", got)
	}
}

func TestWrapPreservesBlankLines(t *testing.T) {
	m := NewMeasurer()
	lines := m.WrapToLines("first\n\nsecond", spec10, 1000)
	want := []string{"first", "", "second"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %v", len(lines), lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapRespectsWidthAndKeepsWords(t *testing.T) {
	m := NewMeasurer()
	text := "the quick brown fox jumps over the lazy dog"
	max := m.Width("the quick", spec10) + 1
	lines := m.WrapToLines(text, spec10, max)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, l := range lines {
		if w := m.Width(l, spec10); w > max {
			t.Errorf("line %q measures %v, budget %v", l, w, max)
		}
	}
	if strings.Join(lines, " ") != text {
		t.Fatalf("words lost or reordered: %v", lines)
	}
}

func TestWrapHardSplitsLongWord(t *testing.T) {
	m := NewMeasurer()
	word := strings.Repeat("x", 40)
	max := m.Width("xxxxx", spec10)
	lines := m.WrapToLines(word, spec10, max)
	if len(lines) < 2 {
		t.Fatalf("oversize word should split, got %v", lines)
	}
	if strings.Join(lines, "") != word {
		t.Fatalf("characters lost in split: %v", lines)
	}
	for _, l := range lines {
		if w := m.Width(l, spec10); w > max {
			t.Errorf("chunk %q measures %v, budget %v", l, w, max)
		}
	}
}
