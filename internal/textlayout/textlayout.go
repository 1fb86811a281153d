/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textlayout estimates rendered text extents and fits strings into
// pixel budgets. Measurement is isolated behind a Provider so widths stay
// deterministic in tests regardless of the fonts installed on the host.
package textlayout

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSpec describes a requested font.
type FontSpec struct {
	Family string
	SizePt float64
}

// Provider maps FontSpec to a concrete font.Face plus the nominal pixel size
// that face was designed for, so advances can be scaled to the requested size.
type Provider interface {
	Resolve(FontSpec) (face font.Face, nominalPx float64)
}

// BasicProvider serves x/image/basicfont Face7x13 for every family. The face
// is bitmap and size-independent, so widths are scaled from its 13px design
// size. Deterministic across platforms.
type BasicProvider struct{}

func (BasicProvider) Resolve(FontSpec) (font.Face, float64) {
	return basicfont.Face7x13, 13
}

// Measurer computes pixel extents for strings at a given font size.
type Measurer struct {
	Provider Provider
}

// NewMeasurer returns a measurer backed by the deterministic basic provider.
func NewMeasurer() *Measurer { return &Measurer{Provider: BasicProvider{}} }

func (m *Measurer) resolve(spec FontSpec) (font.Face, float64) {
	p := m.Provider
	if p == nil {
		p = BasicProvider{}
	}
	return p.Resolve(spec)
}

// Width returns the estimated advance width of s at the given size.
func (m *Measurer) Width(s string, spec FontSpec) float64 {
	face, nominal := m.resolve(spec)
	d := &font.Drawer{Face: face}
	w := float64(d.MeasureString(s) >> 6)
	if spec.SizePt > 0 && nominal > 0 {
		w *= spec.SizePt / nominal
	}
	return w
}

// LineHeight returns the line advance for the given size.
func (m *Measurer) LineHeight(spec FontSpec) float64 {
	face, nominal := m.resolve(spec)
	met := face.Metrics()
	h := float64(met.Height.Round())
	if spec.SizePt > 0 && nominal > 0 {
		h *= spec.SizePt / nominal
	}
	return h
}

const ellipsis = "…"

// TruncateToWidth shortens s so that it fits maxWidth, appending an ellipsis
// when anything was cut. Strings that already fit come back unchanged; when
// not even one character fits alongside the ellipsis the result is empty. The
// cut point is found by binary search over the rune count.
func (m *Measurer) TruncateToWidth(s string, spec FontSpec, maxWidth float64) string {
	if maxWidth <= 0 {
		return ""
	}
	if m.Width(s, spec) <= maxWidth {
		return s
	}
	runes := []rune(s)
	lo, hi := 0, len(runes) // lo always fits with the ellipsis appended
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.Width(string(runes[:mid])+ellipsis, spec) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return ""
	}
	return string(runes[:lo]) + ellipsis
}

// WrapToLines breaks s into lines no wider than maxWidth. Explicit newlines
// are respected and blank lines are preserved. A single word wider than
// maxWidth is hard-split across as many lines as it needs.
func (m *Measurer) WrapToLines(s string, spec FontSpec, maxWidth float64) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if strings.TrimSpace(para) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, m.wrapParagraph(para, spec, maxWidth)...)
	}
	return out
}

func (m *Measurer) wrapParagraph(para string, spec FontSpec, maxWidth float64) []string {
	var lines []string
	var cur string
	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
	}
	for _, word := range strings.Fields(para) {
		for m.Width(word, spec) > maxWidth && maxWidth > 0 {
			flush()
			head := m.fitPrefix(word, spec, maxWidth)
			lines = append(lines, head)
			word = strings.TrimPrefix(word, head)
		}
		if word == "" {
			continue
		}
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if maxWidth > 0 && m.Width(candidate, spec) > maxWidth {
			flush()
			cur = word
		} else {
			cur = candidate
		}
	}
	flush()
	return lines
}

// fitPrefix returns the longest leading slice of word that fits maxWidth,
// always at least one rune so splitting makes progress.
func (m *Measurer) fitPrefix(word string, spec FontSpec, maxWidth float64) string {
	runes := []rune(word)
	lo, hi := 1, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.Width(string(runes[:mid]), spec) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo])
}
