/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config defines the immutable RenderStyle bundle consumed by the
// rendering engine. A style value is built once (defaults, optionally merged
// with a YAML file) and passed by value into every component; no component
// reads ambient configuration state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FontSizes carries per-element font sizes in pixels.
type FontSizes struct {
	Task         float64 `yaml:"task"`
	Scale        float64 `yaml:"scale"`
	HeaderFooter float64 `yaml:"header_footer"`
	RowNumber    float64 `yaml:"row_number"`
	Note         float64 `yaml:"note"`
	Swimlane     float64 `yaml:"swimlane"`
	Badge        float64 `yaml:"badge"`
}

// ScaleProportions weights each calendar scale band against the row frame,
// which has a fixed weight of 1.0.
type ScaleProportions struct {
	Years  float64 `yaml:"years"`
	Months float64 `yaml:"months"`
	Weeks  float64 `yaml:"weeks"`
	Days   float64 `yaml:"days"`
}

// Colors names the fixed chart colors. Element-specific colors (task fill,
// link stroke, pipe/curtain color) come from the model, not from here.
type Colors struct {
	Background  string `yaml:"background"`
	FrameBorder string `yaml:"frame_border"`
	BandFill    string `yaml:"band_fill"`
	BandStroke  string `yaml:"band_stroke"`
	Gridline    string `yaml:"gridline"`
	TaskStroke  string `yaml:"task_stroke"`
	BadgeFill   string `yaml:"badge_fill"`
	BadgeText   string `yaml:"badge_text"`
}

// RenderStyle is the immutable style/configuration bundle of a render pass.
type RenderStyle struct {
	FontFamily string           `yaml:"font_family"`
	Fonts      FontSizes        `yaml:"font_sizes"`
	Scale      ScaleProportions `yaml:"scale_proportions"`
	Colors     Colors           `yaml:"colors"`

	// Period label thresholds in pixels: at or above FullLabelWidth the
	// unabbreviated form is used, at or above ShortLabelWidth the
	// abbreviated form, below it no label.
	FullLabelWidth  float64 `yaml:"full_label_width"`
	ShortLabelWidth float64 `yaml:"short_label_width"`

	// Vertical alignment factors: 0 = top, 0.5 = center, 1 = bottom.
	TextVAlignFactor           float64 `yaml:"text_vertical_alignment_factor"`
	SwimlaneTopVAlignFactor    float64 `yaml:"swimlane_top_alignment_factor"`
	SwimlaneBottomVAlignFactor float64 `yaml:"swimlane_bottom_alignment_factor"`
	BadgeVAlignFactor          float64 `yaml:"badge_alignment_factor"`

	// OutsideLabelOffset is the fixed gap between a bar end and its outside
	// label. A task's own horizontal offset is added on top of it.
	OutsideLabelOffset float64 `yaml:"outside_label_offset"`

	ShowTaskIDs bool `yaml:"show_task_ids"`

	NotePadding float64 `yaml:"note_padding"`
	// NoteWidthCorrection widens the wrap budget to compensate for the gap
	// between measured and rendered text width. Environment-dependent;
	// recalibrate when the consuming renderer changes.
	NoteWidthCorrection float64 `yaml:"note_width_correction"`

	CurtainOpacity float64 `yaml:"curtain_opacity"`

	// DateFormat is the chart-wide display format name for task date labels
	// (see domain.DateFormat); tasks may override it individually.
	DateFormat string `yaml:"date_format"`
}

// Defaults returns the stock style.
func Defaults() RenderStyle {
	return RenderStyle{
		FontFamily: "Arial",
		Fonts: FontSizes{
			Task:         10,
			Scale:        10,
			HeaderFooter: 10,
			RowNumber:    8,
			Note:         10,
			Swimlane:     10,
			Badge:        8,
		},
		Scale: ScaleProportions{Years: 0.05, Months: 0.05, Weeks: 0.05, Days: 0.05},
		Colors: Colors{
			Background:  "white",
			FrameBorder: "black",
			BandFill:    "lightgrey",
			BandStroke:  "grey",
			Gridline:    "#d3d3d3",
			TaskStroke:  "black",
			BadgeFill:   "white",
			BadgeText:   "black",
		},
		FullLabelWidth:             50,
		ShortLabelWidth:            20,
		TextVAlignFactor:           0.7,
		SwimlaneTopVAlignFactor:    0.7,
		SwimlaneBottomVAlignFactor: 0.7,
		BadgeVAlignFactor:          0.5,
		OutsideLabelOffset:         10,
		ShowTaskIDs:                false,
		NotePadding:                5,
		NoteWidthCorrection:        1.2,
		CurtainOpacity:             0.3,
		DateFormat:                 "dd/MM/yyyy",
	}
}

// Load reads a YAML style file and merges it over Defaults. An empty path
// returns Defaults unchanged.
func Load(path string) (RenderStyle, error) {
	style := Defaults()
	if path == "" {
		return style, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return style, fmt.Errorf("read style file: %w", err)
	}
	var file RenderStyle
	if err := yaml.Unmarshal(data, &file); err != nil {
		return style, fmt.Errorf("parse style file: %w", err)
	}
	// Booleans need a presence check: a plain bool cannot distinguish
	// "show_task_ids: false" from the key being absent.
	var flags struct {
		ShowTaskIDs *bool `yaml:"show_task_ids"`
	}
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return style, fmt.Errorf("parse style file: %w", err)
	}
	mergeInto(&style, &file)
	if flags.ShowTaskIDs != nil {
		style.ShowTaskIDs = *flags.ShowTaskIDs
	}
	if err := style.Validate(); err != nil {
		return Defaults(), err
	}
	return style, nil
}

// Validate rejects styles the renderer cannot work with.
func (s RenderStyle) Validate() error {
	if s.FullLabelWidth < s.ShortLabelWidth {
		return fmt.Errorf("full_label_width %v below short_label_width %v", s.FullLabelWidth, s.ShortLabelWidth)
	}
	if s.NoteWidthCorrection <= 0 {
		return fmt.Errorf("note_width_correction must be positive, got %v", s.NoteWidthCorrection)
	}
	if s.CurtainOpacity < 0 || s.CurtainOpacity > 1 {
		return fmt.Errorf("curtain_opacity out of [0,1]: %v", s.CurtainOpacity)
	}
	for _, p := range []float64{s.Scale.Years, s.Scale.Months, s.Scale.Weeks, s.Scale.Days} {
		if p < 0 {
			return fmt.Errorf("scale proportions must be non-negative")
		}
	}
	return nil
}

func mergeInto(dst, src *RenderStyle) {
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	mergeFloat(&dst.Fonts.Task, src.Fonts.Task)
	mergeFloat(&dst.Fonts.Scale, src.Fonts.Scale)
	mergeFloat(&dst.Fonts.HeaderFooter, src.Fonts.HeaderFooter)
	mergeFloat(&dst.Fonts.RowNumber, src.Fonts.RowNumber)
	mergeFloat(&dst.Fonts.Note, src.Fonts.Note)
	mergeFloat(&dst.Fonts.Swimlane, src.Fonts.Swimlane)
	mergeFloat(&dst.Fonts.Badge, src.Fonts.Badge)
	mergeFloat(&dst.Scale.Years, src.Scale.Years)
	mergeFloat(&dst.Scale.Months, src.Scale.Months)
	mergeFloat(&dst.Scale.Weeks, src.Scale.Weeks)
	mergeFloat(&dst.Scale.Days, src.Scale.Days)
	mergeString(&dst.Colors.Background, src.Colors.Background)
	mergeString(&dst.Colors.FrameBorder, src.Colors.FrameBorder)
	mergeString(&dst.Colors.BandFill, src.Colors.BandFill)
	mergeString(&dst.Colors.BandStroke, src.Colors.BandStroke)
	mergeString(&dst.Colors.Gridline, src.Colors.Gridline)
	mergeString(&dst.Colors.TaskStroke, src.Colors.TaskStroke)
	mergeString(&dst.Colors.BadgeFill, src.Colors.BadgeFill)
	mergeString(&dst.Colors.BadgeText, src.Colors.BadgeText)
	mergeFloat(&dst.FullLabelWidth, src.FullLabelWidth)
	mergeFloat(&dst.ShortLabelWidth, src.ShortLabelWidth)
	mergeFloat(&dst.TextVAlignFactor, src.TextVAlignFactor)
	mergeFloat(&dst.SwimlaneTopVAlignFactor, src.SwimlaneTopVAlignFactor)
	mergeFloat(&dst.SwimlaneBottomVAlignFactor, src.SwimlaneBottomVAlignFactor)
	mergeFloat(&dst.BadgeVAlignFactor, src.BadgeVAlignFactor)
	mergeFloat(&dst.OutsideLabelOffset, src.OutsideLabelOffset)
	mergeFloat(&dst.NotePadding, src.NotePadding)
	mergeFloat(&dst.NoteWidthCorrection, src.NoteWidthCorrection)
	mergeFloat(&dst.CurtainOpacity, src.CurtainOpacity)
	mergeString(&dst.DateFormat, src.DateFormat)
}

func mergeFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
