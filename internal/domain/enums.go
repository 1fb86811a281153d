/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import "strings"

// LabelPlacement positions a task label relative to its bar or circle.
type LabelPlacement string

const (
	LabelInside  LabelPlacement = "Inside"
	LabelOutside LabelPlacement = "Outside"
)

// ParseLabelPlacement maps free-form input to a placement, defaulting to
// Outside. The legacy "To left"/"To right" values normalize to Outside.
func ParseLabelPlacement(s string) LabelPlacement {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "inside":
		return LabelInside
	default:
		return LabelOutside
	}
}

// LabelContent selects what text a task label carries.
type LabelContent string

const (
	ContentNone        LabelContent = "None"
	ContentNameOnly    LabelContent = "Name only"
	ContentDateOnly    LabelContent = "Date only"
	ContentNameAndDate LabelContent = "Name and Date"
)

func ParseLabelContent(s string) LabelContent {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "none", "no":
		return ContentNone
	case "date only", "date":
		return ContentDateOnly
	case "name and date", "both":
		return ContentNameAndDate
	default:
		return ContentNameOnly
	}
}

// HAlign is a horizontal text alignment.
type HAlign string

const (
	AlignLeft   HAlign = "Left"
	AlignCenter HAlign = "Center"
	AlignRight  HAlign = "Right"
)

func ParseHAlign(s string) HAlign {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

// VAlign is a vertical text alignment.
type VAlign string

const (
	AlignTop    VAlign = "Top"
	AlignMiddle VAlign = "Middle"
	AlignBottom VAlign = "Bottom"
)

func ParseVAlign(s string) VAlign {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "top":
		return AlignTop
	case "bottom":
		return AlignBottom
	default:
		return AlignMiddle
	}
}

// LineStyle selects a link's stroke dash pattern.
type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDotted LineStyle = "dotted"
	LineDashed LineStyle = "dashed"
)

func ParseLineStyle(s string) LineStyle {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "dotted":
		return LineDotted
	case "dashed":
		return LineDashed
	default:
		return LineSolid
	}
}

// RouteMode selects the orthogonal path shape for links that change rows.
type RouteMode string

const (
	RouteAuto RouteMode = "auto"
	RouteHV   RouteMode = "HV"
	RouteVH   RouteMode = "VH"
)

func ParseRouteMode(s string) RouteMode {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "hv":
		return RouteHV
	case "vh":
		return RouteVH
	default:
		return RouteAuto
	}
}

// LanePosition anchors a swimlane title to one corner of its band.
type LanePosition string

const (
	LaneTopLeft     LanePosition = "Top Left"
	LaneTopRight    LanePosition = "Top Right"
	LaneBottomLeft  LanePosition = "Bottom Left"
	LaneBottomRight LanePosition = "Bottom Right"
)

func ParseLanePosition(s string) LanePosition {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "top left":
		return LaneTopLeft
	case "top right":
		return LaneTopRight
	case "bottom left":
		return LaneBottomLeft
	default:
		return LaneBottomRight
	}
}

// Top reports whether the title anchors to the lane's first row.
func (p LanePosition) Top() bool { return p == LaneTopLeft || p == LaneTopRight }

// Left reports whether the title anchors to the left chart edge.
func (p LanePosition) Left() bool { return p == LaneTopLeft || p == LaneBottomLeft }
