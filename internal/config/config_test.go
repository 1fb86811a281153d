/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	body := "font_family: Helvetica\nfull_label_width: 60\nshow_task_ids: true\nfont_sizes:\n  task: 12\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write style: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.FontFamily != "Helvetica" || s.FullLabelWidth != 60 || !s.ShowTaskIDs || s.Fonts.Task != 12 {
		t.Fatalf("merge failed: %+v", s)
	}
	// untouched fields keep defaults
	if s.ShortLabelWidth != 20 || s.NoteWidthCorrection != 1.2 {
		t.Fatalf("defaults clobbered: %+v", s)
	}
}

func TestLoadOmittedBooleanKeepsCurrentValue(t *testing.T) {
	dir := t.TempDir()

	// Absent key: the merged value stays whatever the defaults carry.
	path := filepath.Join(dir, "plain.yaml")
	if err := os.WriteFile(path, []byte("font_family: Helvetica\n"), 0o644); err != nil {
		t.Fatalf("write style: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ShowTaskIDs != Defaults().ShowTaskIDs {
		t.Fatalf("omitted show_task_ids changed the default: %+v", s)
	}

	// Explicit false is honored, not treated as absent.
	path = filepath.Join(dir, "off.yaml")
	if err := os.WriteFile(path, []byte("show_task_ids: false\n"), 0o644); err != nil {
		t.Fatalf("write style: %v", err)
	}
	s, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ShowTaskIDs {
		t.Fatalf("explicit false ignored: %+v", s)
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	s := Defaults()
	s.FullLabelWidth = 5 // below short threshold
	if err := s.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
	s = Defaults()
	s.CurtainOpacity = 1.5
	if err := s.Validate(); err == nil {
		t.Fatalf("expected opacity validation error")
	}
}
