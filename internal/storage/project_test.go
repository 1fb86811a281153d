/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
)

func sampleInput() domain.SnapshotInput {
	return domain.SnapshotInput{
		Frame: domain.FrameInput{
			OuterWidth:  800,
			OuterHeight: 600,
			NumRows:     5,
			ChartStart:  "2025-01-01",
			ChartEnd:    "2025-06-30",
			HeaderText:  "Project Plan",
			ShowMonths:  true,
			ShowWeeks:   true,
		},
		Tasks: []domain.TaskInput{
			{ID: 1, Name: "Design", Start: "2025-01-06", Finish: "2025-01-31", Row: 1},
		},
	}
}

func TestInitProjectScaffoldsAndWritesManifest(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	ph, err := InitProject(root, sampleInput())
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	for _, d := range []string{"exports", "styles", BackupsDirName} {
		if st, err := os.Stat(filepath.Join(root, d)); err != nil || !st.IsDir() {
			t.Errorf("subdir %s missing: %v", d, err)
		}
	}
	if _, err := os.Stat(ph.ManifestPath); err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
}

func TestOpenRoundTrip(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	if _, err := InitProject(root, sampleInput()); err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	ph, err := Open(root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if ph.Input.Frame.HeaderText != "Project Plan" {
		t.Errorf("HeaderText = %q", ph.Input.Frame.HeaderText)
	}
	if len(ph.Input.Tasks) != 1 || ph.Input.Tasks[0].Name != "Design" {
		t.Errorf("tasks not preserved: %+v", ph.Input.Tasks)
	}
}

func TestSaveKeepsBackupOfPreviousVersion(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	ph, err := InitProject(root, sampleInput())
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	ph.Input.Frame.HeaderText = "Revised Plan"
	if err := Save(ph); err != nil {
		t.Fatalf("Save: %v", err)
	}
	ents, err := os.ReadDir(filepath.Join(root, BackupsDirName))
	if err != nil {
		t.Fatalf("read backups: %v", err)
	}
	if len(ents) == 0 {
		t.Fatal("expected a backup after second save")
	}
	ph2, err := Open(root)
	if err != nil {
		t.Fatalf("Open after save: %v", err)
	}
	if ph2.Input.Frame.HeaderText != "Revised Plan" {
		t.Errorf("HeaderText = %q, want revised", ph2.Input.Frame.HeaderText)
	}
}

func TestOpenFallsBackToLatestBackupOnCorruption(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	ph, err := InitProject(root, sampleInput())
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	// Second save produces a backup of the original manifest.
	if err := Save(ph); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(ph.ManifestPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt manifest: %v", err)
	}
	recovered, err := Open(root)
	if err != nil {
		t.Fatalf("Open with backup: %v", err)
	}
	if recovered.Input.Frame.HeaderText != "Project Plan" {
		t.Errorf("recovered HeaderText = %q", recovered.Input.Frame.HeaderText)
	}
}

func TestOpenMissingProjectFails(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing project")
	}
}
