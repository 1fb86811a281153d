/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"os"
	"testing"
)

func TestOpenJournalCreatesDatabase(t *testing.T) {
	root := t.TempDir()
	db, err := OpenJournal(root)
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	defer db.Close()
	if _, err := os.Stat(JournalPath(root)); err != nil {
		t.Fatalf("journal file missing: %v", err)
	}
}

func TestRecordAndQueryRenderHistory(t *testing.T) {
	root := t.TempDir()
	db, err := OpenJournal(root)
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	for i, rec := range []RenderRecord{
		{OutputPath: "exports/plan.svg", Format: "svg", TaskCount: 4, LinkCount: 2},
		{OutputPath: "exports/plan.png", Format: "png", TaskCount: 4, LinkCount: 2, SkipCount: 1},
	} {
		id, err := RecordRender(ctx, db, rec)
		if err != nil {
			t.Fatalf("RecordRender %d: %v", i, err)
		}
		if id <= 0 {
			t.Errorf("RecordRender %d: id = %d", i, id)
		}
	}

	hist, err := RenderHistory(ctx, db, 0)
	if err != nil {
		t.Fatalf("RenderHistory: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("len(hist) = %d, want 2", len(hist))
	}
	// Newest first.
	if hist[0].Format != "png" || hist[1].Format != "svg" {
		t.Errorf("order wrong: %q then %q", hist[0].Format, hist[1].Format)
	}
	if hist[0].SkipCount != 1 {
		t.Errorf("SkipCount = %d, want 1", hist[0].SkipCount)
	}
	if hist[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not recorded")
	}

	limited, err := RenderHistory(ctx, db, 1)
	if err != nil {
		t.Fatalf("RenderHistory limit: %v", err)
	}
	if len(limited) != 1 || limited[0].Format != "png" {
		t.Errorf("limited history wrong: %+v", limited)
	}
}
