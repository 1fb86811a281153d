/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"encoding/json"
	"testing"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
)

func TestValidateManifestAcceptsWellFormedInput(t *testing.T) {
	b, err := json.Marshal(sampleInput())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	problems, err := ValidateManifest(b)
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("unexpected violations: %v", problems)
	}
}

func TestValidateManifestFlagsMissingChartRange(t *testing.T) {
	doc := []byte(`{"frame_config": {"outer_width": 800}}`)
	problems, err := ValidateManifest(doc)
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if len(problems) == 0 {
		t.Fatal("expected violations for missing chart range dates")
	}
}

func TestValidateManifestFlagsWrongTypes(t *testing.T) {
	in := sampleInput()
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	m["tasks"] = []any{map[string]any{"task_id": "one"}}
	doc, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("remarshal: %v", err)
	}
	problems, err := ValidateManifest(doc)
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if len(problems) == 0 {
		t.Fatal("expected violations for string task_id")
	}
}

// The schema must stay in step with the Go input structs: a round-tripped
// zero-value manifest with dates should validate.
func TestValidateManifestAcceptsZeroValueFields(t *testing.T) {
	in := domain.SnapshotInput{Frame: domain.FrameInput{ChartStart: "2025-01-01", ChartEnd: "2025-02-01"}}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	problems, err := ValidateManifest(b)
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("unexpected violations: %v", problems)
	}
}
