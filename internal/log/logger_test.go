/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitWritesJSONToFile(t *testing.T) {
	fpath := filepath.Join(os.TempDir(), fmt.Sprintf("cgt_log_%d.json", time.Now().UnixNano()))

	Init(Options{Level: "debug", Format: "json", File: fpath})

	l := WithOperation(WithComponent("render"), "compose")
	l.Warn("element skipped", slog.Int("task_id", 7))

	time.Sleep(50 * time.Millisecond)

	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	scanner := bufio.NewScanner(strings.NewReader(string(b)))
	var last string
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		t.Fatalf("no log lines found")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("parse log line: %v", err)
	}
	if m["component"] != "render" || m["op"] != "compose" {
		t.Fatalf("missing contextual attrs: %v", m)
	}
	_ = os.Remove(fpath)
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if lv := parseLevel("nonsense"); lv != slog.LevelInfo {
		t.Fatalf("expected info default, got %v", lv)
	}
	if lv := parseLevel("WARN"); lv != slog.LevelWarn {
		t.Fatalf("expected warn, got %v", lv)
	}
}
