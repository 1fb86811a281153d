/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export writes rendered charts to files. SVG is the native artifact;
// PNG rasterizes it and PDF embeds the raster on a matching page.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/render"
)

// SVG renders the snapshot and writes the document to outPath, creating
// parent directories as needed. Nothing is written when rendering fails.
func SVG(snap *domain.Snapshot, style config.RenderStyle, outPath string) error {
	var buf bytes.Buffer
	if err := render.New(style).Compose(&buf, snap); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
