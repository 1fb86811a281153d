/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
)

// pdfRasterScale oversamples the embedded raster so the chart stays crisp at
// print sizes.
const pdfRasterScale = 2.0

// PDF renders the snapshot onto a single PDF page matching the frame's
// dimensions in points. The chart is embedded as a high-resolution raster.
func PDF(snap *domain.Snapshot, style config.RenderStyle, outPath string) error {
	data, err := rasterize(snap, style, pdfRasterScale)
	if err != nil {
		return err
	}

	w := snap.Frame.OuterWidth
	h := snap.Frame.OuterHeight
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetTitle(snap.Frame.HeaderText, true)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: w, Ht: h})

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(data))
	pdf.ImageOptions("chart", 0, 0, w, h, false, opts, 0, "")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
