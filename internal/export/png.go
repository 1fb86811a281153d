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
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/render"
)

// PNG renders the snapshot and rasterizes it at the given scale (1.0 keeps
// the frame's pixel dimensions).
func PNG(snap *domain.Snapshot, style config.RenderStyle, outPath string, scale float64) error {
	data, err := rasterize(snap, style, scale)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// rasterize produces encoded PNG bytes from a fresh render.
func rasterize(snap *domain.Snapshot, style config.RenderStyle, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1.0
	}
	var svgBuf bytes.Buffer
	if err := render.New(style).Compose(&svgBuf, snap); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}

	icon, err := oksvg.ReadIconStream(&svgBuf, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	w := int(math.Round(snap.Frame.OuterWidth * scale))
	h := int(math.Round(snap.Frame.OuterHeight * scale))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("raster size %dx%d too small", w, h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return out.Bytes(), nil
}
