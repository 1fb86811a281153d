/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/haymanjoyce/compactgantt-sub000/internal/config"
	"github.com/haymanjoyce/compactgantt-sub000/internal/crash"
	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
	"github.com/haymanjoyce/compactgantt-sub000/internal/export"
	applog "github.com/haymanjoyce/compactgantt-sub000/internal/log"
	"github.com/haymanjoyce/compactgantt-sub000/internal/storage"
	"github.com/haymanjoyce/compactgantt-sub000/internal/version"
)

func usage() {
	fmt.Println("CompactGantt chart renderer")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  compactgantt version|-v|--version          Show version")
	fmt.Println("  compactgantt init <dir>                    Create a new project at <dir>")
	fmt.Println("  compactgantt validate <dir>                Check the project manifest against the schema")
	fmt.Println("  compactgantt render <dir> <out> [style]    Render the chart to <out> (.svg, .png or .pdf),")
	fmt.Println("                                             optionally merging a YAML style file over defaults")
	fmt.Println("  compactgantt history <dir> [n]             Show the last n renders (default all)")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	var ph *storage.ProjectHandle
	defer func() { crash.Recover(ph) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("CompactGantt chart renderer")
		fmt.Println(version.String())
	case "init":
		if len(args) < 3 {
			fmt.Println("init requires <dir>")
			usage()
			os.Exit(2)
		}
		abs, _ := filepath.Abs(args[2])
		l.Info("init project", slog.String("root", abs))
		h, err := storage.InitProject(abs, starterInput())
		if err != nil {
			l.Error("init failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		ph = h
		fmt.Println("Created project at", abs)
	case "validate":
		if len(args) < 3 {
			fmt.Println("validate requires <dir>")
			usage()
			os.Exit(2)
		}
		abs, _ := filepath.Abs(args[2])
		if err := runValidate(abs); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "render":
		if len(args) < 4 {
			fmt.Println("render requires <dir> and <out>")
			usage()
			os.Exit(2)
		}
		abs, _ := filepath.Abs(args[2])
		stylePath := ""
		if len(args) > 4 {
			stylePath = args[4]
		}
		h, err := storage.Open(abs)
		if err != nil {
			l.Error("open failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		ph = h
		if err := runRender(h, args[3], stylePath); err != nil {
			l.Error("render failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "history":
		if len(args) < 3 {
			fmt.Println("history requires <dir>")
			usage()
			os.Exit(2)
		}
		abs, _ := filepath.Abs(args[2])
		limit := 0
		if len(args) > 3 {
			n, err := strconv.Atoi(args[3])
			if err != nil {
				fmt.Println("history limit must be a number")
				os.Exit(2)
			}
			limit = n
		}
		if err := runHistory(abs, limit); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

// starterInput is the manifest a fresh project begins with.
func starterInput() domain.SnapshotInput {
	today := time.Now()
	return domain.SnapshotInput{
		Frame: domain.FrameInput{
			OuterWidth:  800,
			OuterHeight: 600,
			NumRows:     5,
			ChartStart:  today.Format("2006-01-02"),
			ChartEnd:    today.AddDate(0, 3, 0).Format("2006-01-02"),
			HeaderText:  "New Project",
			ShowMonths:  true,
			ShowWeeks:   true,
		},
	}
}

func runValidate(root string) error {
	b, err := os.ReadFile(filepath.Join(root, storage.ManifestFileName))
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	problems, err := storage.ValidateManifest(b)
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		fmt.Println("Manifest is valid.")
		return nil
	}
	fmt.Printf("Manifest has %d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Println("  -", p)
	}
	os.Exit(1)
	return nil
}

func runRender(ph *storage.ProjectHandle, outPath, stylePath string) error {
	l := applog.WithOperation(applog.WithComponent("cli"), "render")

	style, err := config.Load(stylePath)
	if err != nil {
		return fmt.Errorf("load style: %w", err)
	}

	snap, problems := domain.BuildSnapshot(ph.Input)
	for _, p := range problems {
		l.Warn("manifest problem", slog.String("detail", p.String()))
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(outPath)), ".")
	switch format {
	case "svg":
		err = export.SVG(snap, style, outPath)
	case "png":
		err = export.PNG(snap, style, outPath, 1.0)
	case "pdf":
		err = export.PDF(snap, style, outPath)
	default:
		return fmt.Errorf("unsupported output format %q (use .svg, .png or .pdf)", filepath.Ext(outPath))
	}
	if err != nil {
		return err
	}

	// Journal failures should not fail the render itself.
	if db, jerr := storage.OpenJournal(ph.Root); jerr != nil {
		l.Warn("journal unavailable", slog.Any("err", jerr))
	} else {
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rec := storage.RenderRecord{
			OutputPath: outPath,
			Format:     format,
			TaskCount:  len(snap.Tasks),
			LinkCount:  len(snap.Links),
			SkipCount:  len(problems),
		}
		if _, jerr := storage.RecordRender(ctx, db, rec); jerr != nil {
			l.Warn("record render failed", slog.Any("err", jerr))
		}
	}

	fmt.Println("Rendered", outPath)
	return nil
}

func runHistory(root string, limit int) error {
	db, err := storage.OpenJournal(root)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hist, err := storage.RenderHistory(ctx, db, limit)
	if err != nil {
		return err
	}
	if len(hist) == 0 {
		fmt.Println("No renders recorded.")
		return nil
	}
	for _, rec := range hist {
		fmt.Printf("%s  %-4s %-40s tasks=%d links=%d skips=%d\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Format, rec.OutputPath,
			rec.TaskCount, rec.LinkCount, rec.SkipCount)
	}
	return nil
}
