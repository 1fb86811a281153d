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
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "github.com/haymanjoyce/compactgantt-sub000/internal/log"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	// JournalDirName stores per-project ephemeral data under the project root.
	JournalDirName  = ".cgantt"
	JournalFileName = "journal.sqlite"
)

// JournalPath returns the full path to the project's render journal database.
func JournalPath(projectRoot string) string {
	return filepath.Join(projectRoot, JournalDirName, JournalFileName)
}

// RenderRecord is one row of the render journal.
type RenderRecord struct {
	ID         int64
	CreatedAt  time.Time
	OutputPath string
	Format     string
	TaskCount  int
	LinkCount  int
	SkipCount  int
}

// OpenJournal opens (creating if needed) the per-project render journal at
// .cgantt/journal.sqlite, enables WAL mode, and ensures the schema exists.
// Callers may close the returned *sql.DB when no longer needed.
func OpenJournal(projectRoot string) (*sql.DB, error) {
	l := applog.WithOperation(applog.WithComponent("storage"), "journal_open").With(
		slog.String("root", projectRoot),
	)
	if strings.TrimSpace(projectRoot) == "" {
		return nil, errors.New("project root is required")
	}
	if err := os.MkdirAll(filepath.Join(projectRoot, JournalDirName), 0o755); err != nil {
		l.Error("create journal dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	path := JournalPath(projectRoot)
	uriPath := filepath.ToSlash(path)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", uriPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	ddl := `CREATE TABLE IF NOT EXISTS renders (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at  TEXT NOT NULL,
		output_path TEXT NOT NULL,
		format      TEXT NOT NULL,
		task_count  INTEGER NOT NULL DEFAULT 0,
		link_count  INTEGER NOT NULL DEFAULT 0,
		skip_count  INTEGER NOT NULL DEFAULT 0
	);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		l.Error("ensure journal schema failed", slog.Any("err", err))
		return nil, fmt.Errorf("ensure journal schema: %w", err)
	}

	l.Info("journal ready", slog.String("path", path))
	return db, nil
}

// RecordRender appends one render to the journal.
func RecordRender(ctx context.Context, db *sql.DB, rec RenderRecord) (int64, error) {
	at := rec.CreatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO renders (created_at, output_path, format, task_count, link_count, skip_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		at.Format(time.RFC3339), rec.OutputPath, rec.Format, rec.TaskCount, rec.LinkCount, rec.SkipCount,
	)
	if err != nil {
		return 0, fmt.Errorf("record render: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record render id: %w", err)
	}
	return id, nil
}

// RenderHistory returns the most recent renders, newest first, up to limit.
// A non-positive limit returns everything.
func RenderHistory(ctx context.Context, db *sql.DB, limit int) ([]RenderRecord, error) {
	q := `SELECT id, created_at, output_path, format, task_count, link_count, skip_count
	      FROM renders ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("query render history: %w", err)
	}
	defer rows.Close()

	var out []RenderRecord
	for rows.Next() {
		var rec RenderRecord
		var at string
		if err := rows.Scan(&rec.ID, &at, &rec.OutputPath, &rec.Format, &rec.TaskCount, &rec.LinkCount, &rec.SkipCount); err != nil {
			return nil, fmt.Errorf("scan render row: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, at); perr == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate render rows: %w", err)
	}
	return out, nil
}
