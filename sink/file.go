// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/export"
	"github.com/tigee1311/sdoh-intake/models"
)

// Cumulative export file names inside the data directory.
const (
	csvFileName  = "responses.csv"
	xlsxFileName = "responses.xlsx"
)

// FileSink stores one JSON document per submission and keeps cumulative
// CSV and XLSX exports alongside them. Every write rebuilds both exports
// from all JSON documents on disk (full rebuild, not incremental), so the
// tabular files are always consistent with the JSON source of truth even
// if a previous export write was interrupted.
type FileSink struct {
	dir string
	reg *catalog.Registry
	mu  sync.Mutex
}

// NewFileSink creates the data directory if needed and returns a sink
// writing into it.
func NewFileSink(dir string, reg *catalog.Registry) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileSink{dir: dir, reg: reg}, nil
}

func (s *FileSink) Persist(ctx context.Context, record *models.SubmissionRecord, _ models.FlatRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	name := record.CompletedAt.UTC().Format("20060102T150405Z") + "_" + record.ID + ".json"
	if err := writeFileAtomic(filepath.Join(s.dir, name), buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write submission document: %w", err)
	}

	return s.rebuildLocked(ctx)
}

// rebuildLocked regenerates both cumulative exports from every JSON
// document in the directory. Caller holds the mutex.
func (s *FileSink) rebuildLocked(ctx context.Context) error {
	headers, cells, err := s.tabulate(ctx)
	if err != nil {
		return err
	}

	csvBytes, err := buildCSV(headers, cells)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(s.dir, csvFileName), csvBytes); err != nil {
		return fmt.Errorf("failed to write %s: %w", csvFileName, err)
	}

	xlsxBytes, err := buildXLSX(headers, cells)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(s.dir, xlsxFileName), xlsxBytes); err != nil {
		return fmt.Errorf("failed to write %s: %w", xlsxFileName, err)
	}
	return nil
}

func (s *FileSink) tabulate(ctx context.Context) ([]string, [][]string, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	headers := export.Headers(s.reg)
	cells := make([][]string, 0, len(records))
	for _, record := range records {
		cells = append(cells, export.Align(export.Flatten(s.reg, record), headers))
	}
	return headers, cells, nil
}

// loadRecords reads every submission document, oldest first.
func (s *FileSink) loadRecords() ([]*models.SubmissionRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	var records []*models.SubmissionRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		body, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		var record models.SubmissionRecord
		if err := json.Unmarshal(body, &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", entry.Name(), err)
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CompletedAt.Equal(records[j].CompletedAt) {
			return records[i].CompletedAt.Before(records[j].CompletedAt)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (s *FileSink) ExportCSV(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	headers, cells, err := s.tabulate(ctx)
	if err != nil {
		return nil, err
	}
	return buildCSV(headers, cells)
}

func (s *FileSink) ExportXLSX(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	headers, cells, err := s.tabulate(ctx)
	if err != nil {
		return nil, err
	}
	return buildXLSX(headers, cells)
}

func (s *FileSink) Close() error { return nil }

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
