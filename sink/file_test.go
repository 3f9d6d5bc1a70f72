// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tigee1311/sdoh-intake/export"
	"github.com/tigee1311/sdoh-intake/models"
)

func TestFileSinkPersist(t *testing.T) {
	dir := t.TempDir()
	reg := smallRegistry(t, false)
	s, err := NewFileSink(dir, reg)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	one := 1
	record := testRecord("sub-1", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), models.AnswerSet{
		"color": {Type: models.TypeChoice, Code: &one, Label: "Sí"},
	})
	if err := s.Persist(context.Background(), record, export.Flatten(reg, record)); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	// One JSON document per submission, named by timestamp and id.
	docPath := filepath.Join(dir, "20250615T103000Z_sub-1.json")
	body, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatalf("Submission document missing: %v", err)
	}

	var stored models.SubmissionRecord
	if err := json.Unmarshal(body, &stored); err != nil {
		t.Fatalf("Stored document is not valid JSON: %v", err)
	}
	if stored.ID != "sub-1" || stored.Answers["color"].Label != "Sí" {
		t.Errorf("Stored record = %+v", stored)
	}

	// Cumulative exports are rebuilt on every persist.
	csvBody, err := os.ReadFile(filepath.Join(dir, "responses.csv"))
	if err != nil {
		t.Fatalf("responses.csv missing: %v", err)
	}
	if !strings.Contains(string(csvBody), "Sí") {
		t.Error("Expected non-ASCII label preserved in CSV")
	}

	xlsxBody, err := os.ReadFile(filepath.Join(dir, "responses.xlsx"))
	if err != nil {
		t.Fatalf("responses.xlsx missing: %v", err)
	}
	if !bytes.HasPrefix(xlsxBody, []byte("PK")) {
		t.Error("responses.xlsx does not look like a zip archive")
	}
}

func TestFileSinkCumulativeRebuild(t *testing.T) {
	dir := t.TempDir()
	reg := smallRegistry(t, false)
	s, err := NewFileSink(dir, reg)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	for i, id := range []string{"sub-1", "sub-2", "sub-3"} {
		record := testRecord(id, time.Date(2025, 6, 15, 10, i, 0, 0, time.UTC), models.AnswerSet{
			"age": {Type: models.TypeInteger, Int: 20 + i},
		})
		if err := s.Persist(context.Background(), record, export.Flatten(reg, record)); err != nil {
			t.Fatalf("Persist %s failed: %v", id, err)
		}
	}

	body, err := s.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 4 {
		t.Fatalf("CSV has %d lines, want header + 3 rows", len(lines))
	}

	// On-disk export matches the handler export byte for byte.
	onDisk, err := os.ReadFile(filepath.Join(dir, "responses.csv"))
	if err != nil {
		t.Fatalf("responses.csv missing: %v", err)
	}
	if !bytes.Equal(onDisk, body) {
		t.Error("On-disk CSV differs from ExportCSV output")
	}
}

func TestFileSinkOrdersByCompletionTime(t *testing.T) {
	dir := t.TempDir()
	reg := smallRegistry(t, false)
	s, err := NewFileSink(dir, reg)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	// Persist newest first; export must still be oldest first.
	newer := testRecord("sub-a", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), models.AnswerSet{})
	older := testRecord("sub-b", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), models.AnswerSet{})
	for _, r := range []*models.SubmissionRecord{newer, older} {
		if err := s.Persist(context.Background(), r, export.Flatten(reg, r)); err != nil {
			t.Fatalf("Persist failed: %v", err)
		}
	}

	body, err := s.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "2025-01-01") || !strings.Contains(lines[2], "2025-02-01") {
		t.Errorf("CSV rows out of order:\n%s", body)
	}
}

func TestFileSinkIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	reg := smallRegistry(t, false)
	s, err := NewFileSink(dir, reg)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	// A stray non-JSON file must not break export.
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("notes"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	record := testRecord("sub-1", time.Now().UTC().Truncate(time.Second), models.AnswerSet{})
	if err := s.Persist(context.Background(), record, export.Flatten(reg, record)); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	if _, err := s.ExportCSV(context.Background()); err != nil {
		t.Errorf("ExportCSV failed with stray file present: %v", err)
	}
}
