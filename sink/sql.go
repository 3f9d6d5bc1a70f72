// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/export"
	"github.com/tigee1311/sdoh-intake/models"
)

// SQLSink persists submissions to postgres or sqlite through database/sql.
// Each submission is written as one transaction: the full JSON record into
// submission, then header reconciliation (ALTER TABLE ... ADD COLUMN,
// append-only) and the row append into submission_flat. The mutex
// serializes reconcile-then-append so two near-simultaneous submissions
// cannot race on newly added columns.
type SQLSink struct {
	db     *sql.DB
	driver string
	reg    *catalog.Registry
	mu     sync.Mutex
}

// NewSQLSink wraps an open database handle. driver is "postgres" or
// "sqlite" and must match the handle's driver.
func NewSQLSink(dbConn *sql.DB, driver string, reg *catalog.Registry) *SQLSink {
	return &SQLSink{db: dbConn, driver: driver, reg: reg}
}

func (s *SQLSink) Persist(ctx context.Context, record *models.SubmissionRecord, row models.FlatRow) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		s.rebind(`INSERT INTO submission (id, completed_at, language, instrument_version, record) VALUES (?, ?, ?, ?, ?)`),
		record.ID, record.CompletedAt, string(record.Language), record.InstrumentVersion, string(body))
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	headers, err := s.ensureHeaders(ctx, tx, row.Headers)
	if err != nil {
		return err
	}

	if err := s.appendRow(ctx, tx, record.ID, headers, row); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

// ensureHeaders reconciles the flat table's columns with the required
// headers inside the submission's transaction. Existing columns are never
// reordered or removed; missing ones are appended via ALTER TABLE, which
// in both postgres and sqlite places them after all existing columns.
func (s *SQLSink) ensureHeaders(ctx context.Context, tx *sql.Tx, required []string) ([]string, error) {
	existing, err := s.flatColumns(ctx, tx)
	if err != nil {
		return nil, err
	}

	merged := export.ReconcileHeaders(existing, required)
	have := make(map[string]bool, len(existing))
	for _, h := range existing {
		have[h] = true
	}
	for _, h := range merged {
		if have[h] {
			continue
		}
		ident, err := quoteIdent(h)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, `ALTER TABLE submission_flat ADD COLUMN `+ident+` TEXT`); err != nil {
			return nil, fmt.Errorf("failed to add column %q: %w", h, err)
		}
	}
	return merged, nil
}

func (s *SQLSink) appendRow(ctx context.Context, tx *sql.Tx, submissionID string, headers []string, row models.FlatRow) error {
	cols := []string{`submission_id`}
	args := []any{submissionID}
	for _, h := range headers {
		ident, err := quoteIdent(h)
		if err != nil {
			return err
		}
		cols = append(cols, ident)
		args = append(args, row.Values[h])
	}

	marks := make([]string, len(args))
	for i := range marks {
		marks[i] = "?"
	}
	query := fmt.Sprintf(`INSERT INTO submission_flat (%s) VALUES (%s)`,
		strings.Join(cols, ", "), strings.Join(marks, ", "))

	if _, err := tx.ExecContext(ctx, s.rebind(query), args...); err != nil {
		return fmt.Errorf("failed to append flat row: %w", err)
	}
	return nil
}

// flatColumns returns submission_flat's answer columns in table order,
// excluding the key column.
func (s *SQLSink) flatColumns(ctx context.Context, tx *sql.Tx) ([]string, error) {
	query := `SELECT name FROM pragma_table_info('submission_flat') ORDER BY cid`
	if s.driver == "postgres" {
		query = `SELECT column_name FROM information_schema.columns WHERE table_name = 'submission_flat' ORDER BY ordinal_position`
	}

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read flat columns: %w", err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if name == "submission_id" {
			continue
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

// ExportCSV rebuilds the cumulative CSV from the stored JSON records, so
// the export always reflects the source of truth even if an earlier flat
// write was interrupted.
func (s *SQLSink) ExportCSV(ctx context.Context) ([]byte, error) {
	headers, cells, err := s.tabulate(ctx)
	if err != nil {
		return nil, err
	}
	return buildCSV(headers, cells)
}

// ExportXLSX rebuilds the cumulative workbook from the stored JSON records.
func (s *SQLSink) ExportXLSX(ctx context.Context) ([]byte, error) {
	headers, cells, err := s.tabulate(ctx)
	if err != nil {
		return nil, err
	}
	return buildXLSX(headers, cells)
}

func (s *SQLSink) tabulate(ctx context.Context) ([]string, [][]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM submission ORDER BY completed_at, id`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	defer rows.Close()

	var records []*models.SubmissionRecord
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, nil, err
		}
		var record models.SubmissionRecord
		if err := json.Unmarshal([]byte(body), &record); err != nil {
			return nil, nil, fmt.Errorf("failed to decode stored record: %w", err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	headers := export.Headers(s.reg)
	cells := make([][]string, 0, len(records))
	for _, record := range records {
		cells = append(cells, export.Align(export.Flatten(s.reg, record), headers))
	}
	return headers, cells, nil
}

func (s *SQLSink) Close() error { return s.db.Close() }

// rebind rewrites ? placeholders to $1.. for the postgres driver.
func (s *SQLSink) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// quoteIdent quotes a column name after checking it against the header
// charset the flattener produces. Anything else is rejected outright.
func quoteIdent(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty column name")
	}
	for _, r := range name {
		ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !ok {
			return "", fmt.Errorf("invalid column name %q", name)
		}
	}
	return `"` + name + `"`, nil
}
