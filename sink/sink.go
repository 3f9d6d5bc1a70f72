// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"context"

	"github.com/tigee1311/sdoh-intake/models"
)

// Sink durably stores completed submissions and serves the cumulative
// tabular exports. Persist is all-or-nothing for one submission: it must
// not report success until the write is confirmed, and it appends exactly
// one row per call (partial submissions never reach a sink).
type Sink interface {
	Persist(ctx context.Context, record *models.SubmissionRecord, row models.FlatRow) error
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
	Close() error
}
