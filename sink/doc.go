// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sink persists completed submissions and serves cumulative
exports.

# SQL Sink

SQLSink writes to postgres (lib/pq) or sqlite (modernc.org/sqlite)
through database/sql. One transaction per submission covers the JSON
source-of-truth row, append-only column reconciliation on the flat
mirror table, and the flat row append; a mutex serializes the
reconcile-then-append unit across concurrent submissions.

# File Sink

FileSink writes one pretty-printed UTF-8 JSON document per submission
and rebuilds responses.csv and responses.xlsx from every document on
disk after each write. The full-rebuild policy keeps the tabular files
consistent with the JSON source even if an export write was interrupted.

Both sinks expose ExportCSV and ExportXLSX for the gated download path;
exports are always re-flattened from stored records, never read back
from the tabular mirror.
*/
package sink
