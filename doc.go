// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the SDoH intake API server.

SDoH Intake serves a bilingual (English/Spanish) social-determinants-of-health
questionnaire: it publishes the question catalog, evaluates conditional
visibility as respondents answer, scores the USDA six-item food security
module, and persists flattened submissions for export.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DOWNLOAD_KEY=... go run main.go

Or with flags:

	go run main.go -p 3640 -s postgres -d "postgres://..."

# Configuration

Required settings:

  - DOWNLOAD_KEY (--download-key): Shared secret for export downloads

Optional settings:

  - PORT (-p): Server port (default: 3640)
  - STORAGE_DRIVER (-s): sqlite, postgres, or file (default: sqlite)
  - DATABASE_URL (-d): sqlite DSN or PostgreSQL connection string
  - DATA_DIR (--data-dir): Directory for the file sink (default: data)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - catalog: Question registry, sections, and visibility rules
  - answers: Raw answer normalization and collection
  - scoring: Food security raw score and category
  - export: Record flattening and header reconciliation
  - sink: Storage backends (SQL and file) with CSV/XLSX export
  - handlers: HTTP request handlers (questionnaire, submissions, exports)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - auth: Download key validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
