// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take precedence; each unset flag falls back to its environment
variable, then to a default where one is safe:

  - PORT (-p): server port (default 3640)
  - STORAGE_DRIVER (-s): sqlite, postgres, or file (default sqlite)
  - DATABASE_URL (-d): sqlite DSN or postgres connection string
  - DATA_DIR (-data-dir): file-sink directory (default "data")
  - DOWNLOAD_KEY (-download-key): export download secret, required
*/
package cliparse
