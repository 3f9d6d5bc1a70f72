// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db provides SQL schema creation for the submission sink,
// covering both the postgres and sqlite drivers.
package db
