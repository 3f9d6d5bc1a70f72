// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth gates the export download path behind a static shared
// secret, compared in constant time.
package auth
