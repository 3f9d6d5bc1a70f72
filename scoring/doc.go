// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package scoring computes derived attributes from a completed answer
// set. The only derived index today is the USDA six-item food security
// score and category; it is computed exactly once, at submission time.
package scoring
