// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

// ReconcileHeaders merges required headers into a sink's existing column
// set. The merge is append-only: existing columns keep their positions so
// previously written rows stay aligned, and every required header not
// already present is appended at the end. Nothing is ever reordered or
// removed, which keeps a growing question registry from corrupting rows
// written by earlier releases.
//
// The operation is idempotent: reconciling the result with the same
// required set returns it unchanged.
func ReconcileHeaders(existing, required []string) []string {
	if len(existing) == 0 {
		return append([]string(nil), required...)
	}

	merged := append([]string(nil), existing...)
	seen := make(map[string]bool, len(merged))
	for _, h := range merged {
		seen[h] = true
	}
	for _, h := range required {
		if !seen[h] {
			merged = append(merged, h)
			seen[h] = true
		}
	}
	return merged
}
