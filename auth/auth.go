// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidDownloadKey = errors.New("invalid download key")

// ValidateDownloadKey checks a provided key against the configured shared
// secret in constant time. The download path is a static shared-secret
// gate, not per-respondent authentication.
func ValidateDownloadKey(provided, expected string) error {
	if provided == "" || !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidDownloadKey
	}
	return nil
}
