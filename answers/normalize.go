// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package answers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/tigee1311/sdoh-intake/models"
)

// Normalize coerces one raw input value into the canonical Answer shape
// for the question's type. Normalization never fails loudly: a value that
// cannot be resolved (stale label after an option change, mid-fill
// language switch, malformed input) maps to the unanswered shape instead
// of raising, so a temporarily inconsistent client state cannot crash a
// form in progress.
func Normalize(q models.Question, raw any, lang models.Language) models.Answer {
	switch q.Type {
	case models.TypeChoice:
		return normalizeChoice(q, raw, lang)
	case models.TypeInteger:
		return models.Answer{Type: models.TypeInteger, Int: coerceInt(raw)}
	default:
		s, _ := raw.(string)
		return models.Answer{Type: models.TypeFreeText, Text: strings.TrimSpace(s)}
	}
}

// normalizeChoice resolves a selection to {code, label}. Selections are
// keyed by code so they survive a language switch; a bare label is still
// accepted and matched exactly against the option set in the active
// language. No match yields a nil code, distinct from every real option
// including ones whose code is 0.
func normalizeChoice(q models.Question, raw any, lang models.Language) models.Answer {
	ans := models.Answer{Type: models.TypeChoice}

	if code, ok := coerceCode(raw); ok {
		if o, found := q.OptionByCode(code); found {
			c := code
			ans.Code = &c
			ans.Label = o.Text(lang)
		}
		return ans
	}

	if label, ok := raw.(string); ok {
		if o, found := q.OptionByLabel(label, lang); found && o.Code != nil {
			c := *o.Code
			ans.Code = &c
			ans.Label = o.Text(lang)
		}
		return ans
	}

	return ans
}

// coerceCode extracts an integer option code from the JSON value shapes a
// client may send (number, numeric string).
func coerceCode(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// coerceInt coerces an integer answer. Values that do not parse, and
// negative values, coerce to 0 — the same default an untouched numeric
// widget reports.
func coerceInt(raw any) int {
	var n int
	switch v := raw.(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0
		}
		n = int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		n = i
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}
