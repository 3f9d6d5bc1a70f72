// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "github.com/tigee1311/sdoh-intake/models"

// Score computes the USDA six-item food security index from the fixed
// item set fs1..fs5 plus the fs3a follow-up. Each affirmative item adds
// one point; fs3a adds a conditional point on top of fs3, so the raw
// score ranges 0-6. A missing or unanswered item contributes 0 and never
// errors.
//
// Categories: 0-1 affirmations is high or marginal food security, 2-4 is
// low, 5+ is very low.
func Score(a models.AnswerSet) models.DerivedScore {
	affirm := 0

	if codeIn(a, "fs1", 1, 2) {
		affirm++
	}
	if codeIn(a, "fs2", 1, 2) {
		affirm++
	}
	if codeIn(a, "fs3", 1) {
		affirm++
		if codeIn(a, "fs3a", 1, 2) {
			affirm++
		}
	}
	if codeIn(a, "fs4", 1) {
		affirm++
	}
	if codeIn(a, "fs5", 1) {
		affirm++
	}

	return models.DerivedScore{
		FoodSecurityRaw:      affirm,
		FoodSecurityCategory: categorize(affirm),
	}
}

func categorize(affirm int) string {
	switch {
	case affirm <= 1:
		return models.FoodSecurityHighOrMarginal
	case affirm <= 4:
		return models.FoodSecurityLow
	default:
		return models.FoodSecurityVeryLow
	}
}

func codeIn(a models.AnswerSet, id string, want ...int) bool {
	code, ok := a.Code(id)
	if !ok {
		return false
	}
	for _, w := range want {
		if code == w {
			return true
		}
	}
	return false
}
