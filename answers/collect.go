// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package answers

import (
	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/models"
)

// Collect builds the normalized AnswerSet for one submission. It walks
// the registry in order so that every visibility condition sees the
// answers of all earlier questions, then normalizes the raw value of each
// currently visible question.
//
// Raw values for hidden questions are dropped: a stale answer behind a
// closed branch (the respondent changed an earlier answer) must not count
// as answered for scoring or export. A question id absent from raw is
// unanswered and contributes nothing to the set.
func Collect(r *catalog.Registry, raw map[string]any, lang models.Language) models.AnswerSet {
	set := make(models.AnswerSet, len(raw))
	for _, q := range r.Questions() {
		if !catalog.IsVisible(q, set) {
			continue
		}
		value, ok := raw[q.ID]
		if !ok {
			continue
		}
		set[q.ID] = Normalize(q, value, lang)
	}
	return set
}
