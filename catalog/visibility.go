// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"log/slog"

	"github.com/tigee1311/sdoh-intake/models"
)

// IsVisible decides whether a question is currently shown given the
// answers collected so far. A question with no condition is a root
// question and is always visible.
//
// Evaluation fails open: if a condition panics, the question stays
// visible rather than silently dropping required content. A strictly
// false condition (e.g. a dependency that is simply unanswered) is
// not a failure and hides the question normally.
func IsVisible(q models.Question, answers models.AnswerSet) (visible bool) {
	if q.Visible == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("visibility condition panicked, failing open",
				"question_id", q.ID,
				"panic", r,
			)
			visible = true
		}
	}()
	return q.Visible.Eval(answers)
}

// VisibleIDs walks the registry in order and returns the IDs of every
// question whose condition holds against the answer set. Registry order
// matters: a condition for question N may reference any question before
// N, so chains (A enables B, B enables C) resolve in a single pass.
func VisibleIDs(r *Registry, answers models.AnswerSet) []string {
	ids := make([]string, 0, r.Len())
	for _, q := range r.Questions() {
		if IsVisible(q, answers) {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
