// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Language tags for the bilingual instrument
type Language string

const (
	LangEN Language = "en"
	LangES Language = "es"
)

// Valid reports whether l is a supported language tag.
func (l Language) Valid() bool {
	return l == LangEN || l == LangES
}

// Question type constants
type QuestionType string

const (
	TypeChoice   QuestionType = "choice"
	TypeInteger  QuestionType = "integer"
	TypeFreeText QuestionType = "free_text"
)

// Food security category constants
const (
	FoodSecurityHighOrMarginal = "high_or_marginal"
	FoodSecurityLow            = "low"
	FoodSecurityVeryLow        = "very_low"
)

// InstrumentVersion identifies the question registry revision recorded
// with every submission.
const InstrumentVersion = "sdoh-bilingual-intake/1.0"

// Option is one selectable choice. Code is the persisted value and the
// only key used for branching; labels are display-only.
type Option struct {
	TextEN string
	TextES string
	Code   *int
}

// Text returns the option label in the given language.
func (o Option) Text(lang Language) string {
	if lang == LangES {
		return o.TextES
	}
	return o.TextEN
}

// Question is an immutable question definition. ID is globally unique and
// is the only stable join key for persisted data; text and ordering may
// change between instrument versions but an ID is never reused for a
// semantically different question.
type Question struct {
	ID      string
	Section string
	TextEN  string
	TextES  string
	Type    QuestionType
	Options []Option  // only for TypeChoice
	Visible Condition // nil means always visible
}

// Text returns the question prompt in the given language.
func (q Question) Text(lang Language) string {
	if lang == LangES {
		return q.TextES
	}
	return q.TextEN
}

// OptionByCode looks up an option by its persisted code.
func (q Question) OptionByCode(code int) (Option, bool) {
	for _, o := range q.Options {
		if o.Code != nil && *o.Code == code {
			return o, true
		}
	}
	return Option{}, false
}

// OptionByLabel looks up an option by exact label match in one language.
func (q Question) OptionByLabel(label string, lang Language) (Option, bool) {
	for _, o := range q.Options {
		if o.Text(lang) == label {
			return o, true
		}
	}
	return Option{}, false
}

// Answer is a normalized answer value. Exactly one shape is meaningful
// per question type: choice answers carry Code and Label (Code nil when
// nothing resolved, distinct from any real option including code 0),
// integer answers carry Int, free-text answers carry Text.
type Answer struct {
	Type  QuestionType `json:"type"`
	Code  *int         `json:"code,omitempty"`
	Label string       `json:"label,omitempty"`
	Int   int          `json:"int,omitempty"`
	Text  string       `json:"text,omitempty"`
}

// AnswerSet maps question IDs to normalized answers for one in-progress
// submission. A question absent from the set is unanswered.
type AnswerSet map[string]Answer

// Code returns the choice code for a question ID, with ok false when the
// question is unanswered or has no resolved code.
func (a AnswerSet) Code(id string) (int, bool) {
	ans, ok := a[id]
	if !ok || ans.Code == nil {
		return 0, false
	}
	return *ans.Code, true
}

// DerivedScore holds attributes computed once at submission time.
type DerivedScore struct {
	FoodSecurityRaw      int    `json:"food_security_raw_score"`
	FoodSecurityCategory string `json:"food_security_category"`
}

// SubmissionRecord is the immutable result of one completed submission.
// Corrections require a new record; nothing ever mutates a stored one.
type SubmissionRecord struct {
	ID                string       `json:"id"`
	CompletedAt       time.Time    `json:"completed_at"`
	Language          Language     `json:"language"`
	InstrumentVersion string       `json:"instrument_version"`
	Answers           AnswerSet    `json:"answers"`
	Derived           DerivedScore `json:"derived"`
}

// FlatRow is the tabular projection of a SubmissionRecord. Headers are in
// fixed registry-derived order; Values maps header name to the cell value
// ("" for unanswered).
type FlatRow struct {
	Headers []string
	Values  map[string]string
}
