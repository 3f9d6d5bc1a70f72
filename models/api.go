// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

// SubmitRequest carries one completed submission. Answer values are raw
// per-question inputs keyed by question ID: choice questions submit the
// option code (number) or a displayed label (string), integer questions a
// non-negative number, free-text questions a string. Questions left
// untouched are simply absent from the map.
type SubmitRequest struct {
	Language Language       `json:"language"`
	Answers  map[string]any `json:"answers"`
}

// VisibilityRequest asks which questions are currently visible given the
// respondent's in-progress answers.
type VisibilityRequest struct {
	Language Language       `json:"language"`
	Answers  map[string]any `json:"answers"`
}

// Response types

type SubmitResponse struct {
	SubmissionID string       `json:"submission_id"`
	Derived      DerivedScore `json:"derived"`
	Message      string       `json:"message"`
}

type VisibilityResponse struct {
	Visible []string `json:"visible"`
}

// QuestionnaireResponse is the full localized catalog, in display order.
type QuestionnaireResponse struct {
	InstrumentVersion string        `json:"instrument_version"`
	Language          Language      `json:"language"`
	Sections          []SectionView `json:"sections"`
}

type SectionView struct {
	Key           string         `json:"key"`
	Label         string         `json:"label"`
	QuestionCount int            `json:"question_count"`
	Questions     []QuestionView `json:"questions"`
}

type QuestionView struct {
	ID        string       `json:"id"`
	Number    int          `json:"number"`
	Text      string       `json:"text"`
	Type      QuestionType `json:"type"`
	Options   []OptionView `json:"options,omitempty"`
	Condition Condition    `json:"condition,omitempty"`
}

type OptionView struct {
	Code  *int   `json:"code"`
	Label string `json:"label"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
