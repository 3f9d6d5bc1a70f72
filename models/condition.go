// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// Condition is a visibility predicate over an AnswerSet. Conditions are
// declarative values rather than opaque closures so that the registry can
// validate at startup that every referenced question is registered earlier,
// and so the questionnaire endpoint can serialize them for clients.
//
// Eval must be a pure function of the AnswerSet snapshot. Referencing an
// unanswered question is not an error: each condition defines its own
// null behavior (CodeIn and AnsweredNot both evaluate false on null).
type Condition interface {
	Eval(answers AnswerSet) bool
	DependsOn() []string
}

// CodeIn is true when the referenced choice question has a resolved code
// contained in Codes. Unanswered (nil code) is strictly false; this is the
// literal branch semantics of the instrument, not an evaluator failure.
func CodeIn(questionID string, codes ...int) Condition {
	return codeIn{QuestionID: questionID, Codes: codes}
}

// AnsweredNot is true when the referenced question has a resolved code and
// that code is not contained in Codes. Unanswered is false.
func AnsweredNot(questionID string, codes ...int) Condition {
	return answeredNot{QuestionID: questionID, Codes: codes}
}

// AllOf is true when every sub-condition is true.
func AllOf(conds ...Condition) Condition {
	return allOf{Conditions: conds}
}

type codeIn struct {
	QuestionID string `json:"question_id"`
	Codes      []int  `json:"codes"`
}

func (c codeIn) Eval(answers AnswerSet) bool {
	code, ok := answers.Code(c.QuestionID)
	if !ok {
		return false
	}
	for _, want := range c.Codes {
		if code == want {
			return true
		}
	}
	return false
}

func (c codeIn) DependsOn() []string { return []string{c.QuestionID} }

func (c codeIn) MarshalJSON() ([]byte, error) {
	type alias codeIn
	return marshalKind("code_in", alias(c))
}

type answeredNot struct {
	QuestionID string `json:"question_id"`
	Codes      []int  `json:"codes"`
}

func (c answeredNot) Eval(answers AnswerSet) bool {
	code, ok := answers.Code(c.QuestionID)
	if !ok {
		return false
	}
	for _, not := range c.Codes {
		if code == not {
			return false
		}
	}
	return true
}

func (c answeredNot) DependsOn() []string { return []string{c.QuestionID} }

func (c answeredNot) MarshalJSON() ([]byte, error) {
	type alias answeredNot
	return marshalKind("answered_not", alias(c))
}

type allOf struct {
	Conditions []Condition `json:"conditions"`
}

func (c allOf) Eval(answers AnswerSet) bool {
	for _, sub := range c.Conditions {
		if !sub.Eval(answers) {
			return false
		}
	}
	return true
}

func (c allOf) DependsOn() []string {
	var deps []string
	for _, sub := range c.Conditions {
		deps = append(deps, sub.DependsOn()...)
	}
	return deps
}

func (c allOf) MarshalJSON() ([]byte, error) {
	type alias allOf
	return marshalKind("all_of", alias(c))
}

// marshalKind wraps a condition payload with its discriminator tag.
func marshalKind(kind string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	m["kind"] = json.RawMessage(`"` + kind + `"`)
	return json.Marshal(m)
}
