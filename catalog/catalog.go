// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tigee1311/sdoh-intake/models"
)

var (
	ErrDuplicateID            = errors.New("duplicate question id")
	ErrUnknownSection         = errors.New("unknown section")
	ErrUnregisteredDependency = errors.New("condition references a question not registered earlier")
	ErrDuplicateOptionCode    = errors.New("duplicate option code within question")
	ErrOptionsOnNonChoice     = errors.New("options are only valid on choice questions")
	ErrChoiceWithoutOptions   = errors.New("choice question has no options")
	ErrSelfReferencingVisible = errors.New("condition references the question's own id")
)

// Section is one display grouping with a fixed position and bilingual label.
type Section struct {
	Key     string
	LabelEN string
	LabelES string
}

// Label returns the section label in the given language.
func (s Section) Label(lang models.Language) string {
	if lang == models.LangES {
		return s.LabelES
	}
	return s.LabelEN
}

// Registry holds the ordered catalog of sections and questions. It is
// mutable only during startup registration; afterwards it is a process-wide
// read-only structure.
type Registry struct {
	sections  []Section
	questions []models.Question
	byID      map[string]int
	bySection map[string][]int
}

// New creates an empty registry with the given fixed section order.
func New(sections []Section) *Registry {
	r := &Registry{
		sections:  sections,
		byID:      make(map[string]int),
		bySection: make(map[string][]int),
	}
	for _, s := range sections {
		r.bySection[s.Key] = nil
	}
	return r
}

// Register appends a question to the registry. It refuses ambiguous
// schemas: duplicate IDs, unknown sections, duplicate option codes, and
// visibility conditions referencing questions that are not registered
// earlier are all configuration errors, fatal at startup.
func (r *Registry) Register(q models.Question) error {
	if _, exists := r.byID[q.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, q.ID)
	}
	if _, ok := r.bySection[q.Section]; !ok {
		return fmt.Errorf("%w: %q (question %q)", ErrUnknownSection, q.Section, q.ID)
	}
	switch q.Type {
	case models.TypeChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: %q", ErrChoiceWithoutOptions, q.ID)
		}
		seen := make(map[int]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Code == nil {
				continue
			}
			if seen[*o.Code] {
				return fmt.Errorf("%w: %q code %d", ErrDuplicateOptionCode, q.ID, *o.Code)
			}
			seen[*o.Code] = true
		}
	default:
		if len(q.Options) > 0 {
			return fmt.Errorf("%w: %q", ErrOptionsOnNonChoice, q.ID)
		}
	}
	if q.Visible != nil {
		for _, dep := range q.Visible.DependsOn() {
			if dep == q.ID {
				return fmt.Errorf("%w: %q", ErrSelfReferencingVisible, q.ID)
			}
			if _, ok := r.byID[dep]; !ok {
				return fmt.Errorf("%w: %q depends on %q", ErrUnregisteredDependency, q.ID, dep)
			}
		}
	}

	idx := len(r.questions)
	r.questions = append(r.questions, q)
	r.byID[q.ID] = idx
	r.bySection[q.Section] = append(r.bySection[q.Section], idx)
	return nil
}

// Questions returns every question in registry order.
func (r *Registry) Questions() []models.Question {
	return r.questions
}

// QuestionByID looks a question up by its stable id.
func (r *Registry) QuestionByID(id string) (models.Question, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return models.Question{}, false
	}
	return r.questions[idx], true
}

// QuestionsInSection returns the section's questions in registry order.
func (r *Registry) QuestionsInSection(section string) []models.Question {
	idxs := r.bySection[section]
	qs := make([]models.Question, 0, len(idxs))
	for _, i := range idxs {
		qs = append(qs, r.questions[i])
	}
	return qs
}

// SectionOrder returns the fixed display order of sections, independent of
// question registration order.
func (r *Registry) SectionOrder() []Section {
	return r.sections
}

// Len reports the number of registered questions.
func (r *Registry) Len() int { return len(r.questions) }

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in SDoH question registry, built exactly once.
// A registration error in the built-in catalog is a programming error and
// panics: the process must refuse to start with an ambiguous schema.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := New(sections)
		if err := registerAll(r); err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in registry: %v", err))
		}
		defaultReg = r
	})
	return defaultReg
}
