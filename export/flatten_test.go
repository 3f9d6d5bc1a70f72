// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/models"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()

	one, two := 1, 2
	yn := []models.Option{
		{TextEN: "Yes", TextES: "Sí", Code: &one},
		{TextEN: "No", TextES: "No", Code: &two},
	}

	r := catalog.New([]catalog.Section{{Key: "s", LabelEN: "S", LabelES: "S"}})
	qs := []models.Question{
		{ID: "color", Section: "s", TextEN: "Q", TextES: "P", Type: models.TypeChoice, Options: yn},
		{ID: "age", Section: "s", TextEN: "Q", TextES: "P", Type: models.TypeInteger},
		{ID: "notes", Section: "s", TextEN: "Q", TextES: "P", Type: models.TypeFreeText},
	}
	for _, q := range qs {
		if err := r.Register(q); err != nil {
			t.Fatalf("Registration failed: %v", err)
		}
	}
	return r
}

func TestHeaders(t *testing.T) {
	r := testRegistry(t)

	want := []string{
		ColTimestamp, ColLanguage,
		"color__code", "color__label",
		"age",
		"notes",
		ColDerivedFoodSecurityRaw, ColDerivedFoodSecurityCategory,
	}
	got := Headers(r)
	if !slices.Equal(got, want) {
		t.Errorf("Headers() = %v, want %v", got, want)
	}
}

func TestHeadersCountFormula(t *testing.T) {
	// Fixed columns + two per choice question + one per other question.
	r := catalog.Default()

	choices, others := 0, 0
	for _, q := range r.Questions() {
		if q.Type == models.TypeChoice {
			choices++
		} else {
			others++
		}
	}

	want := 2 + 2*choices + others + 2
	if got := len(Headers(r)); got != want {
		t.Errorf("len(Headers) = %d, want %d", got, want)
	}
}

func TestFlatten(t *testing.T) {
	r := testRegistry(t)

	one := 1
	record := &models.SubmissionRecord{
		ID:                "sub-1",
		CompletedAt:       time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		Language:          models.LangES,
		InstrumentVersion: models.InstrumentVersion,
		Answers: models.AnswerSet{
			"color": {Type: models.TypeChoice, Code: &one, Label: "Sí"},
			"age":   {Type: models.TypeInteger, Int: 0},
			"notes": {Type: models.TypeFreeText, Text: "hola"},
		},
		Derived: models.DerivedScore{FoodSecurityRaw: 2, FoodSecurityCategory: models.FoodSecurityLow},
	}

	row := Flatten(r, record)

	checks := map[string]string{
		ColTimestamp:                   "2025-06-15T10:30:00Z",
		ColLanguage:                    "es",
		"color__code":                  "1",
		"color__label":                 "Sí",
		"age":                          "0", // explicit zero is a real answer
		"notes":                        "hola",
		ColDerivedFoodSecurityRaw:      "2",
		ColDerivedFoodSecurityCategory: "low",
	}
	for col, want := range checks {
		if got := row.Values[col]; got != want {
			t.Errorf("Values[%q] = %q, want %q", col, got, want)
		}
	}
}

func TestFlattenUnanswered(t *testing.T) {
	r := testRegistry(t)

	record := &models.SubmissionRecord{
		ID:          "sub-2",
		CompletedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		Language:    models.LangEN,
		Answers:     models.AnswerSet{},
	}

	row := Flatten(r, record)

	// Every registry column is present and empty, including both halves
	// of the choice pair.
	for _, col := range []string{"color__code", "color__label", "age", "notes"} {
		got, ok := row.Values[col]
		if !ok {
			t.Errorf("Column %q missing from flat row", col)
		}
		if got != "" {
			t.Errorf("Values[%q] = %q, want empty", col, got)
		}
	}
}

func TestAlign(t *testing.T) {
	row := models.FlatRow{Values: map[string]string{"a": "1", "b": "2"}}

	cells := Align(row, []string{"a", "new_col", "b"})
	want := []string{"1", "", "2"}
	if !slices.Equal(cells, want) {
		t.Errorf("Align() = %v, want %v", cells, want)
	}
}

func TestReconcileHeaders(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		required []string
		want     []string
	}{
		{
			name:     "empty existing takes required order",
			existing: nil,
			required: []string{"a", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:     "idempotent on identical sets",
			existing: []string{"a", "b"},
			required: []string{"a", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:     "new headers append at the end",
			existing: []string{"a", "b"},
			required: []string{"a", "b", "c"},
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "existing order wins over required order",
			existing: []string{"b", "a"},
			required: []string{"a", "b", "c"},
			want:     []string{"b", "a", "c"},
		},
		{
			name:     "retired headers are kept",
			existing: []string{"a", "old"},
			required: []string{"a", "b"},
			want:     []string{"a", "old", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileHeaders(tt.existing, tt.required)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReconcileHeaders() = %v, want %v", got, tt.want)
			}

			// Reconciling again must be a no-op.
			again := ReconcileHeaders(got, tt.required)
			if !slices.Equal(again, got) {
				t.Errorf("Second reconcile changed the result: %v -> %v", got, again)
			}
		})
	}
}

func TestHeadersMatchQuoteableCharset(t *testing.T) {
	// Header names double as SQL column names; keep them boring.
	for _, h := range Headers(catalog.Default()) {
		for _, r := range h {
			ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			if !ok {
				t.Errorf("Header %q contains unexpected rune %q", h, r)
			}
		}
		if strings.Contains(h, " ") {
			t.Errorf("Header %q contains whitespace", h)
		}
	}
}
