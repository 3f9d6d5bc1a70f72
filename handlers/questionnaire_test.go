// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/models"
	"github.com/tigee1311/sdoh-intake/testutil"
)

func TestGetQuestionnaire(t *testing.T) {
	h := NewQuestionnaireHandler(catalog.Default())

	w := httptest.NewRecorder()
	h.GetQuestionnaire(w, testutil.MakeRequest("GET", "/questionnaire", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.QuestionnaireResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Language != models.LangEN {
		t.Errorf("Default language = %q, want en", resp.Language)
	}
	if resp.InstrumentVersion != models.InstrumentVersion {
		t.Errorf("InstrumentVersion = %q", resp.InstrumentVersion)
	}
	if len(resp.Sections) == 0 {
		t.Fatal("Expected sections in the questionnaire")
	}

	// Numbering is global and consecutive across sections.
	number := 1
	total := 0
	for _, section := range resp.Sections {
		if section.QuestionCount != len(section.Questions) {
			t.Errorf("Section %q count mismatch: %d vs %d", section.Key, section.QuestionCount, len(section.Questions))
		}
		for _, q := range section.Questions {
			if q.Number != number {
				t.Errorf("Question %q number = %d, want %d", q.ID, q.Number, number)
			}
			number++
			total++
		}
	}
	if total != catalog.Default().Len() {
		t.Errorf("Questionnaire exposes %d questions, registry has %d", total, catalog.Default().Len())
	}
}

func TestGetQuestionnaireSpanish(t *testing.T) {
	h := NewQuestionnaireHandler(catalog.Default())

	w := httptest.NewRecorder()
	h.GetQuestionnaire(w, testutil.MakeRequest("GET", "/questionnaire?lang=es", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.QuestionnaireResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Language != models.LangES {
		t.Errorf("Language = %q, want es", resp.Language)
	}

	// Spot-check a localized option label.
	for _, section := range resp.Sections {
		for _, q := range section.Questions {
			if q.ID != "tob_100_cigs" {
				continue
			}
			labels := make([]string, 0, len(q.Options))
			for _, o := range q.Options {
				labels = append(labels, o.Label)
			}
			if !slices.Contains(labels, "Sí") {
				t.Errorf("Expected Spanish labels, got %v", labels)
			}
			return
		}
	}
	t.Fatal("tob_100_cigs not found in questionnaire")
}

func TestGetQuestionnaireInvalidLanguage(t *testing.T) {
	h := NewQuestionnaireHandler(catalog.Default())

	w := httptest.NewRecorder()
	h.GetQuestionnaire(w, testutil.MakeRequest("GET", "/questionnaire?lang=de", nil, nil))
	testutil.AssertStatus(t, w, 400)
}

func TestVisibility(t *testing.T) {
	h := NewQuestionnaireHandler(catalog.Default())

	body := models.VisibilityRequest{
		Language: models.LangEN,
		Answers:  map[string]any{"tob_now_smoke": 1},
	}

	w := httptest.NewRecorder()
	h.Visibility(w, testutil.MakeRequest("POST", "/questionnaire/visibility", body, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.VisibilityResponse
	testutil.AssertJSON(t, w, &resp)

	if !slices.Contains(resp.Visible, "tob_100_cigs") {
		t.Error("Expected tob_100_cigs visible for a current smoker")
	}
	if !slices.Contains(resp.Visible, "tob_now_smoke") {
		t.Error("Expected root question to always be visible")
	}
}

func TestVisibilityClosedBranch(t *testing.T) {
	h := NewQuestionnaireHandler(catalog.Default())

	body := models.VisibilityRequest{
		Language: models.LangEN,
		Answers:  map[string]any{"tob_now_smoke": 3},
	}

	w := httptest.NewRecorder()
	h.Visibility(w, testutil.MakeRequest("POST", "/questionnaire/visibility", body, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.VisibilityResponse
	testutil.AssertJSON(t, w, &resp)

	if slices.Contains(resp.Visible, "tob_100_cigs") {
		t.Error("Expected tob_100_cigs hidden for a never smoker")
	}
}

func TestVisibilityInvalidJSON(t *testing.T) {
	h := NewQuestionnaireHandler(catalog.Default())

	req := httptest.NewRequest("POST", "/questionnaire/visibility", nil)
	w := httptest.NewRecorder()
	h.Visibility(w, req)
	testutil.AssertStatus(t, w, 400)
}
