// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/tigee1311/sdoh-intake/answers"
	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/middleware"
	"github.com/tigee1311/sdoh-intake/models"
)

type QuestionnaireHandler struct {
	reg *catalog.Registry
}

func NewQuestionnaireHandler(reg *catalog.Registry) *QuestionnaireHandler {
	return &QuestionnaireHandler{reg: reg}
}

// GetQuestionnaire handles GET /questionnaire?lang=en|es
//
// It returns the full localized catalog in display order: sections with
// their questions, options, and serialized branch conditions. Branch
// conditions are included so a client can re-evaluate visibility locally;
// POST /questionnaire/visibility is the authoritative server-side check.
func (h *QuestionnaireHandler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	lang := models.Language(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = models.LangEN
	}
	if !lang.Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lang must be en or es")
		return
	}

	resp := models.QuestionnaireResponse{
		InstrumentVersion: models.InstrumentVersion,
		Language:          lang,
	}

	number := 1
	for _, section := range h.reg.SectionOrder() {
		qs := h.reg.QuestionsInSection(section.Key)
		view := models.SectionView{
			Key:           section.Key,
			Label:         section.Label(lang),
			QuestionCount: len(qs),
		}
		for _, q := range qs {
			qv := models.QuestionView{
				ID:        q.ID,
				Number:    number,
				Text:      q.Text(lang),
				Type:      q.Type,
				Condition: q.Visible,
			}
			for _, o := range q.Options {
				qv.Options = append(qv.Options, models.OptionView{Code: o.Code, Label: o.Text(lang)})
			}
			view.Questions = append(view.Questions, qv)
			number++
		}
		resp.Sections = append(resp.Sections, view)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Visibility handles POST /questionnaire/visibility
//
// Given the respondent's in-progress raw answers it returns the IDs of
// every currently visible question, evaluated in registry order so
// multi-level branch chains resolve in one pass.
func (h *QuestionnaireHandler) Visibility(w http.ResponseWriter, r *http.Request) {
	var req models.VisibilityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lang := req.Language
	if lang == "" {
		lang = models.LangEN
	}
	if !lang.Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "language must be en or es")
		return
	}

	set := answers.Collect(h.reg, req.Answers, lang)
	middleware.JSONResponse(w, http.StatusOK, models.VisibilityResponse{
		Visible: catalog.VisibleIDs(h.reg, set),
	})
}
