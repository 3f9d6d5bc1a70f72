// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tigee1311/sdoh-intake/answers"
	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/export"
	"github.com/tigee1311/sdoh-intake/middleware"
	"github.com/tigee1311/sdoh-intake/models"
	"github.com/tigee1311/sdoh-intake/scoring"
	"github.com/tigee1311/sdoh-intake/sink"
)

type SubmissionHandler struct {
	reg  *catalog.Registry
	sink sink.Sink
}

func NewSubmissionHandler(reg *catalog.Registry, s sink.Sink) *SubmissionHandler {
	return &SubmissionHandler{reg: reg, sink: s}
}

// Submit handles POST /submissions
//
// The full pipeline runs synchronously: collect+normalize the raw
// answers (dropping anything hidden behind a closed branch), score,
// assemble the immutable record, flatten, persist. Success is only
// reported after the sink confirms the write; on sink failure the
// respondent sees a visible error and may retry without duplicating
// rows, since nothing was written.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !req.Language.Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "language must be en or es")
		return
	}

	set := answers.Collect(h.reg, req.Answers, req.Language)

	record := &models.SubmissionRecord{
		ID:                uuid.NewString(),
		CompletedAt:       time.Now().UTC().Truncate(time.Second),
		Language:          req.Language,
		InstrumentVersion: models.InstrumentVersion,
		Answers:           set,
		Derived:           scoring.Score(set),
	}

	row := export.Flatten(h.reg, record)

	if err := h.sink.Persist(r.Context(), record, row); err != nil {
		slog.Error("failed to persist submission",
			"submission_id", record.ID,
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusBadGateway,
			"Your responses were not recorded. Please try submitting again.")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		SubmissionID: record.ID,
		Derived:      record.Derived,
		Message:      thankYou(req.Language),
	})
}

func thankYou(lang models.Language) string {
	if lang == models.LangES {
		return "¡Gracias! Sus respuestas fueron enviadas."
	}
	return "Thank you! Your responses were submitted."
}
