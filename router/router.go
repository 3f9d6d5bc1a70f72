// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/cliparse"
	"github.com/tigee1311/sdoh-intake/handlers"
	"github.com/tigee1311/sdoh-intake/middleware"
	"github.com/tigee1311/sdoh-intake/sink"
)

func NewRouter(reg *catalog.Registry, s sink.Sink, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionnaireHandler := handlers.NewQuestionnaireHandler(reg)
	submissionHandler := handlers.NewSubmissionHandler(reg, s)
	exportHandler := handlers.NewExportHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Questionnaire (public)
	mux.HandleFunc("GET /questionnaire", middleware.WithLogging(questionnaireHandler.GetQuestionnaire))
	mux.HandleFunc("POST /questionnaire/visibility", middleware.WithLogging(questionnaireHandler.Visibility))

	// Submissions (public)
	mux.HandleFunc("POST /submissions", middleware.WithLogging(submissionHandler.Submit))

	// Exports (gated by X-Download-Key)
	mux.HandleFunc("GET /exports/csv", middleware.WithLogging(exportHandler.GetCSV))
	mux.HandleFunc("GET /exports/xlsx", middleware.WithLogging(exportHandler.GetXLSX))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sdoh-intake API v1"))
	})

	return mux
}
