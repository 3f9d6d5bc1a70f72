// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tigee1311/sdoh-intake/auth"
	"github.com/tigee1311/sdoh-intake/cliparse"
	"github.com/tigee1311/sdoh-intake/middleware"
	"github.com/tigee1311/sdoh-intake/sink"
)

type ExportHandler struct {
	sink sink.Sink
	cfg  cliparse.Config
}

func NewExportHandler(s sink.Sink, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{sink: s, cfg: cfg}
}

// GetCSV handles GET /exports/csv (requires X-Download-Key)
func (h *ExportHandler) GetCSV(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	body, err := h.sink.ExportCSV(r.Context())
	if err != nil {
		slog.Error("failed to build CSV export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="responses.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// GetXLSX handles GET /exports/xlsx (requires X-Download-Key)
func (h *ExportHandler) GetXLSX(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	body, err := h.sink.ExportXLSX(r.Context())
	if err != nil {
		slog.Error("failed to build XLSX export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="responses.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *ExportHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateDownloadKey(r.Header.Get("X-Download-Key"), h.cfg.DownloadKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid download key")
		return false
	}
	return true
}
