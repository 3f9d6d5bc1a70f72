// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/models"
	"github.com/tigee1311/sdoh-intake/sink"
	"github.com/tigee1311/sdoh-intake/testutil"
)

func TestRoutes(t *testing.T) {
	reg := catalog.Default()
	s := sink.NewSQLSink(testutil.SetupTestDB(t), "sqlite", reg)
	mux := NewRouter(reg, s, testutil.GetTestConfig())

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		headers    map[string]string
		wantStatus int
	}{
		{"health", "GET", "/health", nil, nil, 200},
		{"root banner", "GET", "/", nil, nil, 200},
		{"questionnaire", "GET", "/questionnaire", nil, nil, 200},
		{"questionnaire spanish", "GET", "/questionnaire?lang=es", nil, nil, 200},
		{"visibility", "POST", "/questionnaire/visibility",
			models.VisibilityRequest{Language: models.LangEN, Answers: map[string]any{}}, nil, 200},
		{"visibility wrong method", "DELETE", "/questionnaire/visibility", nil, nil, 405},
		{"health wrong method", "POST", "/health", nil, nil, 405},
		{"submit", "POST", "/submissions",
			models.SubmitRequest{Language: models.LangEN, Answers: map[string]any{"age_years": 30}}, nil, 201},
		{"submit wrong method", "DELETE", "/submissions", nil, nil, 405},
		{"export csv without key", "GET", "/exports/csv", nil, nil, 401},
		{"export csv", "GET", "/exports/csv", nil,
			map[string]string{"X-Download-Key": "test-download-key"}, 200},
		{"export xlsx without key", "GET", "/exports/xlsx", nil, nil, 401},
		{"export xlsx", "GET", "/exports/xlsx", nil,
			map[string]string{"X-Download-Key": "test-download-key"}, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tt.method, tt.path, tt.body, tt.headers))
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestSubmitThenExportRoundtrip(t *testing.T) {
	reg := catalog.Default()
	s := sink.NewSQLSink(testutil.SetupTestDB(t), "sqlite", reg)
	mux := NewRouter(reg, s, testutil.GetTestConfig())

	submit := models.SubmitRequest{
		Language: models.LangES,
		Answers: map[string]any{
			"fs1": 1, "fs2": 1, "fs3": 1, "fs3a": 1, "fs4": 1, "fs5": 1,
		},
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/submissions", submit, nil))
	testutil.AssertStatus(t, w, 201)

	var resp models.SubmitResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Derived.FoodSecurityRaw != 6 {
		t.Errorf("FoodSecurityRaw = %d, want 6", resp.Derived.FoodSecurityRaw)
	}
	if resp.Derived.FoodSecurityCategory != models.FoodSecurityVeryLow {
		t.Errorf("FoodSecurityCategory = %q", resp.Derived.FoodSecurityCategory)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/exports/csv", nil, map[string]string{
		"X-Download-Key": "test-download-key",
	}))
	testutil.AssertStatus(t, w, 200)

	body := w.Body.String()
	for _, want := range []string{"fs1__code", "very_low", "es"} {
		if !strings.Contains(body, want) {
			t.Errorf("CSV export missing %q", want)
		}
	}
}
