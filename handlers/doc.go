// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the intake API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - QuestionnaireHandler: localized catalog and visibility evaluation
  - SubmissionHandler: the submit pipeline (collect, score, flatten, persist)
  - ExportHandler: gated CSV/XLSX downloads

# Questionnaire Flow

	GET /questionnaire?lang=es        → GetQuestionnaire
	POST /questionnaire/visibility    → Visibility

The catalog response carries each question's serialized branch condition;
the visibility endpoint is the server-side evaluation of the same
conditions against an in-progress answer map.

# Submission Flow

	POST /submissions → Submit

Submit runs the whole pipeline synchronously and reports success only
after the sink confirms the write. A sink failure surfaces as 502 with a
retry message; no row is duplicated on retry because nothing was written.

# Export Flow

	GET /exports/csv  → GetCSV
	GET /exports/xlsx → GetXLSX

Both require the X-Download-Key header matching the configured shared
secret.
*/
package handlers
