// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"strconv"
	"time"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/models"
)

// Fixed leading and trailing columns of every flat row.
const (
	ColTimestamp                   = "timestamp"
	ColLanguage                    = "language"
	ColDerivedFoodSecurityRaw      = "derived_food_security_raw"
	ColDerivedFoodSecurityCategory = "derived_food_security_category"
)

// codeSuffix and labelSuffix form the two column names of a choice
// question: <id>__code and <id>__label.
const (
	codeSuffix  = "__code"
	labelSuffix = "__label"
)

// Headers returns the full stable column set for the registry, in fixed
// order: timestamp and language first, then per question in registry
// order (two columns for a choice question, one otherwise), then the two
// derived columns. The set is a function of the registry alone — every
// column is present regardless of which questions were visible or
// answered in any particular submission.
func Headers(r *catalog.Registry) []string {
	headers := []string{ColTimestamp, ColLanguage}
	for _, q := range r.Questions() {
		if q.Type == models.TypeChoice {
			headers = append(headers, q.ID+codeSuffix, q.ID+labelSuffix)
		} else {
			headers = append(headers, q.ID)
		}
	}
	return append(headers, ColDerivedFoodSecurityRaw, ColDerivedFoodSecurityCategory)
}

// Flatten projects a SubmissionRecord into a FlatRow aligned to
// Headers(r). Unanswered questions produce empty-string cells; an
// answered integer is written verbatim, including an explicit 0.
func Flatten(r *catalog.Registry, record *models.SubmissionRecord) models.FlatRow {
	headers := Headers(r)
	values := make(map[string]string, len(headers))

	values[ColTimestamp] = record.CompletedAt.Format(time.RFC3339)
	values[ColLanguage] = string(record.Language)

	for _, q := range r.Questions() {
		ans, answered := record.Answers[q.ID]
		switch q.Type {
		case models.TypeChoice:
			codeCol, labelCol := q.ID+codeSuffix, q.ID+labelSuffix
			if answered && ans.Code != nil {
				values[codeCol] = strconv.Itoa(*ans.Code)
				values[labelCol] = ans.Label
			} else {
				values[codeCol] = ""
				values[labelCol] = ""
			}
		case models.TypeInteger:
			if answered {
				values[q.ID] = strconv.Itoa(ans.Int)
			} else {
				values[q.ID] = ""
			}
		default:
			if answered {
				values[q.ID] = ans.Text
			} else {
				values[q.ID] = ""
			}
		}
	}

	values[ColDerivedFoodSecurityRaw] = strconv.Itoa(record.Derived.FoodSecurityRaw)
	values[ColDerivedFoodSecurityCategory] = record.Derived.FoodSecurityCategory

	return models.FlatRow{Headers: headers, Values: values}
}

// Align orders a row's cells to the given header sequence, filling "" for
// headers the row has no value for (older rows against a grown schema).
func Align(row models.FlatRow, headers []string) []string {
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = row.Values[h]
	}
	return cells
}
