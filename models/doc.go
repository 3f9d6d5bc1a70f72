// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the intake
service.

# Domain Types

Internal data structures:

  - Option: bilingual choice with a persisted integer code
  - Question: immutable definition (id, section, bilingual text, type,
    options, visibility condition)
  - Condition: declarative visibility predicate (CodeIn, AnsweredNot, AllOf)
  - Answer / AnswerSet: normalized answer values for one submission
  - DerivedScore: food security raw score and category
  - SubmissionRecord: immutable completed submission
  - FlatRow: tabular projection (headers + column values)

# Request Types

Types for parsing incoming JSON:

  - SubmitRequest: language plus raw answers keyed by question id
  - VisibilityRequest: in-progress answers for branch re-evaluation

# Response Types

Types for JSON responses:

  - SubmitResponse: submission_id, derived score, localized message
  - VisibilityResponse: currently visible question ids
  - QuestionnaireResponse: localized sections, questions, options, conditions
  - ErrorResponse: error, message

# Constants

Languages:

	LangEN Language = "en"
	LangES Language = "es"

Question types:

	TypeChoice   QuestionType = "choice"
	TypeInteger  QuestionType = "integer"
	TypeFreeText QuestionType = "free_text"

Food security categories:

	FoodSecurityHighOrMarginal = "high_or_marginal"
	FoodSecurityLow            = "low"
	FoodSecurityVeryLow        = "very_low"
*/
package models
