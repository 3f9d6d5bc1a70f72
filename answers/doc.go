// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package answers normalizes raw respondent input into canonical Answer
values.

Normalize handles one value for one question: choice selections resolve
by code (or exact label in the active language) to {code, label}, integers
coerce to non-negative ints with 0 as the untouched default, free text is
trimmed. Unresolvable values map to the unanswered shape rather than
erroring.

Collect applies Normalize across a whole submission in registry order,
evaluating visibility as it goes so answers hidden behind a closed branch
are discarded before scoring and export.
*/
package answers
