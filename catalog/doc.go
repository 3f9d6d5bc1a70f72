// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the static question registry and the visibility
evaluator for the bilingual SDoH instrument.

# Registry

The registry is the process-wide read-only catalog of sections and
questions. Default() builds the built-in instrument exactly once; tests
may construct their own registries via New and Register:

	r := catalog.New(sections)
	err := r.Register(q)

Register validates the schema at startup and refuses to proceed on
duplicate IDs, unknown sections, duplicate option codes, or a visibility
condition that references a question not registered earlier. Registry
order defines display/numbering order; section order is fixed in
sections.go independent of registration.

# Visibility

Branch conditions are declarative models.Condition values with declared
dependencies, so dependency ordering is validated statically at
registration. At evaluation time IsVisible still fails open to visible if
a condition panics; a condition that is merely false (for example because
its dependency is unanswered) hides the question as the instrument
intends.

	if catalog.IsVisible(q, answers) { ... }

VisibleIDs evaluates the whole registry in order, which makes multi-level
chains (A enables B, B enables C) resolve in one pass.
*/
package catalog
