// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export maps submission records onto the stable tabular schema.

Headers derives the full column set from the registry: timestamp and
language lead, each choice question contributes <id>__code and
<id>__label, each integer or free-text question contributes <id>, and the
two derived food-security columns trail. Flatten fills those columns for
one record, writing "" for anything unanswered.

ReconcileHeaders merges the required columns into whatever a sink already
has, append-only and idempotent, so the schema can grow across releases
without breaking the alignment of rows written earlier.
*/
package export
