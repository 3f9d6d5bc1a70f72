// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package answers

import (
	"testing"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/models"
)

func TestCollectDropsHiddenAnswers(t *testing.T) {
	r := catalog.Default()

	// A never-smoker with a stale follow-up answer left over from a
	// changed earlier selection: the follow-up must not survive.
	raw := map[string]any{
		"tob_now_smoke": 3,
		"tob_100_cigs":  1,
	}

	set := Collect(r, raw, models.LangEN)

	if _, ok := set["tob_now_smoke"]; !ok {
		t.Error("Expected tob_now_smoke to be collected")
	}
	if _, ok := set["tob_100_cigs"]; ok {
		t.Error("Expected stale hidden answer tob_100_cigs to be dropped")
	}
}

func TestCollectKeepsOpenBranch(t *testing.T) {
	r := catalog.Default()

	raw := map[string]any{
		"tob_now_smoke": 1,
		"tob_100_cigs":  1,
	}

	set := Collect(r, raw, models.LangEN)

	if code, ok := set.Code("tob_100_cigs"); !ok || code != 1 {
		t.Errorf("Expected tob_100_cigs collected with code 1, got %d, %v", code, ok)
	}
}

func TestCollectAbsentIsUnanswered(t *testing.T) {
	r := catalog.Default()

	set := Collect(r, map[string]any{}, models.LangEN)
	if len(set) != 0 {
		t.Errorf("Expected empty set for empty input, got %d answers", len(set))
	}

	// Absent integer questions stay absent; they do not materialize
	// as zero.
	if _, ok := set["age_years"]; ok {
		t.Error("Expected age_years absent from the set")
	}
}

func TestCollectExplicitZeroInteger(t *testing.T) {
	r := catalog.Default()

	set := Collect(r, map[string]any{"age_years": 0}, models.LangEN)
	ans, ok := set["age_years"]
	if !ok {
		t.Fatal("Expected an explicit 0 to count as answered")
	}
	if ans.Int != 0 {
		t.Errorf("Int = %d, want 0", ans.Int)
	}
}

func TestCollectIgnoresUnknownIDs(t *testing.T) {
	r := catalog.Default()

	set := Collect(r, map[string]any{"no_such_question": 1}, models.LangEN)
	if len(set) != 0 {
		t.Errorf("Expected unknown ids to be ignored, got %d answers", len(set))
	}
}

func TestCollectMultiLevelChain(t *testing.T) {
	r := catalog.Default()

	// fs3a sits behind fs3; answering fs3a without fs3 affirm drops it.
	set := Collect(r, map[string]any{"fs3a": 1}, models.LangEN)
	if _, ok := set["fs3a"]; ok {
		t.Error("Expected fs3a dropped while fs3 is unanswered")
	}

	set = Collect(r, map[string]any{"fs3": 1, "fs3a": 1}, models.LangEN)
	if code, ok := set.Code("fs3a"); !ok || code != 1 {
		t.Errorf("Expected fs3a collected with code 1, got %d, %v", code, ok)
	}
}
