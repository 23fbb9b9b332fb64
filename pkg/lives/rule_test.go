package lives

import (
	"errors"
	"testing"
)

func TestParseRuleConway(t *testing.T) {
	r := ParseRule("B3/S23")
	wantBirth := [9]bool{false, false, false, true, false, false, false, false, false}
	wantSurvival := [9]bool{false, false, true, true, false, false, false, false, false}
	if r.Birth != wantBirth {
		t.Fatalf("birth = %v, want %v", r.Birth, wantBirth)
	}
	if r.Survival != wantSurvival {
		t.Fatalf("survival = %v, want %v", r.Survival, wantSurvival)
	}
	if r != Conway {
		t.Fatal("B3/S23 should equal Conway")
	}
}

func TestParseRuleOrderAndCaseInsensitive(t *testing.T) {
	for _, spec := range []string{"S23/B3", "b3/s23", " B3 / S23 ", "23/3"} {
		if got := ParseRule(spec); got != Conway {
			t.Fatalf("ParseRule(%q) = %s, want B3/S23", spec, got)
		}
	}
}

func TestParseRuleDefaultsToConway(t *testing.T) {
	if got := ParseRule(""); got != Conway {
		t.Fatalf("empty rule = %s, want Conway", got)
	}
	if got := ParseRule("   "); got != Conway {
		t.Fatalf("blank rule = %s, want Conway", got)
	}
}

func TestParseRuleIgnoresJunk(t *testing.T) {
	r := ParseRule("B369/S23x")
	if !r.Birth[3] || !r.Birth[6] {
		t.Fatalf("expected births 3 and 6, got %s", r)
	}
	if r.String() != "B36/S23" {
		t.Fatalf("String() = %q, want B36/S23", r.String())
	}
}

func TestParseRuleStrict(t *testing.T) {
	if _, err := ParseRuleStrict("B36/S23"); err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}
	_, err := ParseRuleStrict("B39/S2?")
	if !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
}

func TestRuleNext(t *testing.T) {
	if !Conway.Next(false, 3) {
		t.Fatal("dead cell with 3 neighbors should be born")
	}
	if Conway.Next(false, 2) {
		t.Fatal("dead cell with 2 neighbors should stay dead")
	}
	if !Conway.Next(true, 2) || !Conway.Next(true, 3) {
		t.Fatal("live cell with 2 or 3 neighbors should survive")
	}
	if Conway.Next(true, 4) || Conway.Next(true, 1) {
		t.Fatal("live cell with 1 or 4 neighbors should die")
	}
	if Conway.Next(true, 9) || Conway.Next(false, -1) {
		t.Fatal("out of range counts should be dead")
	}
}
