package lives

import (
	"errors"
	"fmt"
	"strings"
)

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// ErrInvalidRule is returned by ParseRuleStrict for rule strings it cannot read.
var ErrInvalidRule = errors.New("lives: invalid rule")

// Rule maps a live-neighbor count to the birth and survival outcome.
type Rule struct {
	Birth    [MaxNeighbors + 1]bool
	Survival [MaxNeighbors + 1]bool
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{
	Birth:    [MaxNeighbors + 1]bool{3: true},
	Survival: [MaxNeighbors + 1]bool{2: true, 3: true},
}

// Next reports whether a cell is alive in the following generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > MaxNeighbors {
		return false
	}
	if alive {
		return r.Survival[neighbors]
	}
	return r.Birth[neighbors]
}

// String returns the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for i, on := range r.Birth {
		if on {
			b.WriteByte(byte('0' + i))
		}
	}
	b.WriteString("/S")
	for i, on := range r.Survival {
		if on {
			b.WriteByte(byte('0' + i))
		}
	}
	return b.String()
}

// ParseRule reads a B/S rule string. It never fails: unknown characters are
// skipped and a blank spec yields Conway. The legacy "23/3" survival/birth
// notation is accepted when no B or S letter is present.
func ParseRule(spec string) Rule {
	r, _ := parseRule(spec)
	return r
}

// ParseRuleStrict is like ParseRule but rejects characters outside the B/S
// grammar and the digit 9.
func ParseRuleStrict(spec string) (Rule, error) {
	r, problems := parseRule(spec)
	if len(problems) > 0 {
		return r, fmt.Errorf("%w %q: %w", ErrInvalidRule, spec, errors.Join(problems...))
	}
	return r, nil
}

func parseRule(spec string) (Rule, []error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Conway, nil
	}

	var (
		r        Rule
		problems []error
		target   *[MaxNeighbors + 1]bool
	)
	lettered := strings.ContainsAny(spec, "BbSs")
	if !lettered {
		// Legacy notation: survival digits come first.
		target = &r.Survival
	}
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		switch {
		case c == 'B' || c == 'b':
			target = &r.Birth
		case c == 'S' || c == 's':
			target = &r.Survival
		case c == '/':
			if !lettered {
				target = &r.Birth
			}
		case c >= '0' && c <= '8':
			if target == nil {
				problems = append(problems, fmt.Errorf("digit %c at %d has no B or S prefix", c, i))
				continue
			}
			target[c-'0'] = true
		case c == '9':
			problems = append(problems, fmt.Errorf("neighbor count 9 at %d out of range", i))
		case c == ' ' || c == '\t':
		default:
			problems = append(problems, fmt.Errorf("unexpected %q at %d", c, i))
		}
	}
	return r, problems
}
