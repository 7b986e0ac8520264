package pattern

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled regular expression with the matching mode the rule
// language expects.
//
// Contract:
// - Concurrency: a compiled Pattern is safe for concurrent use.
// - Errors: Compile reports malformed expressions; Search never errors.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Compile compiles expr. When caseSensitive is false the whole expression is
// matched case-insensitively.
func Compile(expr string, caseSensitive bool) (*Pattern, error) {
	src := expr
	if !caseSensitive {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("pattern: compile %q: %w", expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics on a malformed expression. Intended
// for patterns fixed at program start.
func MustCompile(expr string, caseSensitive bool) *Pattern {
	p, err := Compile(expr, caseSensitive)
	if err != nil {
		panic(err)
	}
	return p
}

// Search returns the number of non-overlapping matches of the pattern in text.
func (p *Pattern) Search(text string) int {
	return len(p.re.FindAllStringIndex(text, -1))
}

// MatchString reports whether the pattern matches anywhere in text.
func (p *Pattern) MatchString(text string) bool {
	return p.re.MatchString(text)
}

// String returns the source expression the pattern was compiled from.
func (p *Pattern) String() string {
	return p.expr
}
