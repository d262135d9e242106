package phonemizer

import (
	"regexp"
	"strings"
)

// RuleKind tags how a Rule matches.
type RuleKind int

const (
	// RuleLiteral replaces every non-overlapping occurrence of a literal
	// substring.
	RuleLiteral RuleKind = iota
	// RuleRegex replaces every match of a regular expression. The
	// replacement may reference submatches ($1).
	RuleRegex
)

// Rule is a single substitution step.
type Rule struct {
	Kind    RuleKind
	Pattern string
	Replace string
	re      *regexp.Regexp
}

// Literal builds a literal substitution rule.
func Literal(pattern, replace string) Rule {
	return Rule{Kind: RuleLiteral, Pattern: pattern, Replace: replace}
}

// Regex builds a regular expression rule. It panics if expr does not
// compile, like regexp.MustCompile; tables are built at package init.
func Regex(expr, replace string) Rule {
	return Rule{
		Kind:    RuleRegex,
		Pattern: expr,
		Replace: replace,
		re:      regexp.MustCompile(expr),
	}
}

// Apply runs the rule over s. A regex Rule built as a struct literal is
// compiled on each call; one whose pattern does not compile leaves s as is.
func (r Rule) Apply(s string) string {
	switch r.Kind {
	case RuleRegex:
		re := r.re
		if re == nil {
			var err error
			if re, err = regexp.Compile(r.Pattern); err != nil {
				return s
			}
		}
		return re.ReplaceAllString(s, r.Replace)
	default:
		if r.Pattern == "" {
			return s
		}
		return strings.ReplaceAll(s, r.Pattern, r.Replace)
	}
}

// RuleTable is an ordered rule cascade. Each rule sees the output of the
// previous one, so order matters: a rule listed early can create or destroy
// text that later rules would match.
type RuleTable []Rule

// Apply runs every rule in table order.
func (t RuleTable) Apply(s string) string {
	for _, r := range t {
		s = r.Apply(s)
	}
	return s
}

// pairs builds a literal table from alternating pattern/replacement strings.
func pairs(kv ...string) RuleTable {
	if len(kv)%2 != 0 {
		panic("phonemizer: odd number of pattern/replacement strings")
	}
	t := make(RuleTable, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		t = append(t, Literal(kv[i], kv[i+1]))
	}
	return t
}

// join concatenates tables, keeping their order.
func join(tables ...RuleTable) RuleTable {
	var out RuleTable
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}
