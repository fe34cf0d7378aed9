package rules

import (
	"path/filepath"
	"strings"

	"sortd/internal/config"
)

// Rule is a compiled category: a name, a destination folder, and the set of
// extensions it claims.
type Rule struct {
	Name        string
	Destination string
	Extensions  []string

	lookup map[string]struct{}
}

// Set is an ordered collection of rules. Order matches the configuration
// file and decides ties when an extension appears in multiple rules.
type Set struct {
	rules []Rule
}

// FromConfig compiles the configured categories into a rule set. The
// configuration is expected to be normalized (lowercased, dot-free,
// deduplicated extensions).
func FromConfig(cfg *config.Config) *Set {
	compiled := make([]Rule, 0, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		rule := Rule{
			Name:        cat.Name,
			Destination: cat.Destination,
			Extensions:  append([]string(nil), cat.Extensions...),
			lookup:      make(map[string]struct{}, len(cat.Extensions)),
		}
		for _, ext := range cat.Extensions {
			rule.lookup[ext] = struct{}{}
		}
		compiled = append(compiled, rule)
	}
	return &Set{rules: compiled}
}

// Rules returns the compiled rules in declaration order.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Match classifies a filename by its extension. The second return value is
// false when the file has no extension or no rule claims it.
func (s *Set) Match(filename string) (Rule, bool) {
	ext := NormalizeExtension(filepath.Ext(filename))
	if ext == "" {
		return Rule{}, false
	}
	for _, rule := range s.rules {
		if _, ok := rule.lookup[ext]; ok {
			return rule, true
		}
	}
	return Rule{}, false
}

// NormalizeExtension lowercases an extension and strips the leading dot.
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}
