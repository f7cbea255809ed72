// Package patterns implements the deterministic rule-based comment
// classifier. Every taxonomy is an ordered table of label+regex rules
// evaluated top to bottom against normalized text; the first matching rule
// wins within a taxonomy. Taxonomies are independent, so one comment may
// carry labels from several of them at once.
//
// Rules target Brazilian Portuguese (with some Spanish overlap) and are
// matched against Normalize(text): lowercase, diacritics stripped,
// punctuation preserved.
package patterns

import "regexp"

// labelRule pairs a category label with the patterns that select it.
type labelRule struct {
	label    string
	patterns []*regexp.Regexp
}

// matchFirst returns the label of the first rule with a matching pattern.
// Tables are ordered by priority; ordering is part of the contract.
func matchFirst(rules []labelRule, normalized string) (string, bool) {
	if normalized == "" {
		return "", false
	}
	for _, r := range rules {
		for _, p := range r.patterns {
			if p.MatchString(normalized) {
				return r.label, true
			}
		}
	}
	return "", false
}

// matchAny reports whether any pattern in the set matches.
func matchAny(patterns []*regexp.Regexp, normalized string) bool {
	if normalized == "" {
		return false
	}
	for _, p := range patterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}
