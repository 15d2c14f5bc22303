package curation

import "strings"

// Match tiers, strongest first. The length thresholds keep short, common
// keywords like "sound" or "test" from triggering matches on their own.
type MatchTier int

const (
	MatchNone MatchTier = iota
	MatchWeak
	MatchMedium
	MatchStrong
)

const (
	strongMinKeywordLen = 5 // category hit needs len > 5
	mediumMinKeywordLen = 6 // title hit needs len > 6
	weakMinKeywordLen   = 5 // description hits need len > 5, and at least two of them
	weakMinHits         = 2
)

// matchTier scores one product against a keyword list. First tier to fire
// wins: a category hit is the strongest signal, a single specific title hit
// is good enough, and description hits need corroboration.
func matchTier(f Fields, keywords []string) MatchTier {
	for _, kw := range keywords {
		if len(kw) > strongMinKeywordLen && strings.Contains(f.Category, strings.ToLower(kw)) {
			return MatchStrong
		}
	}
	for _, kw := range keywords {
		if len(kw) > mediumMinKeywordLen && strings.Contains(f.Title, strings.ToLower(kw)) {
			return MatchMedium
		}
	}
	hits := 0
	for _, kw := range keywords {
		if len(kw) > weakMinKeywordLen && strings.Contains(f.Description, strings.ToLower(kw)) {
			hits++
		}
	}
	if hits >= weakMinHits {
		return MatchWeak
	}
	return MatchNone
}

// matchAny is the guide-page variant: any keyword appearing anywhere in the
// product's combined text counts, with no length thresholds.
func matchAny(f Fields, keywords []string) bool {
	text := f.Title + " " + f.Description + " " + f.Category
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
