package curation

import "github.com/placidasia/catalog-backend/internal/product"

// Engine applies context rules to product sets. It is pure: no I/O, no
// mutation of its inputs, and the registry is read-only after construction,
// so one Engine is safely shared across concurrent requests.
type Engine struct {
	rules map[string]Rule
}

func NewEngine() *Engine {
	return &Engine{rules: buildRegistry()}
}

// Rule returns the registered rule for a context, or the zero Rule (pure
// pass-through with the default sort) when none exists. The second return
// reports whether a bespoke rule was found.
func (e *Engine) Rule(contextType, contextKey string) (Rule, bool) {
	r, ok := e.rules[contextType+"/"+contextKey]
	return r, ok
}

// Curate filters and orders a product set for one listing context. The input
// slice is not modified; the result is ready for media normalization and
// display. An empty result is a valid outcome, not an error.
func (e *Engine) Curate(contextType, contextKey string, products []product.Product) []product.Product {
	rule, _ := e.Rule(contextType, contextKey)

	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if keep(rule, fieldsOf(p)) {
			out = append(out, p)
		}
	}

	sortProducts(out, rule.Sort)

	if rule.Limit > 0 && len(out) > rule.Limit {
		out = out[:rule.Limit]
	}
	return out
}

// keep runs the filter pipeline for one product: custom predicate first
// (short-circuiting on a decisive verdict), then category exclusions, then
// the keyword matcher.
func keep(rule Rule, f Fields) bool {
	if rule.Custom != nil {
		switch rule.Custom(f) {
		case VerdictInclude:
			return true
		case VerdictExclude:
			return false
		}
	}

	if containsAny(f.Category, rule.CategoryExclusions) {
		return false
	}

	if len(rule.Keywords) == 0 {
		return true
	}
	if rule.MatchAny {
		return matchAny(f, rule.Keywords)
	}
	return matchTier(f, rule.Keywords) != MatchNone
}
