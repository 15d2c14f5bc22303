// Package curation decides which products appear on a listing page and in
// what order. Every category, application, brand, and guide page runs its
// product set through one shared engine parameterized by a per-context rule;
// the rule content (slugs, substring lists, keyword lists) is product
// visibility data and must not be edited casually.
package curation

import (
	"strings"

	"github.com/placidasia/catalog-backend/internal/product"
)

// Verdict is a custom predicate's decision for one product. None defers to
// the generic pipeline steps.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictInclude
	VerdictExclude
)

// Fields is the lowercased text of one product, snapshotted once so every
// predicate and matcher works on the same normalized view.
type Fields struct {
	SKU         string
	Title       string
	Description string
	Category    string
	Supplier    string
}

func fieldsOf(p product.Product) Fields {
	return Fields{
		SKU:         strings.ToLower(p.SKU),
		Title:       strings.ToLower(p.TitleEN),
		Description: strings.ToLower(p.DescriptionEN),
		Category:    strings.ToLower(p.CategoryName()),
		Supplier:    strings.ToLower(p.SupplierName()),
	}
}

// Predicate is hand-authored per-context logic that runs before the generic
// pipeline and may short-circuit it for a product.
type Predicate func(f Fields) Verdict

// Rule is the declarative configuration for one context.
type Rule struct {
	// Custom runs first; Include and Exclude verdicts short-circuit the
	// remaining steps, so a force-include beats a category exclusion.
	Custom Predicate
	// CategoryExclusions drops products whose category contains any of
	// these substrings.
	CategoryExclusions []string
	// Keywords feed the tiered matcher. Empty means the matcher step is
	// skipped (the caller already scoped the product set).
	Keywords []string
	// MatchAny switches the matcher to plain any-keyword containment over
	// title+description+category, ignoring tier thresholds. Guide pages
	// use this.
	MatchAny bool
	Sort     *SortSpec
	Limit    int
}

// --- predicate building blocks -------------------------------------------

type Cond func(f Fields) bool

func SKUContains(subs ...string) Cond {
	return func(f Fields) bool { return containsAny(f.SKU, subs) }
}

func TitleContains(subs ...string) Cond {
	return func(f Fields) bool { return containsAny(f.Title, subs) }
}

func CategoryContains(subs ...string) Cond {
	return func(f Fields) bool { return containsAny(f.Category, subs) }
}

func SupplierContains(subs ...string) Cond {
	return func(f Fields) bool { return containsAny(f.Supplier, subs) }
}

func AnyOf(conds ...Cond) Cond {
	return func(f Fields) bool {
		for _, c := range conds {
			if c(f) {
				return true
			}
		}
		return false
	}
}

func AllOf(conds ...Cond) Cond {
	return func(f Fields) bool {
		for _, c := range conds {
			if !c(f) {
				return false
			}
		}
		return true
	}
}

// ForceInclude keeps any matching product regardless of the later steps.
func ForceInclude(cond Cond) Predicate {
	return func(f Fields) Verdict {
		if cond(f) {
			return VerdictInclude
		}
		return VerdictNone
	}
}

// ForceExclude drops any matching product.
func ForceExclude(cond Cond) Predicate {
	return func(f Fields) Verdict {
		if cond(f) {
			return VerdictExclude
		}
		return VerdictNone
	}
}

// Only keeps products matching the condition and drops everything else; the
// condition is an exhaustive allow-list for the context.
func Only(cond Cond) Predicate {
	return func(f Fields) Verdict {
		if cond(f) {
			return VerdictInclude
		}
		return VerdictExclude
	}
}

// Chain runs predicates in order; the first decisive verdict wins.
func Chain(preds ...Predicate) Predicate {
	return func(f Fields) Verdict {
		for _, p := range preds {
			if v := p(f); v != VerdictNone {
				return v
			}
		}
		return VerdictNone
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
