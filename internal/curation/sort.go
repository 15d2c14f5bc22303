package curation

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/placidasia/catalog-backend/internal/product"
)

// TieBreak selects the comparison used within one priority bucket.
type TieBreak int

const (
	// TieStable keeps the incoming order (whatever the repository
	// returned, usually title_en ascending).
	TieStable TieBreak = iota
	TieSKU
	TieTitle
)

// SortSpec ranks products into priority buckets; lower buckets come first.
// The sort is always stable, so products in the same bucket keep their
// incoming order.
type SortSpec struct {
	Priority func(f Fields) int
	Tie      TieBreak
}

func sortProducts(products []product.Product, spec *SortSpec) {
	if spec == nil {
		sortDefault(products)
		return
	}
	fields := make([]Fields, len(products))
	for i, p := range products {
		fields[i] = fieldsOf(p)
	}
	idx := make([]int, len(products))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := spec.Priority(fields[idx[a]]), spec.Priority(fields[idx[b]])
		if pa != pb {
			return pa < pb
		}
		// Fields are already lowercased, so a plain byte compare gives
		// the same order as the case-insensitive collator in sortDefault
		// for the ASCII SKUs and titles rules match on.
		switch spec.Tie {
		case TieSKU:
			return fields[idx[a]].SKU < fields[idx[b]].SKU
		case TieTitle:
			return fields[idx[a]].Title < fields[idx[b]].Title
		default:
			return false
		}
	})
	reordered := make([]product.Product, len(products))
	for i, j := range idx {
		reordered[i] = products[j]
	}
	copy(products, reordered)
}

// sortDefault orders by title_en with a locale-aware comparison and breaks
// ties by SKU. A fresh collator per call because collators carry internal
// buffers and are not safe to share between requests.
func sortDefault(products []product.Product) {
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(products, func(i, j int) bool {
		if c := coll.CompareString(products[i].TitleEN, products[j].TitleEN); c != 0 {
			return c < 0
		}
		return products[i].SKU < products[j].SKU
	})
}

// PriorityBuckets builds a Priority function from ordered conditions: the
// first condition a product matches is its bucket, products matching none go
// last.
func PriorityBuckets(conds ...Cond) func(f Fields) int {
	return func(f Fields) int {
		for i, c := range conds {
			if c(f) {
				return i
			}
		}
		return len(conds)
	}
}
