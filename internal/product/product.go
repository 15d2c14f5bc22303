package product

import "encoding/json"

// Product is one catalog item. The SKU is the stable, human-assigned key that
// every curation rule references; database row identity is never exposed.
// JSON tags follow the snake_case convention of the public API.
type Product struct {
	SKU           string   `json:"sku"`
	TitleEN       string   `json:"title_en"`
	TitleTH       *string  `json:"title_th,omitempty"`
	DescriptionEN string   `json:"description_en"`
	DescriptionTH *string  `json:"description_th,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Supplier      *string  `json:"supplier,omitempty"`
	Images        []string `json:"images"`
	PDFs          []string `json:"pdfs"`
	Featured      bool     `json:"featured"`
	Active        bool     `json:"active"`
	CreatedAt     *string  `json:"created_at,omitempty"`
	UpdatedAt     *string  `json:"updated_at,omitempty"`
}

// CategoryName returns the category label or "" when unset.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return *p.Category
}

// SupplierName returns the supplier label or "" when unset.
func (p Product) SupplierName() string {
	if p.Supplier == nil {
		return ""
	}
	return *p.Supplier
}

// ParseMediaList normalizes a media column into a list of URLs. The column may
// hold a JSON array serialized as text, or be empty/NULL/garbage from older
// imports. A single bad product must not break a listing page, so malformed
// input yields an empty list rather than an error.
func ParseMediaList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return []string{}
	}
	if urls == nil {
		return []string{}
	}
	return urls
}

// EncodeMediaList serializes a URL list back into the text column format.
func EncodeMediaList(urls []string) string {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// NormalizeMedia ensures every product carries non-nil media slices before it
// is handed to a renderer.
func NormalizeMedia(products []Product) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	for i := range out {
		if out[i].Images == nil {
			out[i].Images = []string{}
		}
		if out[i].PDFs == nil {
			out[i].PDFs = []string{}
		}
	}
	return out
}
