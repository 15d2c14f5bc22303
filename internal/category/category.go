package category

// Category is one node of the catalog taxonomy. Slug is the URL identity;
// NameEN is the label products reference in their category column.
type Category struct {
	ID           int     `json:"id"`
	Slug         string  `json:"slug"`
	NameEN       string  `json:"name_en"`
	NameTH       *string `json:"name_th,omitempty"`
	Description  *string `json:"description,omitempty"`
	ParentID     *int    `json:"parent_id,omitempty"`
	Active       bool    `json:"active"`
	ProductCount int     `json:"product_count"`
}

// ProductCategory links a product to a category. A product may sit in several
// categories but exactly one of them is primary; the primary one is what the
// product row's category column mirrors.
type ProductCategory struct {
	ProductSKU string `json:"product_sku"`
	CategoryID int    `json:"category_id"`
	Primary    bool   `json:"primary"`
}
