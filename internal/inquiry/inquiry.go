package inquiry

// Inquiry is one contact message or quote request submitted from the
// public site. Quote requests carry the list of requested products in
// Items; plain contact messages leave it empty.
type Inquiry struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      *string     `json:"phone"`
	Company    *string     `json:"company"`
	Subject    string      `json:"subject"`
	Message    string      `json:"message"`
	ProductSKU *string     `json:"product_sku"`
	Language   string      `json:"language"`
	Items      []QuoteItem `json:"items,omitempty"`
	Status     string      `json:"status"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

// QuoteItem is one line of a quote request.
type QuoteItem struct {
	ProductSKU string `json:"product_sku"`
	TitleEN    string `json:"title_en"`
	Quantity   int    `json:"quantity"`
}

const (
	StatusNew     = "new"
	StatusReplied = "replied"
	StatusClosed  = "closed"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusReplied, StatusClosed:
		return true
	}
	return false
}
