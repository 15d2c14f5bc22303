package blog

// Post is a bilingual blog article. Drafts (Published=false) are only
// visible through the admin routes; the public API serves published
// posts ordered by publication date.
type Post struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	TitleEN       string   `json:"title_en"`
	TitleTH       string   `json:"title_th"`
	ExcerptEN     string   `json:"excerpt_en"`
	ExcerptTH     string   `json:"excerpt_th"`
	ContentEN     string   `json:"content_en"`
	ContentTH     string   `json:"content_th"`
	Author        string   `json:"author"`
	FeaturedImage *string  `json:"featured_image"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	SEOKeywords   *string  `json:"seo_keywords"`
	ReadingTime   int      `json:"reading_time"`
	Published     bool     `json:"published"`
	PublishedAt   *string  `json:"published_at"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}
