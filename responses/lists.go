package responses

import (
	"github.com/foomo/showcase/content"
)

// List - a public list, never empty while a fallback exists
type List[T any] struct {
	Items []T `json:"items"`
}

// Collaborations - collaborations page data
type Collaborations struct {
	Items      []content.Collaboration `json:"items"`
	BrandLogos []string                `json:"brandLogos"`
}

// Home - sections of the home page
type Home struct {
	FeaturedWork   []content.PortfolioItem `json:"featuredWork"`
	Collaborations []content.Collaboration `json:"collaborations"`
}

// Categories - filter options of a collection, "All" first
type Categories struct {
	Collection content.Collection `json:"collection"`
	Categories []string           `json:"categories"`
}

// Contact - receipt of a contact form submission
type Contact struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Deleted - confirms the removal of a row
type Deleted struct {
	ID string `json:"id"`
}
