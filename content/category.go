package content

// CategoryAll disables category filtering
const CategoryAll = "All"

var (
	// PortfolioCategories filter buttons of the portfolio page
	PortfolioCategories = []string{CategoryAll, "Beauty", "Skincare", "Lifestyle", "Product Demo"}
	// VideoCategories filter buttons of the videos page
	VideoCategories = []string{CategoryAll, "Tutorials", "Ads", "Unboxings", "Testimonials", "Raw Clips"}
)

// Categories returns the filter list of a collection, nil if it has none
func Categories(c Collection) []string {
	switch c {
	case CollectionPortfolio:
		return append([]string(nil), PortfolioCategories...)
	case CollectionVideos:
		return append([]string(nil), VideoCategories...)
	default:
		return nil
	}
}

// FilterByCategory keeps the items whose category equals category exactly.
// An empty category or CategoryAll returns items unchanged.
func FilterByCategory[T Categorized](items []T, category string) []T {
	if category == "" || category == CategoryAll {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetCategory() == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
