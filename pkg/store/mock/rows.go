package mock

// PortfolioRows fixture rows in insertion order. Rows "2" and "3" share a
// display order, "4" is not published, "1" and "3" are featured.
func PortfolioRows() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": "3", "title": "Third", "category": "Beauty", "image_url": "/3.jpg", "display_order": 5, "is_published": true, "is_featured": true},
		{"id": "1", "title": "First", "category": "Skincare", "image_url": "/1.jpg", "display_order": 1, "is_published": true, "is_featured": true},
		{"id": "2", "title": "Second", "category": "Lifestyle", "image_url": "/2.jpg", "display_order": 1, "is_published": true, "is_featured": false},
		{"id": "4", "title": "Draft", "category": "Beauty", "image_url": "/4.jpg", "display_order": 0, "is_published": false, "is_featured": true},
	}
}
