package content

// Fallback lists are built on every call so callers can never alter them.

func str(v string) *string {
	return &v
}

// FallbackPortfolio is served when no published portfolio items are available
func FallbackPortfolio() []PortfolioItem {
	return []PortfolioItem{
		{ID: "1", Title: "Glow Serum Campaign", Category: "Skincare", ImageURL: "/assets/portfolio-1.jpg", DisplayOrder: 1, IsPublished: true, IsFeatured: true},
		{ID: "2", Title: "Morning Routine", Category: "Lifestyle", ImageURL: "/assets/portfolio-2.jpg", DisplayOrder: 2, IsPublished: true, IsFeatured: true},
		{ID: "3", Title: "Luxury Lip Collection", Category: "Beauty", ImageURL: "/assets/portfolio-3.jpg", DisplayOrder: 3, IsPublished: true, IsFeatured: true},
		{ID: "4", Title: "Clean Beauty Edit", Category: "Skincare", ImageURL: "/assets/portfolio-4.jpg", DisplayOrder: 4, IsPublished: true, IsFeatured: true},
		{ID: "5", Title: "Texture & Touch", Category: "Product Demo", ImageURL: "/assets/portfolio-5.jpg", DisplayOrder: 5, IsPublished: true, IsFeatured: true},
		{ID: "6", Title: "Fragrance Story", Category: "Lifestyle", ImageURL: "/assets/portfolio-6.jpg", DisplayOrder: 6, IsPublished: true, IsFeatured: true},
	}
}

// FallbackFeaturedWork is served by the home page's featured section
func FallbackFeaturedWork() []PortfolioItem {
	return FallbackPortfolio()
}

// FallbackVideos is served when no published videos are available
func FallbackVideos() []Video {
	const embed = "https://www.youtube.com/embed/dQw4w9WgXcQ"
	return []Video{
		{ID: "1", Title: "5-Step Skincare Routine Tutorial", Category: "Tutorials", ThumbnailURL: "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=640&h=360&fit=crop", EmbedURL: embed, Duration: str("4:32"), Views: str("125K"), DisplayOrder: 1, IsPublished: true},
		{ID: "2", Title: "Glow Serum Product Ad", Category: "Ads", ThumbnailURL: "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=640&h=360&fit=crop", EmbedURL: embed, Duration: str("0:30"), Views: str("2.1M"), DisplayOrder: 2, IsPublished: true},
		{ID: "3", Title: "Luxury Beauty Haul Unboxing", Category: "Unboxings", ThumbnailURL: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=640&h=360&fit=crop", EmbedURL: embed, Duration: str("8:15"), Views: str("89K"), DisplayOrder: 3, IsPublished: true},
		{ID: "4", Title: "Client Testimonial - Pure Skin Lab", Category: "Testimonials", ThumbnailURL: "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=640&h=360&fit=crop", EmbedURL: embed, Duration: str("1:45"), Views: str("45K"), DisplayOrder: 4, IsPublished: true},
		{ID: "5", Title: "Natural Makeup Look Tutorial", Category: "Tutorials", ThumbnailURL: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=640&h=360&fit=crop", EmbedURL: embed, Duration: str("6:22"), Views: str("210K"), DisplayOrder: 5, IsPublished: true},
		{ID: "6", Title: "Behind the Scenes - Raw Footage", Category: "Raw Clips", ThumbnailURL: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=640&h=360&fit=crop", EmbedURL: embed, Duration: str("3:08"), Views: str("32K"), DisplayOrder: 6, IsPublished: true},
	}
}

// FallbackCollaborations is served when no published collaborations are available
func FallbackCollaborations() []Collaboration {
	return []Collaboration{
		{
			ID:                "1",
			Brand:             "Glow Beauty Co.",
			Logo:              str("G"),
			Description:       str("Long-term partnership creating educational skincare content and product launches."),
			Testimonial:       str("ShadowsAndLashes brought our products to life in a way we never imagined. Her content drove real results."),
			TestimonialAuthor: str("Sarah M., Marketing Director"),
			CollaborationType: str("Ongoing Partnership"),
			DisplayOrder:      1,
			IsPublished:       true,
		},
		{
			ID:                "2",
			Brand:             "Luxe Cosmetics",
			Logo:              str("L"),
			Description:       str("Luxury makeup campaign featuring high-end product photography and tutorials."),
			Testimonial:       str("The quality and aesthetic of her work perfectly aligned with our brand. A true professional."),
			TestimonialAuthor: str("James K., Brand Manager"),
			CollaborationType: str("Campaign"),
			DisplayOrder:      2,
			IsPublished:       true,
		},
		{
			ID:                "3",
			Brand:             "Pure Skin Lab",
			Logo:              str("P"),
			Description:       str("Clean beauty education series focusing on ingredient transparency and skincare science."),
			CollaborationType: str("Content Series"),
			DisplayOrder:      3,
			IsPublished:       true,
		},
		{
			ID:                "4",
			Brand:             "Essence Perfumery",
			Logo:              str("E"),
			Description:       str("Lifestyle fragrance content capturing the essence of each scent through storytelling."),
			Testimonial:       str("She understood our vision immediately and created content that truly captured our brand's soul."),
			TestimonialAuthor: str("Marie L., Creative Director"),
			CollaborationType: str("Campaign"),
			DisplayOrder:      4,
			IsPublished:       true,
		},
		{
			ID:                "5",
			Brand:             "SkinFirst",
			Logo:              str("S"),
			Description:       str("Viral product texture content that generated millions of views across platforms."),
			CollaborationType: str("Viral Campaign"),
			DisplayOrder:      5,
			IsPublished:       true,
		},
		{
			ID:                "6",
			Brand:             "Natural Glow",
			Logo:              str("N"),
			Description:       str("Sustainable beauty campaign highlighting eco-friendly products and practices."),
			Testimonial:       str("Her authenticity and passion for clean beauty made this collaboration incredibly successful."),
			TestimonialAuthor: str("David R., Founder"),
			CollaborationType: str("Brand Ambassador"),
			DisplayOrder:      6,
			IsPublished:       true,
		},
	}
}
