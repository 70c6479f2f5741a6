package content

// NavigationEntry a link of the pop-out navigation menu
type NavigationEntry struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Navigation returns the fixed menu entries in display order
func Navigation() []NavigationEntry {
	return []NavigationEntry{
		{Label: "Home", Href: "/"},
		{Label: "About", Href: "/about"},
		{Label: "Portfolio", Href: "/portfolio"},
		{Label: "Videos", Href: "/videos"},
		{Label: "Collaborations", Href: "/collaborations"},
		{Label: "Contact", Href: "/contact"},
	}
}

// BrandLogos returns the names shown in the collaborations logo strip
func BrandLogos() []string {
	return []string{
		"Glow Beauty", "Luxe Cosmetics", "Pure Skin Lab", "Essence", "SkinFirst", "Natural Glow",
		"Beauty Box", "Radiant", "Clean Co", "Bloom Beauty",
	}
}
