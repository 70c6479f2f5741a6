package handler

// Route type
type Route string

const (
	// RoutePortfolio published portfolio items
	RoutePortfolio Route = "portfolio"
	// RouteFeaturedWork featured portfolio items of the home page
	RouteFeaturedWork Route = "featuredWork"
	// RouteVideos published videos
	RouteVideos Route = "videos"
	// RouteCollaborations published collaborations and the brand strip
	RouteCollaborations Route = "collaborations"
	// RouteHome all sections of the home page at once
	RouteHome Route = "home"
	// RouteCategories category filter list of a collection
	RouteCategories Route = "categories"
	// RouteNavigation menu entries
	RouteNavigation Route = "navigation"
	// RouteContact contact form submission
	RouteContact Route = "contact"

	// RouteAdminList all rows of a collection
	RouteAdminList Route = "adminList"
	// RouteAdminCreate insert a row
	RouteAdminCreate Route = "adminCreate"
	// RouteAdminUpdate update a row
	RouteAdminUpdate Route = "adminUpdate"
	// RouteAdminDelete delete a row
	RouteAdminDelete Route = "adminDelete"
	// RouteAdminPublish toggle the published flag of a row
	RouteAdminPublish Route = "adminPublish"
	// RouteAdminRead mark a contact message as read
	RouteAdminRead Route = "adminRead"
)
