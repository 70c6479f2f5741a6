package content

// PortfolioItem a piece of work shown on the portfolio page
type PortfolioItem struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	Description  *string `json:"description"`
	Brand        *string `json:"brand"`
	Objective    *string `json:"objective"`
	Approach     *string `json:"approach"`
	Results      *string `json:"results"`
	DisplayOrder int     `json:"display_order"`
	IsFeatured   bool    `json:"is_featured"`
	IsPublished  bool    `json:"is_published"`
}

// Video an embedded video clip
type Video struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	ThumbnailURL string  `json:"thumbnail_url"`
	EmbedURL     string  `json:"embed_url"`
	Duration     *string `json:"duration"`
	Views        *string `json:"views"`
	DisplayOrder int     `json:"display_order"`
	IsPublished  bool    `json:"is_published"`
}

// Collaboration a brand partnership, optionally with a testimonial
type Collaboration struct {
	ID                string  `json:"id"`
	Brand             string  `json:"brand"`
	Logo              *string `json:"logo"`
	Description       *string `json:"description"`
	Testimonial       *string `json:"testimonial"`
	TestimonialAuthor *string `json:"testimonial_author"`
	CollaborationType *string `json:"collaboration_type"`
	DisplayOrder      int     `json:"display_order"`
	IsPublished       bool    `json:"is_published"`
}

// ContactSubmission a message left through the contact form
type ContactSubmission struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Company   *string `json:"company"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"is_read"`
	CreatedAt string  `json:"created_at"`
}

// Categorized is implemented by records that can be filtered by category
type Categorized interface {
	GetCategory() string
}

func (i PortfolioItem) GetCategory() string { return i.Category }

func (v Video) GetCategory() string { return v.Category }

func (c Collaboration) GetCategory() string {
	if c.CollaborationType == nil {
		return ""
	}
	return *c.CollaborationType
}
