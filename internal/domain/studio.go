package domain

// ServiceCategory groups the studio's service offerings.
type ServiceCategory string

const (
	CategoryGraphic  ServiceCategory = "graphic"
	CategoryUIUX     ServiceCategory = "uiux"
	CategoryBranding ServiceCategory = "branding"
	CategorySocial   ServiceCategory = "social"
	CategoryCustom   ServiceCategory = "custom"
)

// Valid reports whether c is one of the known categories.
func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryGraphic, CategoryUIUX, CategoryBranding, CategorySocial, CategoryCustom:
		return true
	default:
		return false
	}
}

// Service is a design service the studio offers.
// Read-only once seeded.
type Service struct {
	ID          int64
	Name        string
	Description string

	// Icon names the glyph the site renders next to the service.
	Icon     string
	Category ServiceCategory
}

// PortfolioItem is a piece of past work shown on the site.
type PortfolioItem struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Category    string

	// Client is the customer the work was made for, if it can be named.
	Client *string
}

// Testimonial is a quote from a past client.
type Testimonial struct {
	ID        int64
	Name      string
	Role      string
	Content   string
	AvatarURL *string
}
