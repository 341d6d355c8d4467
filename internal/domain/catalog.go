package domain

// Catalog is the reference content the site presents.
type Catalog struct {
	Services     []Service
	Portfolio    []PortfolioItem
	Testimonials []Testimonial
}

// Empty reports whether the catalog has no content at all.
func (c Catalog) Empty() bool {
	return len(c.Services) == 0 && len(c.Portfolio) == 0 && len(c.Testimonials) == 0
}

// DefaultCatalog returns the content a fresh installation starts with.
// IDs are left zero; stores assign them on insert. Each call returns new
// slices, so callers may modify the result freely.
func DefaultCatalog() Catalog {
	return Catalog{
		Services: []Service{
			{
				Name:        "Graphic Design",
				Description: "Creative visual solutions for your brand identity.",
				Icon:        "Palette",
				Category:    CategoryGraphic,
			},
			{
				Name:        "UI/UX Design",
				Description: "Intuitive digital experiences designed for users.",
				Icon:        "Layout",
				Category:    CategoryUIUX,
			},
			{
				Name:        "Branding",
				Description: "Strategic brand development and visual storytelling.",
				Icon:        "Briefcase",
				Category:    CategoryBranding,
			},
			{
				Name:        "Social Media",
				Description: "Engaging content designed for maximum social impact.",
				Icon:        "Share2",
				Category:    CategorySocial,
			},
		},
		Portfolio: []PortfolioItem{
			{
				Title:       "EcoBrand Identity",
				Description: "Sustainable packaging and logo design.",
				ImageURL:    "https://images.unsplash.com/photo-1586717791821-3f44a563eb4c",
				Category:    string(CategoryBranding),
				Client:      ptr("EcoLife"),
			},
			{
				Title:       "Fintech App UI",
				Description: "Modern banking experience with clean interface.",
				ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
				Category:    string(CategoryUIUX),
				Client:      ptr("WealthFlow"),
			},
			{
				Title:       "Minimalist Posters",
				Description: "A series of geometric art prints.",
				ImageURL:    "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c",
				Category:    string(CategoryGraphic),
				Client:      ptr("ArtHaus"),
			},
		},
		Testimonials: []Testimonial{
			{
				Name:      "Sarah Johnson",
				Role:      "CEO, TechFlow",
				Content:   "The design work exceeded our expectations. Truly a premium experience.",
				AvatarURL: ptr("https://i.pravatar.cc/150?u=sarah"),
			},
			{
				Name:      "Michael Chen",
				Role:      "Founder, GreenSpace",
				Content:   "Exceptional attention to detail and creative vision. Highly recommended.",
				AvatarURL: ptr("https://i.pravatar.cc/150?u=michael"),
			},
		},
	}
}

func ptr(s string) *string {
	return &s
}
