package dto

import (
	"time"

	"github.com/jsamuelsen/studio-site/internal/domain"
)

// MessageQuoteCreated is returned with every accepted quote request.
const MessageQuoteCreated = "Quote request submitted successfully"

// CreateQuoteRequest is the body of POST /api/quotes. Field order is the
// order in which validation failures are reported.
type CreateQuoteRequest struct {
	Name            string  `json:"name"            validate:"required,notempty"`
	Email           string  `json:"email"           validate:"required,notempty,email"`
	ProjectType     string  `json:"projectType"     validate:"required,notempty"`
	Message         string  `json:"message"         validate:"required,notempty"`
	SelectedDesigns *string `json:"selectedDesigns" validate:"omitempty"`
}

// ToDomain converts the request into the domain input.
func (r CreateQuoteRequest) ToDomain() domain.QuoteRequestInput {
	return domain.QuoteRequestInput{
		Name:            r.Name,
		Email:           r.Email,
		ProjectType:     r.ProjectType,
		Message:         r.Message,
		SelectedDesigns: r.SelectedDesigns,
	}
}

// QuoteCreatedResponse is the 201 body for POST /api/quotes.
type QuoteCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// PortfolioQuery holds the optional filter of GET /api/portfolio.
type PortfolioQuery struct {
	Category string `form:"category" validate:"omitempty,max=32"`
}

// ServiceResponse is one entry of GET /api/services.
type ServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// PortfolioItemResponse is one entry of GET /api/portfolio.
type PortfolioItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Client      *string `json:"client"`
}

// TestimonialResponse is one entry of GET /api/testimonials.
type TestimonialResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	AvatarURL *string `json:"avatarUrl"`
}

// QuoteRequestResponse mirrors a stored quote request.
type QuoteRequestResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProjectType     string    `json:"projectType"`
	Message         string    `json:"message"`
	SelectedDesigns *string   `json:"selectedDesigns"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ContentResponse is the body of GET /api/content.
type ContentResponse struct {
	Services     []ServiceResponse       `json:"services"`
	Portfolio    []PortfolioItemResponse `json:"portfolio"`
	Testimonials []TestimonialResponse   `json:"testimonials"`
}

// FromServices converts domain services. The result is never nil so an
// empty list encodes as [].
func FromServices(in []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(in))
	for i, s := range in {
		out[i] = ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Icon:        s.Icon,
			Category:    string(s.Category),
		}
	}

	return out
}

// FromPortfolio converts domain portfolio items.
func FromPortfolio(in []domain.PortfolioItem) []PortfolioItemResponse {
	out := make([]PortfolioItemResponse, len(in))
	for i, p := range in {
		out[i] = PortfolioItemResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Category:    p.Category,
			Client:      p.Client,
		}
	}

	return out
}

// FromTestimonials converts domain testimonials.
func FromTestimonials(in []domain.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, len(in))
	for i, t := range in {
		out[i] = TestimonialResponse{
			ID:        t.ID,
			Name:      t.Name,
			Role:      t.Role,
			Content:   t.Content,
			AvatarURL: t.AvatarURL,
		}
	}

	return out
}

// FromQuoteRequest converts a stored quote request.
func FromQuoteRequest(q *domain.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:              q.ID,
		Name:            q.Name,
		Email:           q.Email,
		ProjectType:     q.ProjectType,
		Message:         q.Message,
		SelectedDesigns: q.SelectedDesigns,
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt,
	}
}

// FromCatalog converts the combined site content.
func FromCatalog(c domain.Catalog) ContentResponse {
	return ContentResponse{
		Services:     FromServices(c.Services),
		Portfolio:    FromPortfolio(c.Portfolio),
		Testimonials: FromTestimonials(c.Testimonials),
	}
}
