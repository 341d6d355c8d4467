package database

import (
	"time"

	"github.com/jsamuelsen/studio-site/internal/domain"
)

// Row types mirror the tables the site has always used. Column names are
// snake_case so an existing database created by earlier deployments keeps
// working after AutoMigrate.

type serviceRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:text;not null;uniqueIndex:uq_services_name"`
	Description string `gorm:"type:text;not null"`
	Icon        string `gorm:"type:text;not null"`
	Category    string `gorm:"type:text;not null"`
}

func (serviceRecord) TableName() string { return "services" }

func (r serviceRecord) toDomain() domain.Service {
	return domain.Service{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		Category:    domain.ServiceCategory(r.Category),
	}
}

type portfolioRecord struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:text;not null;uniqueIndex:uq_portfolio_title"`
	Description string  `gorm:"type:text;not null"`
	ImageURL    string  `gorm:"column:image_url;type:text;not null"`
	Category    string  `gorm:"type:text;not null"`
	Client      *string `gorm:"type:text"`
}

func (portfolioRecord) TableName() string { return "portfolio" }

func (r portfolioRecord) toDomain() domain.PortfolioItem {
	return domain.PortfolioItem{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Client:      r.Client,
	}
}

type testimonialRecord struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:text;not null;uniqueIndex:uq_testimonials_name"`
	Role      string  `gorm:"type:text;not null"`
	Content   string  `gorm:"type:text;not null"`
	AvatarURL *string `gorm:"column:avatar_url;type:text"`
}

func (testimonialRecord) TableName() string { return "testimonials" }

func (r testimonialRecord) toDomain() domain.Testimonial {
	return domain.Testimonial{
		ID:        r.ID,
		Name:      r.Name,
		Role:      r.Role,
		Content:   r.Content,
		AvatarURL: r.AvatarURL,
	}
}

type quoteRequestRecord struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"type:text;not null"`
	Email           string    `gorm:"type:text;not null"`
	ProjectType     string    `gorm:"column:project_type;type:text;not null"`
	Message         string    `gorm:"type:text;not null"`
	SelectedDesigns *string   `gorm:"column:selected_designs;type:text"`
	Status          string    `gorm:"type:text;default:pending"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (quoteRequestRecord) TableName() string { return "quote_requests" }

func (r quoteRequestRecord) toDomain() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		ProjectType:     r.ProjectType,
		Message:         r.Message,
		SelectedDesigns: r.SelectedDesigns,
		Status:          domain.QuoteStatus(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}

// models lists every table AutoMigrate manages, in creation order.
func models() []any {
	return []any{
		&serviceRecord{},
		&portfolioRecord{},
		&testimonialRecord{},
		&quoteRequestRecord{},
	}
}
