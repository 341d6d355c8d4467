package domain

import (
	"net/mail"
	"strings"
	"time"
)

// QuoteStatus tracks a quote request through the studio's sales process.
type QuoteStatus string

// QuoteStatusPending is the status every new quote request starts in.
const QuoteStatusPending QuoteStatus = "pending"

// QuoteRequest is a visitor's inquiry about a project.
// ID, Status and CreatedAt are assigned by the store, never by the caller.
type QuoteRequest struct {
	ID          int64
	Name        string
	Email       string
	ProjectType string
	Message     string

	// SelectedDesigns is the comma-joined list of portfolio titles the
	// visitor picked, or nil when none were chosen.
	SelectedDesigns *string

	Status    QuoteStatus
	CreatedAt time.Time
}

// QuoteRequestInput is what a visitor submits.
type QuoteRequestInput struct {
	Name            string
	Email           string
	ProjectType     string
	Message         string
	SelectedDesigns *string
}

// Validate checks the required fields in submission order and reports the
// first one that is blank, then checks that Email is a bare address.
func (in QuoteRequestInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"projectType", in.ProjectType},
		{"message", in.Message},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewValidationError(r.field, "this field is required")
		}
	}

	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != strings.TrimSpace(in.Email) {
		return NewValidationErrorWithValue("email", "must be a valid email address", in.Email)
	}

	return nil
}

// Designs splits SelectedDesigns into individual portfolio titles.
func (in QuoteRequestInput) Designs() []string {
	if in.SelectedDesigns == nil {
		return nil
	}

	var titles []string

	for _, part := range strings.Split(*in.SelectedDesigns, ",") {
		if title := strings.TrimSpace(part); title != "" {
			titles = append(titles, title)
		}
	}

	return titles
}

// NewQuoteRequest builds the record a store persists for in.
// The caller supplies the identity and timestamp it assigned.
func NewQuoteRequest(id int64, in QuoteRequestInput, createdAt time.Time) *QuoteRequest {
	return &QuoteRequest{
		ID:              id,
		Name:            in.Name,
		Email:           in.Email,
		ProjectType:     in.ProjectType,
		Message:         in.Message,
		SelectedDesigns: in.SelectedDesigns,
		Status:          QuoteStatusPending,
		CreatedAt:       createdAt,
	}
}
