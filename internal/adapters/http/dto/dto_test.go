package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/studio-site/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJSONContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func TestNewErrorResponse(t *testing.T) {
	got := NewErrorResponse(ErrorCodeNotFound, "resource not found").WithTraceID("trace-1")

	assert.Equal(t, &ErrorResponse{
		Error:   ErrorDetail{Code: ErrorCodeNotFound, Message: "resource not found"},
		TraceID: "trace-1",
	}, got)
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestGetTraceID(t *testing.T) {
	t.Run("trace header wins", func(t *testing.T) {
		c, _ := newJSONContext(t, http.MethodGet, "/", "")
		c.Header("X-Request-ID", "req-1")
		c.Header("X-Trace-ID", "4bf92f3577b34da6a3ce929d0e0e4736")

		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", GetTraceID(c))
	})

	t.Run("response request id", func(t *testing.T) {
		c, _ := newJSONContext(t, http.MethodGet, "/", "")
		c.Header("X-Request-ID", "req-1")

		assert.Equal(t, "req-1", GetTraceID(c))
	})

	t.Run("incoming request id", func(t *testing.T) {
		c, _ := newJSONContext(t, http.MethodGet, "/", "")
		c.Request.Header.Set("X-Request-ID", "header-id")

		assert.Equal(t, "header-id", GetTraceID(c))
	})

	t.Run("none", func(t *testing.T) {
		c, _ := newJSONContext(t, http.MethodGet, "/", "")

		assert.Empty(t, GetTraceID(c))
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   MessageResponse
	}{
		{
			name:       "validation error names the field",
			err:        domain.NewValidationError("email", "must be a valid email address"),
			wantStatus: http.StatusBadRequest,
			wantBody:   MessageResponse{Message: "must be a valid email address", Field: "email"},
		},
		{
			name:       "storage error is hidden",
			err:        domain.NewStorageError("create quote request", errors.New("disk full")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   MessageResponse{Message: MessageInternalError},
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   MessageResponse{Message: MessageInternalError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newJSONContext(t, http.MethodPost, "/api/quotes", "")

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var got MessageResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
			assert.NotContains(t, w.Body.String(), "disk full")
		})
	}
}

func TestBindAndValidate_CreateQuoteRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{
			name: "valid",
			body: `{"name":"Jane Doe","email":"jane@example.com","projectType":"branding","message":"Need a logo"}`,
		},
		{
			name: "valid with designs",
			body: `{"name":"Jane","email":"jane@example.com","projectType":"uiux","message":"hi","selectedDesigns":"EcoBrand Identity"}`,
		},
		{
			name:      "first invalid field wins",
			body:      `{"name":"","email":"bad","projectType":"branding","message":""}`,
			wantErr:   true,
			wantField: "name",
			wantMsg:   "this field is required",
		},
		{
			name:      "bad email",
			body:      `{"name":"Jane","email":"bad","projectType":"branding","message":"hi"}`,
			wantErr:   true,
			wantField: "email",
			wantMsg:   "must be a valid email address",
		},
		{
			name:      "whitespace message",
			body:      `{"name":"Jane","email":"jane@example.com","projectType":"branding","message":"   "}`,
			wantErr:   true,
			wantField: "message",
			wantMsg:   "must not be empty",
		},
		{
			name:      "empty body reports first field",
			body:      ``,
			wantErr:   true,
			wantField: "name",
			wantMsg:   "this field is required",
		},
		{
			name:      "wrong type",
			body:      `{"name":42}`,
			wantErr:   true,
			wantField: "name",
			wantMsg:   "must be a string",
		},
		{
			name:      "wrong type after an earlier invalid field",
			body:      `{"name":"","email":"jane@example.com","projectType":"branding","message":5}`,
			wantErr:   true,
			wantField: "name",
			wantMsg:   "this field is required",
		},
		{
			name:      "wrong type before a later invalid field",
			body:      `{"name":"Jane","email":7,"projectType":"","message":"hi"}`,
			wantErr:   true,
			wantField: "email",
			wantMsg:   "must be a string",
		},
		{
			name:      "wrong type is the only failure",
			body:      `{"name":"Jane","email":"jane@example.com","projectType":"branding","message":"hi","selectedDesigns":["a"]}`,
			wantErr:   true,
			wantField: "selectedDesigns",
			wantMsg:   "must be a string",
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
			wantMsg: "request body must be valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/api/quotes", tt.body)

			var req CreateQuoteRequest

			err := BindAndValidate(c, &req)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)

			ferr := FirstFieldError(err)

			var verr *domain.ValidationError
			require.ErrorAs(t, ferr, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestBindQueryAndValidate(t *testing.T) {
	c, _ := newJSONContext(t, http.MethodGet, "/api/portfolio?category=branding", "")

	var q PortfolioQuery

	require.NoError(t, BindQueryAndValidate(c, &q))
	assert.Equal(t, "branding", q.Category)

	c, _ = newJSONContext(t, http.MethodGet, "/api/portfolio?category="+strings.Repeat("x", 40), "")

	err := BindQueryAndValidate(c, &PortfolioQuery{})
	require.ErrorIs(t, err, ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, FirstFieldError(err), &verr)
	assert.Equal(t, "category", verr.Field)
	assert.Equal(t, "must be at most 32 characters", verr.Message)
}

func TestJSONKind(t *testing.T) {
	tests := []struct {
		in   reflect.Type
		want string
	}{
		{nil, "a valid value"},
		{reflect.TypeFor[string](), "a string"},
		{reflect.TypeFor[*string](), "a string"},
		{reflect.TypeFor[bool](), "a boolean"},
		{reflect.TypeFor[int64](), "a number"},
		{reflect.TypeFor[[]string](), "an array"},
		{reflect.TypeFor[map[string]any](), "an object"},
		{reflect.TypeFor[CreateQuoteRequest](), "an object"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonKind(tt.in))
		})
	}
}

func TestFirstFieldError_Unknown(t *testing.T) {
	var verr *domain.ValidationError
	require.ErrorAs(t, FirstFieldError(errors.New("odd")), &verr)
	assert.Equal(t, "invalid request", verr.Message)
}

func TestCreateQuoteRequest_ToDomain(t *testing.T) {
	designs := "A, B"
	req := CreateQuoteRequest{
		Name:            "Jane",
		Email:           "jane@example.com",
		ProjectType:     "branding",
		Message:         "hi",
		SelectedDesigns: &designs,
	}

	got := req.ToDomain()

	assert.Equal(t, domain.QuoteRequestInput{
		Name:            "Jane",
		Email:           "jane@example.com",
		ProjectType:     "branding",
		Message:         "hi",
		SelectedDesigns: &designs,
	}, got)
}

func TestFromCatalog_JSONShape(t *testing.T) {
	c := domain.DefaultCatalog()
	c.Portfolio[0].Client = nil
	c.Testimonials[0].AvatarURL = nil

	raw, err := json.Marshal(FromCatalog(c))
	require.NoError(t, err)

	var got map[string][]map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	require.Len(t, got["services"], len(c.Services))
	require.Len(t, got["portfolio"], len(c.Portfolio))
	require.Len(t, got["testimonials"], len(c.Testimonials))

	assert.Contains(t, got["portfolio"][0], "imageUrl")
	assert.Contains(t, got["portfolio"][0], "client")
	assert.Nil(t, got["portfolio"][0]["client"])
	assert.Contains(t, got["testimonials"][0], "avatarUrl")
	assert.Nil(t, got["testimonials"][0]["avatarUrl"])
	assert.Equal(t, string(c.Services[0].Category), got["services"][0]["category"])
}

func TestFromServices_EmptyIsArray(t *testing.T) {
	raw, err := json.Marshal(FromServices(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestFromQuoteRequest(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	q := domain.NewQuoteRequest(7, domain.QuoteRequestInput{
		Name: "Jane", Email: "jane@example.com", ProjectType: "branding", Message: "hi",
	}, created)

	raw, err := json.Marshal(FromQuoteRequest(q))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 7,
		"name": "Jane",
		"email": "jane@example.com",
		"projectType": "branding",
		"message": "hi",
		"selectedDesigns": null,
		"status": "pending",
		"createdAt": "2024-03-01T12:00:00Z"
	}`, string(raw))
}
