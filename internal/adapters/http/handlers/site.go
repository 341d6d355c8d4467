package handlers

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/studio-site/internal/adapters/http/dto"
	"github.com/jsamuelsen/studio-site/internal/app"
)

// SiteHandler serves the public studio API.
type SiteHandler struct {
	catalog *app.CatalogService
	quotes  *app.QuoteService
}

// NewSiteHandler creates a site handler.
func NewSiteHandler(catalog *app.CatalogService, quotes *app.QuoteService) *SiteHandler {
	return &SiteHandler{
		catalog: catalog,
		quotes:  quotes,
	}
}

// ListServices handles GET /api/services.
//
// @Summary List design services
// @Tags site
// @Produce json
// @Success 200 {array} dto.ServiceResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/services [get]
func (h *SiteHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.Services(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromServices(services))
}

// ListPortfolio handles GET /api/portfolio.
// The optional category query parameter narrows the result.
//
// @Summary List portfolio items
// @Tags site
// @Produce json
// @Param category query string false "Portfolio category, or all"
// @Success 200 {array} dto.PortfolioItemResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/portfolio [get]
func (h *SiteHandler) ListPortfolio(c *gin.Context) {
	var query dto.PortfolioQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, dto.FirstFieldError(err))
		return
	}

	items, err := h.catalog.Portfolio(c.Request.Context(), query.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPortfolio(items))
}

// ListTestimonials handles GET /api/testimonials.
//
// @Summary List testimonials
// @Tags site
// @Produce json
// @Success 200 {array} dto.TestimonialResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/testimonials [get]
func (h *SiteHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.catalog.Testimonials(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTestimonials(testimonials))
}

// GetContent handles GET /api/content, returning all three listings at once.
func (h *SiteHandler) GetContent(c *gin.Context) {
	content, err := h.catalog.Content(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCatalog(content))
}

// CreateQuote handles POST /api/quotes.
//
// @Summary Submit a quote request
// @Tags site
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequest true "Quote request"
// @Success 201 {object} dto.QuoteCreatedResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/quotes [post]
func (h *SiteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, dto.FirstFieldError(err))
		return
	}

	qr, err := h.quotes.SubmitQuote(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.QuoteCreatedResponse{
		Message: dto.MessageQuoteCreated,
		ID:      qr.ID,
	})
}

// SiteRoutes holds extra middleware for each kind of site route.
type SiteRoutes struct {
	// Read runs on the GET catalog routes.
	Read []gin.HandlerFunc

	// Write runs on POST /quotes.
	Write []gin.HandlerFunc
}

// RegisterSiteRoutes registers the site routes on rg.
func (h *SiteHandler) RegisterSiteRoutes(rg *gin.RouterGroup, routes SiteRoutes) {
	reads := rg.Group("", routes.Read...)
	reads.GET("/services", h.ListServices)
	reads.GET("/portfolio", h.ListPortfolio)
	reads.GET("/testimonials", h.ListTestimonials)
	reads.GET("/content", h.GetContent)

	rg.POST("/quotes", append(slices.Clone(routes.Write), h.CreateQuote)...)
}
