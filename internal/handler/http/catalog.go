package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/service"
)

// CatalogHandler exposes the breed catalog endpoints.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// queryInt parses a query parameter, falling back to def when absent or
// non-numeric.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

// parseID parses a path id and writes the error response itself when the
// value is not a valid object id.
func parseID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid ID format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// List handles GET /api/dogs/breeds.
func (h *CatalogHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	breeds, pagination, err := h.catalogService.List(c.Request.Context(), page, limit)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"breeds": breeds, "pagination": pagination})
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search handles POST /api/dogs/breeds/search.
func (h *CatalogHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Search: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "La recherche est requise")
		return
	}

	breeds, err := h.catalogService.Search(c.Request.Context(), req.Query)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"breeds": breeds})
}

type filterRequest struct {
	Size          string `json:"size"`
	Temperament   string `json:"temperament"`
	ActivityLevel string `json:"activityLevel"`
}

// Filter handles POST /api/dogs/breeds/filter.
func (h *CatalogHandler) Filter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Filter: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	breeds, err := h.catalogService.Filter(c.Request.Context(), domain.BreedFilter{
		Size:          req.Size,
		Temperament:   req.Temperament,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"breeds": breeds})
}

// GetByID handles GET /api/dogs/breeds/:id.
func (h *CatalogHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	breed, err := h.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"breed": breed})
}

// Create handles POST /api/dogs/breeds (admin only).
func (h *CatalogHandler) Create(c *gin.Context) {
	var breed domain.Breed
	if err := c.ShouldBindJSON(&breed); err != nil {
		logrus.WithError(err).Warn("Handler.CreateBreed: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	created, err := h.catalogService.Create(c.Request.Context(), &breed)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusCreated, "Race ajoutée avec succès", gin.H{"breed": created})
}

type breedUpdateRequest struct {
	Name            *string                 `json:"name"`
	Description     *string                 `json:"description"`
	Characteristics *domain.Characteristics `json:"characteristics"`
	Origin          *string                 `json:"origin"`
	Image           *domain.Image           `json:"image"`
	Care            *domain.Care            `json:"care"`
	Health          *domain.Health          `json:"health"`
}

// Update handles PUT /api/dogs/breeds/:id (admin only).
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req breedUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateBreed: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	breed, err := h.catalogService.Update(c.Request.Context(), id, domain.BreedUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Characteristics: req.Characteristics,
		Origin:          req.Origin,
		Image:           req.Image,
		Care:            req.Care,
		Health:          req.Health,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Race modifiée avec succès", gin.H{"breed": breed})
}

// Delete handles DELETE /api/dogs/breeds/:id (admin only).
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Race supprimée avec succès", nil)
}
