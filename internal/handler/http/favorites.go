package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilumaty/greendog-backend/internal/middleware"
	"github.com/ilumaty/greendog-backend/internal/service"
)

// FavoritesHandler exposes the user favorites endpoints.
type FavoritesHandler struct {
	favoritesService *service.FavoritesService
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(favoritesService *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService}
}

// Add handles POST /api/dogs/favorites/:breedId.
func (h *FavoritesHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	breedID, ok := parseID(c, "breedId")
	if !ok {
		return
	}

	user, err := h.favoritesService.Add(c.Request.Context(), userID, breedID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Ajout au favoris", gin.H{"user": user})
}

// Remove handles DELETE /api/dogs/favorites/:breedId.
func (h *FavoritesHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	breedID, ok := parseID(c, "breedId")
	if !ok {
		return
	}

	user, err := h.favoritesService.Remove(c.Request.Context(), userID, breedID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Retirer des favoris", gin.H{"user": user})
}

// List handles GET /api/dogs/favorites.
func (h *FavoritesHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	favorites, err := h.favoritesService.List(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"favorites": favorites})
}
