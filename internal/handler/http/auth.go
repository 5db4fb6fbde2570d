package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/middleware"
	"github.com/ilumaty/greendog-backend/internal/service"
)

// AuthHandler exposes account and session endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// userSummary is the user projection returned on signup and login.
type userSummary struct {
	ID        primitive.ObjectID `json:"id"`
	Email     string             `json:"email"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
}

func summarize(u *domain.User) userSummary {
	return userSummary{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

// profileUser attaches the resolved favorite breeds to the user payload.
type profileUser struct {
	*domain.User
	Favorites []domain.Breed `json:"favorites"`
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Signup: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Tous les champs sont requis")
		return
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		ErrorResponse(c, http.StatusBadRequest, "Tous les champs sont requis")
		return
	}
	if len(req.Password) < 6 {
		ErrorResponse(c, http.StatusBadRequest, "Le mot de passe doit contenir au moins 6 caractères")
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusCreated, "Good joy, inscription réussie.", gin.H{
		"user":  summarize(user),
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Email et password sont requis")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Tu es connecté", gin.H{
		"user":  summarize(user),
		"token": token,
	})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, favorites, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"user": profileUser{User: user, Favorites: favorites}})
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Bio       *string `json:"bio"`
	Avatar    *string `json:"avatar"`
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateProfile: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Profile modifié avec grand succès", gin.H{"user": user})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles POST /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.ChangePassword: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Les deux mot de passe sont requis")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Mot de passe modifié", nil)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the
// server only acknowledges; the client discards the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	SuccessMessage(c, http.StatusOK, "Tu es déconnecté", nil)
}
