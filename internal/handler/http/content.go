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

// ContentHandler exposes the posts and comments endpoints.
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListPosts handles GET /api/posts.
func (h *ContentHandler) ListPosts(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	var breedID *primitive.ObjectID
	if raw := c.Query("breedId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			ErrorResponse(c, http.StatusBadRequest, "Invalid ID format")
			return
		}
		breedID = &id
	}

	posts, pagination, err := h.contentService.ListPosts(c.Request.Context(), page, limit, breedID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"posts": posts, "pagination": pagination})
}

type createPostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	BreedID string   `json:"breedId"`
	Tags    []string `json:"tags"`
}

// CreatePost handles POST /api/posts.
func (h *ContentHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreatePost: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	var breedID *primitive.ObjectID
	if req.BreedID != "" {
		id, err := primitive.ObjectIDFromHex(req.BreedID)
		if err != nil {
			ErrorResponse(c, http.StatusBadRequest, "Invalid ID format")
			return
		}
		breedID = &id
	}

	post, err := h.contentService.CreatePost(c.Request.Context(), userID, req.Title, req.Content, breedID, req.Tags)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusCreated, "Post crée avec succès", gin.H{"post": post})
}

// GetPost handles GET /api/posts/:id. Every call increments the view
// counter.
func (h *ContentHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.contentService.GetPost(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"post": post})
}

type updatePostRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdatePost handles PUT /api/posts/:id.
func (h *ContentHandler) UpdatePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdatePost: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	post, err := h.contentService.UpdatePost(c.Request.Context(), id, userID, domain.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Post modifié avec succès", gin.H{"post": post})
}

// DeletePost handles DELETE /api/posts/:id.
func (h *ContentHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeletePost(c.Request.Context(), id, userID); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Post supprimé avec succès", nil)
}

// ListComments handles GET /api/posts/:id/comments.
func (h *ContentHandler) ListComments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.contentService.ListComments(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"comments": comments})
}

type commentRequest struct {
	Content string `json:"content"`
}

// AddComment handles POST /api/posts/:id/comments.
func (h *ContentHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.AddComment: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Commentaire requis")
		return
	}

	comment, err := h.contentService.AddComment(c.Request.Context(), id, userID, req.Content)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusCreated, "Commentaire ajouté avec succès", gin.H{"comment": comment})
}

// UpdateComment handles PUT /api/posts/:id/comments/:commentId.
func (h *ContentHandler) UpdateComment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateComment: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Commentaire est requis")
		return
	}

	comment, err := h.contentService.UpdateComment(c.Request.Context(), commentID, userID, req.Content)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Commentaire modifié avec succès", gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId.
func (h *ContentHandler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := h.contentService.DeleteComment(c.Request.Context(), commentID, userID, postID); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessMessage(c, http.StatusOK, "Commentaire supprimé avec succès", nil)
}
