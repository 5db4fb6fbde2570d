package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
)

// CommentRepository defines storage and retrieval of comment documents.
type CommentRepository interface {
	// ListByPost returns the comments of a post with the given status,
	// newest first.
	ListByPost(ctx context.Context, postID primitive.ObjectID, status string) ([]domain.Comment, error)

	// Insert creates a comment.
	Insert(ctx context.Context, comment *domain.Comment) error

	// FindByID returns the comment or ErrCommentNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error)

	// UpdateContent replaces the comment body and returns the updated comment.
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error)

	// Delete removes the comment. Returns ErrCommentNotFound when absent.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByPost removes every comment referencing the post and returns
	// the number deleted.
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}
