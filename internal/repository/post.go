package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
)

// PostRepository defines storage and retrieval of post documents.
type PostRepository interface {
	// List returns posts matching the filter, newest first.
	List(ctx context.Context, filter domain.PostFilter, skip, limit int64) ([]domain.Post, error)

	// Count returns the number of posts matching the filter.
	Count(ctx context.Context, filter domain.PostFilter) (int64, error)

	// Insert creates a post.
	Insert(ctx context.Context, post *domain.Post) error

	// FindByID returns the post or ErrPostNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)

	// FindByIDAndIncViews atomically increments the view counter and
	// returns the post after the increment, or ErrPostNotFound.
	FindByIDAndIncViews(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)

	// Update applies the non-nil fields and returns the updated post.
	Update(ctx context.Context, id primitive.ObjectID, update domain.PostUpdate) (*domain.Post, error)

	// Delete removes the post. Returns ErrPostNotFound when absent.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// PushComment appends a comment reference to the post's comment list.
	PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error

	// PullComment removes a comment reference from the post's comment list.
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error
}
