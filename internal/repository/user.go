package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
)

// UserRepository defines storage and retrieval of user documents.
type UserRepository interface {
	// FindByEmail looks a user up by lowercase email, including the
	// password hash. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID returns the user or ErrUserNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// FindByIDs returns the users matching the given ids, in store order.
	// Missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)

	// Insert creates a new user. Returns ErrDuplicateEntry when the email
	// is already taken.
	Insert(ctx context.Context, user *domain.User) error

	// UpdateProfile applies the non-nil fields and returns the updated user.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error

	// UpdateLastLogin stamps the last successful login.
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error

	// AddFavorite adds the breed to the user's favorite set ($addToSet
	// semantics, safe when already present) and returns the updated user.
	AddFavorite(ctx context.Context, userID, breedID primitive.ObjectID) (*domain.User, error)

	// RemoveFavorite removes the breed from the favorite set (no-op when
	// absent) and returns the updated user.
	RemoveFavorite(ctx context.Context, userID, breedID primitive.ObjectID) (*domain.User, error)
}
