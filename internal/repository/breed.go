package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
)

// BreedRepository defines storage and retrieval of breed documents.
type BreedRepository interface {
	// List returns a name-sorted slice of breeds for the given window.
	List(ctx context.Context, skip, limit int64) ([]domain.Breed, error)

	// Count returns the total number of breeds.
	Count(ctx context.Context) (int64, error)

	// Search performs relevance-ranked full-text matching over
	// name and description, most relevant first.
	Search(ctx context.Context, query string) ([]domain.Breed, error)

	// Filter applies a conjunctive exact-match filter; empty fields
	// are not constrained.
	Filter(ctx context.Context, filter domain.BreedFilter) ([]domain.Breed, error)

	// FindByID returns the breed or ErrBreedNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Breed, error)

	// FindByIDs returns the breeds matching the given ids.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Breed, error)

	// Insert creates a breed. Returns ErrDuplicateEntry when the name
	// is already taken.
	Insert(ctx context.Context, breed *domain.Breed) error

	// Update applies the non-nil fields and returns the updated breed.
	Update(ctx context.Context, id primitive.ObjectID, update domain.BreedUpdate) (*domain.Breed, error)

	// Delete removes the breed. Returns ErrBreedNotFound when absent.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// IncFavoriteCount atomically adds delta to the favorite counter.
	IncFavoriteCount(ctx context.Context, id primitive.ObjectID, delta int64) error

	// IncPostCount atomically adds delta to the post counter.
	IncPostCount(ctx context.Context, id primitive.ObjectID, delta int64) error

	// DeleteAll wipes the collection. Used by the seeder only.
	DeleteAll(ctx context.Context) (int64, error)

	// InsertMany bulk-inserts breeds. Used by the seeder only.
	InsertMany(ctx context.Context, breeds []domain.Breed) (int, error)
}
