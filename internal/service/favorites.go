package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/repository"
)

// FavoritesService maintains the user-to-breed favorite relation and the
// denormalized favoriteCount on breeds.
type FavoritesService struct {
	userRepo  repository.UserRepository
	breedRepo repository.BreedRepository
}

// NewFavoritesService creates a FavoritesService.
func NewFavoritesService(userRepo repository.UserRepository, breedRepo repository.BreedRepository) *FavoritesService {
	if userRepo == nil || breedRepo == nil {
		panic("repositories cannot be nil for FavoritesService")
	}
	return &FavoritesService{userRepo: userRepo, breedRepo: breedRepo}
}

// Add puts the breed in the user's favorite set and increments the breed
// counter. The set add is idempotent but the counter increment is
// unconditional, so repeated adds of the same breed inflate the counter.
// Known drift, kept on purpose; see DESIGN.md for the rationale.
func (s *FavoritesService) Add(ctx context.Context, userID, breedID primitive.ObjectID) (*domain.User, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "breed_id": breedID.Hex()})

	if _, err := s.breedRepo.FindByID(ctx, breedID); err != nil {
		if errors.Is(err, repository.ErrBreedNotFound) {
			return nil, ErrBreedNotFound
		}
		logCtx.WithError(err).Error("Database error checking breed")
		return nil, ErrInternalServer
	}

	user, err := s.userRepo.AddFavorite(ctx, userID, breedID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("Database error adding favorite")
		return nil, ErrInternalServer
	}

	if err := s.breedRepo.IncFavoriteCount(ctx, breedID, 1); err != nil {
		logCtx.WithError(err).Error("Database error incrementing favorite counter")
		return nil, ErrInternalServer
	}

	logCtx.Info("Favorite added")
	user.Password = ""
	return user, nil
}

// Remove pulls the breed from the favorite set (no-op when absent) and
// unconditionally decrements the counter, mirroring Add.
func (s *FavoritesService) Remove(ctx context.Context, userID, breedID primitive.ObjectID) (*domain.User, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "breed_id": breedID.Hex()})

	user, err := s.userRepo.RemoveFavorite(ctx, userID, breedID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("Database error removing favorite")
		return nil, ErrInternalServer
	}

	if err := s.breedRepo.IncFavoriteCount(ctx, breedID, -1); err != nil {
		logCtx.WithError(err).Error("Database error decrementing favorite counter")
		return nil, ErrInternalServer
	}

	logCtx.Info("Favorite removed")
	user.Password = ""
	return user, nil
}

// List resolves the user's favorite set into full breed records.
func (s *FavoritesService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Breed, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID.Hex()).Error("Database error loading user")
		return nil, ErrInternalServer
	}

	breeds, err := s.breedRepo.FindByIDs(ctx, user.Favorites)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID.Hex()).Error("Database error resolving favorites")
		return nil, ErrInternalServer
	}
	return breeds, nil
}
