package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/repository"
	"github.com/ilumaty/greendog-backend/internal/repository/mocks"
)

func TestFavoritesAdd_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := NewFavoritesService(userRepo, breedRepo)

	userID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	breedRepo.On("FindByID", mock.Anything, breedID).Return(&domain.Breed{ID: breedID}, nil).Once()
	userRepo.On("AddFavorite", mock.Anything, userID, breedID).
		Return(&domain.User{ID: userID, Password: "hash", Favorites: []primitive.ObjectID{breedID}}, nil).Once()
	breedRepo.On("IncFavoriteCount", mock.Anything, breedID, int64(1)).Return(nil).Once()

	user, err := svc.Add(context.Background(), userID, breedID)

	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.Contains(t, user.Favorites, breedID)
	userRepo.AssertExpectations(t)
	breedRepo.AssertExpectations(t)
}

func TestFavoritesAdd_BreedMissing(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := NewFavoritesService(userRepo, breedRepo)

	breedID := primitive.NewObjectID()
	breedRepo.On("FindByID", mock.Anything, breedID).Return(nil, repository.ErrBreedNotFound).Once()

	_, err := svc.Add(context.Background(), primitive.NewObjectID(), breedID)

	assert.ErrorIs(t, err, ErrBreedNotFound)
	userRepo.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoritesAdd_RepeatedAddStillIncrements(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := NewFavoritesService(userRepo, breedRepo)

	userID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	stored := &domain.User{ID: userID, Favorites: []primitive.ObjectID{breedID}}
	breedRepo.On("FindByID", mock.Anything, breedID).Return(&domain.Breed{ID: breedID}, nil).Twice()
	userRepo.On("AddFavorite", mock.Anything, userID, breedID).Return(stored, nil).Twice()
	breedRepo.On("IncFavoriteCount", mock.Anything, breedID, int64(1)).Return(nil).Twice()

	_, err := svc.Add(context.Background(), userID, breedID)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), userID, breedID)
	require.NoError(t, err)

	// The set add is idempotent but the counter is bumped every call.
	breedRepo.AssertNumberOfCalls(t, "IncFavoriteCount", 2)
}

func TestFavoritesRemove_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := NewFavoritesService(userRepo, breedRepo)

	userID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	userRepo.On("RemoveFavorite", mock.Anything, userID, breedID).
		Return(&domain.User{ID: userID, Favorites: []primitive.ObjectID{}}, nil).Once()
	breedRepo.On("IncFavoriteCount", mock.Anything, breedID, int64(-1)).Return(nil).Once()

	user, err := svc.Remove(context.Background(), userID, breedID)

	require.NoError(t, err)
	assert.Empty(t, user.Favorites)
	breedRepo.AssertExpectations(t)
}

func TestFavoritesRemove_UserMissing(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := NewFavoritesService(userRepo, breedRepo)

	userID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	userRepo.On("RemoveFavorite", mock.Anything, userID, breedID).Return(nil, repository.ErrUserNotFound).Once()

	_, err := svc.Remove(context.Background(), userID, breedID)

	assert.ErrorIs(t, err, ErrUserNotFound)
	breedRepo.AssertNotCalled(t, "IncFavoriteCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoritesList_ResolvesBreeds(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := NewFavoritesService(userRepo, breedRepo)

	userID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	userRepo.On("FindByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Favorites: []primitive.ObjectID{breedID}}, nil).Once()
	breedRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{breedID}).
		Return([]domain.Breed{{ID: breedID, Name: "Labrador Retriever"}}, nil).Once()

	breeds, err := svc.List(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, breeds, 1)
	assert.Equal(t, "Labrador Retriever", breeds[0].Name)
}
