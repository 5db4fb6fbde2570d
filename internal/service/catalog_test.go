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

func TestCatalogList_Pagination(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	breedRepo.On("List", mock.Anything, int64(10), int64(10)).
		Return([]domain.Breed{{Name: "Beagle"}}, nil).Once()
	breedRepo.On("Count", mock.Anything).Return(int64(25), nil).Once()

	breeds, pagination, err := svc.List(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Len(t, breeds, 1)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 10, pagination.Limit)
	assert.Equal(t, int64(25), pagination.Total)
	// 25 items at 10 per page round up to 3 pages.
	assert.Equal(t, int64(3), pagination.Pages)
	breedRepo.AssertExpectations(t)
}

func TestCatalogList_DefaultsOnBadInput(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	breedRepo.On("List", mock.Anything, int64(0), int64(10)).Return([]domain.Breed{}, nil).Once()
	breedRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()

	_, pagination, err := svc.List(context.Background(), -3, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.Limit)
	assert.Equal(t, int64(0), pagination.Pages)
	breedRepo.AssertExpectations(t)
}

func TestCatalogSearch_BlankQueryRejected(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	_, err := svc.Search(context.Background(), "   ")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	breedRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestCatalogSearch_TrimsQuery(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	breedRepo.On("Search", mock.Anything, "beagle").
		Return([]domain.Breed{{Name: "Beagle"}}, nil).Once()

	breeds, err := svc.Search(context.Background(), "  beagle  ")

	require.NoError(t, err)
	assert.Len(t, breeds, 1)
	breedRepo.AssertExpectations(t)
}

func TestCatalogFilter_PassesThrough(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	filter := domain.BreedFilter{Size: domain.SizeSmall, ActivityLevel: domain.ActivityHigh}
	breedRepo.On("Filter", mock.Anything, filter).
		Return([]domain.Breed{{Name: "Beagle"}}, nil).Once()

	breeds, err := svc.Filter(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, breeds, 1)
	breedRepo.AssertExpectations(t)
}

func TestCatalogGetByID_NotFound(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	id := primitive.NewObjectID()
	breedRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrBreedNotFound).Once()

	_, err := svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrBreedNotFound)
}

func TestCatalogCreate_DuplicateName(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	breed := &domain.Breed{
		Name:        "Beagle",
		Description: "Petit chien de chasse joyeux",
		Characteristics: domain.Characteristics{
			Size:          domain.SizeSmall,
			ActivityLevel: domain.ActivityHigh,
		},
	}
	breedRepo.On("Insert", mock.Anything, breed).Return(repository.ErrDuplicateEntry).Once()

	_, err := svc.Create(context.Background(), breed)

	assert.ErrorIs(t, err, ErrBreedNameTaken)
	breedRepo.AssertExpectations(t)
}

func TestCatalogCreate_InvalidBreed(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	_, err := svc.Create(context.Background(), &domain.Breed{Name: "  "})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	breedRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCatalogUpdate_BlankNameRejected(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	blank := "   "
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), domain.BreedUpdate{Name: &blank})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	breedRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogDelete_NotFound(t *testing.T) {
	breedRepo := new(mocks.BreedRepository)
	svc := NewCatalogService(breedRepo)

	id := primitive.NewObjectID()
	breedRepo.On("Delete", mock.Anything, id).Return(repository.ErrBreedNotFound).Once()

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, ErrBreedNotFound)
}
