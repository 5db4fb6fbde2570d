package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
)

// BreedRepository is a mock of repository.BreedRepository.
type BreedRepository struct {
	mock.Mock
}

func (m *BreedRepository) List(ctx context.Context, skip, limit int64) ([]domain.Breed, error) {
	args := m.Called(ctx, skip, limit)
	var breeds []domain.Breed
	if args.Get(0) != nil {
		breeds = args.Get(0).([]domain.Breed)
	}
	return breeds, args.Error(1)
}

func (m *BreedRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BreedRepository) Search(ctx context.Context, query string) ([]domain.Breed, error) {
	args := m.Called(ctx, query)
	var breeds []domain.Breed
	if args.Get(0) != nil {
		breeds = args.Get(0).([]domain.Breed)
	}
	return breeds, args.Error(1)
}

func (m *BreedRepository) Filter(ctx context.Context, filter domain.BreedFilter) ([]domain.Breed, error) {
	args := m.Called(ctx, filter)
	var breeds []domain.Breed
	if args.Get(0) != nil {
		breeds = args.Get(0).([]domain.Breed)
	}
	return breeds, args.Error(1)
}

func (m *BreedRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Breed, error) {
	args := m.Called(ctx, id)
	var breed *domain.Breed
	if args.Get(0) != nil {
		breed = args.Get(0).(*domain.Breed)
	}
	return breed, args.Error(1)
}

func (m *BreedRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Breed, error) {
	args := m.Called(ctx, ids)
	var breeds []domain.Breed
	if args.Get(0) != nil {
		breeds = args.Get(0).([]domain.Breed)
	}
	return breeds, args.Error(1)
}

func (m *BreedRepository) Insert(ctx context.Context, breed *domain.Breed) error {
	args := m.Called(ctx, breed)
	return args.Error(0)
}

func (m *BreedRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.BreedUpdate) (*domain.Breed, error) {
	args := m.Called(ctx, id, update)
	var breed *domain.Breed
	if args.Get(0) != nil {
		breed = args.Get(0).(*domain.Breed)
	}
	return breed, args.Error(1)
}

func (m *BreedRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BreedRepository) IncFavoriteCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *BreedRepository) IncPostCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *BreedRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BreedRepository) InsertMany(ctx context.Context, breeds []domain.Breed) (int, error) {
	args := m.Called(ctx, breeds)
	return args.Int(0), args.Error(1)
}
