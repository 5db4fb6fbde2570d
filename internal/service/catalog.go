package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/repository"
)

// Pagination describes a listing window. Pages is ceil(Total/Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// normalizePage clamps page/limit to the defaults used across listings.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func buildPagination(page, limit int, total int64) *Pagination {
	pages := (total + int64(limit) - 1) / int64(limit)
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// CatalogService serves the breed catalog.
type CatalogService struct {
	breedRepo repository.BreedRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(breedRepo repository.BreedRepository) *CatalogService {
	if breedRepo == nil {
		panic("BreedRepository cannot be nil for CatalogService")
	}
	return &CatalogService{breedRepo: breedRepo}
}

// List returns a name-sorted page of breeds plus pagination metadata.
func (s *CatalogService) List(ctx context.Context, page, limit int) ([]domain.Breed, *Pagination, error) {
	page, limit = normalizePage(page, limit)
	skip := int64(page-1) * int64(limit)

	breeds, err := s.breedRepo.List(ctx, skip, int64(limit))
	if err != nil {
		logrus.WithError(err).Error("Database error listing breeds")
		return nil, nil, ErrInternalServer
	}
	total, err := s.breedRepo.Count(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error counting breeds")
		return nil, nil, ErrInternalServer
	}
	return breeds, buildPagination(page, limit, total), nil
}

// Search runs a relevance-ranked full-text search over name and
// description. A blank query is rejected before touching the store.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Breed, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ValidationMessage("query", "La recherche est requise")
	}

	breeds, err := s.breedRepo.Search(ctx, query)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("Database error searching breeds")
		return nil, ErrInternalServer
	}
	return breeds, nil
}

// Filter applies a conjunctive exact-match filter over the optional
// attributes. Absent fields are not constrained.
func (s *CatalogService) Filter(ctx context.Context, filter domain.BreedFilter) ([]domain.Breed, error) {
	breeds, err := s.breedRepo.Filter(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Database error filtering breeds")
		return nil, ErrInternalServer
	}
	return breeds, nil
}

// GetByID returns a single breed.
func (s *CatalogService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Breed, error) {
	breed, err := s.breedRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBreedNotFound) {
			return nil, ErrBreedNotFound
		}
		logrus.WithError(err).WithField("breed_id", id.Hex()).Error("Database error loading breed")
		return nil, ErrInternalServer
	}
	return breed, nil
}

// Create adds a breed to the catalog. Admin only, enforced by the router.
func (s *CatalogService) Create(ctx context.Context, breed *domain.Breed) (*domain.Breed, error) {
	breed.Name = strings.TrimSpace(breed.Name)
	if err := NewValidationError(domain.ValidateBreed(breed)); err != nil {
		return nil, err
	}

	if err := s.breedRepo.Insert(ctx, breed); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrBreedNameTaken
		}
		logrus.WithError(err).WithField("name", breed.Name).Error("Database error inserting breed")
		return nil, ErrInternalServer
	}
	logrus.WithField("breed_id", breed.ID.Hex()).Info("Breed created")
	return breed, nil
}

// Update applies a partial breed update. Admin only.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, update domain.BreedUpdate) (*domain.Breed, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, ValidationMessage("name", "Race du chien est requis")
		}
		update.Name = &trimmed
	}
	if update.Characteristics != nil {
		probe := domain.Breed{Name: "x", Description: "x", Characteristics: *update.Characteristics}
		if err := NewValidationError(domain.ValidateBreed(&probe)); err != nil {
			return nil, err
		}
	}

	breed, err := s.breedRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrBreedNotFound) {
			return nil, ErrBreedNotFound
		}
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrBreedNameTaken
		}
		logrus.WithError(err).WithField("breed_id", id.Hex()).Error("Database error updating breed")
		return nil, ErrInternalServer
	}
	return breed, nil
}

// Delete removes a breed from the catalog. Admin only.
func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.breedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBreedNotFound) {
			return ErrBreedNotFound
		}
		logrus.WithError(err).WithField("breed_id", id.Hex()).Error("Database error deleting breed")
		return ErrInternalServer
	}
	logrus.WithField("breed_id", id.Hex()).Info("Breed deleted")
	return nil
}
