package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
)

// PostRepository is a mock of repository.PostRepository.
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) List(ctx context.Context, filter domain.PostFilter, skip, limit int64) ([]domain.Post, error) {
	args := m.Called(ctx, filter, skip, limit)
	var posts []domain.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.Post)
	}
	return posts, args.Error(1)
}

func (m *PostRepository) Count(ctx context.Context, filter domain.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PostRepository) Insert(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	var post *domain.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.Post)
	}
	return post, args.Error(1)
}

func (m *PostRepository) FindByIDAndIncViews(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	var post *domain.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.Post)
	}
	return post, args.Error(1)
}

func (m *PostRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.PostUpdate) (*domain.Post, error) {
	args := m.Called(ctx, id, update)
	var post *domain.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.Post)
	}
	return post, args.Error(1)
}

func (m *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PostRepository) PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

func (m *PostRepository) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}
