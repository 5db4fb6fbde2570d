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

func newContentFixture() (*ContentService, *mocks.PostRepository, *mocks.CommentRepository, *mocks.UserRepository, *mocks.BreedRepository) {
	postRepo := new(mocks.PostRepository)
	commentRepo := new(mocks.CommentRepository)
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := NewContentService(postRepo, commentRepo, userRepo, breedRepo)
	return svc, postRepo, commentRepo, userRepo, breedRepo
}

func TestListPosts_PublishedOnlyWithResolution(t *testing.T) {
	svc, postRepo, _, userRepo, breedRepo := newContentFixture()

	authorID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	posts := []domain.Post{
		{ID: primitive.NewObjectID(), Title: "Mon beagle", Author: authorID, Breed: &breedID, Status: domain.PostPublished},
		{ID: primitive.NewObjectID(), Title: "Promenade", Author: authorID, Status: domain.PostPublished},
	}
	expectedFilter := domain.PostFilter{Status: domain.PostPublished}
	postRepo.On("List", mock.Anything, expectedFilter, int64(0), int64(10)).Return(posts, nil).Once()
	postRepo.On("Count", mock.Anything, expectedFilter).Return(int64(2), nil).Once()
	// Authors and breeds are each resolved with a single batched query.
	userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{authorID}).
		Return([]domain.User{{ID: authorID, FirstName: "Jean", LastName: "Dupont"}}, nil).Once()
	breedRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{breedID}).
		Return([]domain.Breed{{ID: breedID, Name: "Beagle"}}, nil).Once()

	views, pagination, err := svc.ListPosts(context.Background(), 1, 10, nil)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Jean", views[0].Author.FirstName)
	require.NotNil(t, views[0].Breed)
	assert.Equal(t, "Beagle", views[0].Breed.Name)
	assert.Nil(t, views[1].Breed)
	assert.Equal(t, int64(2), pagination.Total)
	userRepo.AssertExpectations(t)
	breedRepo.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	svc, postRepo, _, userRepo, breedRepo := newContentFixture()

	authorID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	postID := primitive.NewObjectID()
	postRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Post")).Run(func(args mock.Arguments) {
		p := args.Get(1).(*domain.Post)
		p.ID = postID
	}).Return(nil).Once()
	breedRepo.On("IncPostCount", mock.Anything, breedID, int64(1)).Return(nil).Once()
	userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{authorID}).
		Return([]domain.User{{ID: authorID, FirstName: "Jean"}}, nil).Once()
	breedRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{breedID}).
		Return([]domain.Breed{{ID: breedID, Name: "Beagle"}}, nil).Once()

	view, err := svc.CreatePost(context.Background(), authorID, "  Mon beagle  ", "Il adore courir.", &breedID, []string{"chasse"})

	require.NoError(t, err)
	assert.Equal(t, postID, view.ID)
	assert.Equal(t, "Mon beagle", view.Title)
	assert.Equal(t, domain.PostPublished, view.Status)
	postRepo.AssertExpectations(t)
	breedRepo.AssertExpectations(t)
}

func TestCreatePost_InvalidInput(t *testing.T) {
	svc, postRepo, _, _, _ := newContentFixture()

	_, err := svc.CreatePost(context.Background(), primitive.NewObjectID(), "  ", "", nil, nil)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 2)
	postRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGetPost_IncrementsViews(t *testing.T) {
	svc, postRepo, commentRepo, userRepo, _ := newContentFixture()

	postID := primitive.NewObjectID()
	authorID := primitive.NewObjectID()
	commenterID := primitive.NewObjectID()
	post := &domain.Post{ID: postID, Title: "Mon beagle", Author: authorID, Views: 5, Status: domain.PostPublished}
	postRepo.On("FindByIDAndIncViews", mock.Anything, postID).Return(post, nil).Once()
	userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{authorID}).
		Return([]domain.User{{ID: authorID, FirstName: "Jean"}}, nil).Once()
	commentRepo.On("ListByPost", mock.Anything, postID, domain.CommentApproved).
		Return([]domain.Comment{{ID: primitive.NewObjectID(), Content: "Super", Author: commenterID, Post: postID, Status: domain.CommentApproved}}, nil).Once()
	userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{commenterID}).
		Return([]domain.User{{ID: commenterID, FirstName: "Marie"}}, nil).Once()

	view, err := svc.GetPost(context.Background(), postID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), view.Views)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "Marie", view.Comments[0].Author.FirstName)
	postRepo.AssertExpectations(t)
}

func TestUpdatePost_NotOwner(t *testing.T) {
	svc, postRepo, _, _, _ := newContentFixture()

	postID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	actorID := primitive.NewObjectID()
	postRepo.On("FindByID", mock.Anything, postID).
		Return(&domain.Post{ID: postID, Author: ownerID}, nil).Once()

	title := "Hack"
	_, err := svc.UpdatePost(context.Background(), postID, actorID, domain.PostUpdate{Title: &title})

	assert.ErrorIs(t, err, ErrForbidden)
	postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePost_CascadesComments(t *testing.T) {
	svc, postRepo, commentRepo, _, breedRepo := newContentFixture()

	postID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	postRepo.On("FindByID", mock.Anything, postID).
		Return(&domain.Post{ID: postID, Author: ownerID, Breed: &breedID}, nil).Once()
	postRepo.On("Delete", mock.Anything, postID).Return(nil).Once()
	commentRepo.On("DeleteByPost", mock.Anything, postID).Return(int64(3), nil).Once()
	breedRepo.On("IncPostCount", mock.Anything, breedID, int64(-1)).Return(nil).Once()

	err := svc.DeletePost(context.Background(), postID, ownerID)

	require.NoError(t, err)
	postRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
	breedRepo.AssertExpectations(t)
}

func TestDeletePost_NotOwner(t *testing.T) {
	svc, postRepo, commentRepo, _, _ := newContentFixture()

	postID := primitive.NewObjectID()
	postRepo.On("FindByID", mock.Anything, postID).
		Return(&domain.Post{ID: postID, Author: primitive.NewObjectID()}, nil).Once()

	err := svc.DeletePost(context.Background(), postID, primitive.NewObjectID())

	assert.ErrorIs(t, err, ErrForbidden)
	postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	commentRepo.AssertNotCalled(t, "DeleteByPost", mock.Anything, mock.Anything)
}

func TestAddComment_PushesReference(t *testing.T) {
	svc, postRepo, commentRepo, userRepo, _ := newContentFixture()

	postID := primitive.NewObjectID()
	authorID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	postRepo.On("FindByID", mock.Anything, postID).
		Return(&domain.Post{ID: postID, Author: primitive.NewObjectID()}, nil).Once()
	commentRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Comment")).Run(func(args mock.Arguments) {
		c := args.Get(1).(*domain.Comment)
		c.ID = commentID
	}).Return(nil).Once()
	postRepo.On("PushComment", mock.Anything, postID, commentID).Return(nil).Once()
	userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{authorID}).
		Return([]domain.User{{ID: authorID, FirstName: "Jean"}}, nil).Once()

	view, err := svc.AddComment(context.Background(), postID, authorID, "  Trop mignon !  ")

	require.NoError(t, err)
	assert.Equal(t, commentID, view.ID)
	assert.Equal(t, "Trop mignon !", view.Content)
	assert.Equal(t, domain.CommentApproved, view.Status)
	postRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestAddComment_EmptyContent(t *testing.T) {
	svc, postRepo, commentRepo, _, _ := newContentFixture()

	_, err := svc.AddComment(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "   ")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	postRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	commentRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddComment_PostMissing(t *testing.T) {
	svc, postRepo, commentRepo, _, _ := newContentFixture()

	postID := primitive.NewObjectID()
	postRepo.On("FindByID", mock.Anything, postID).Return(nil, repository.ErrPostNotFound).Once()

	_, err := svc.AddComment(context.Background(), postID, primitive.NewObjectID(), "Bonjour")

	assert.ErrorIs(t, err, ErrPostNotFound)
	commentRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpdateComment_NotOwner(t *testing.T) {
	svc, _, commentRepo, _, _ := newContentFixture()

	commentID := primitive.NewObjectID()
	commentRepo.On("FindByID", mock.Anything, commentID).
		Return(&domain.Comment{ID: commentID, Author: primitive.NewObjectID()}, nil).Once()

	_, err := svc.UpdateComment(context.Background(), commentID, primitive.NewObjectID(), "Edit")

	assert.ErrorIs(t, err, ErrForbidden)
	commentRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteComment_PullsReference(t *testing.T) {
	svc, postRepo, commentRepo, _, _ := newContentFixture()

	postID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	authorID := primitive.NewObjectID()
	commentRepo.On("FindByID", mock.Anything, commentID).
		Return(&domain.Comment{ID: commentID, Author: authorID, Post: postID}, nil).Once()
	commentRepo.On("Delete", mock.Anything, commentID).Return(nil).Once()
	postRepo.On("PullComment", mock.Anything, postID, commentID).Return(nil).Once()

	err := svc.DeleteComment(context.Background(), commentID, authorID, postID)

	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}
