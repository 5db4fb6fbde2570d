package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/repository"
)

// AuthorSummary is the public projection of a post or comment author.
type AuthorSummary struct {
	ID        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Avatar    string             `json:"avatar,omitempty"`
}

// BreedSummary is the minimal breed reference attached to a post.
type BreedSummary struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// CommentView is a comment with its author resolved.
type CommentView struct {
	ID        primitive.ObjectID `json:"id"`
	Content   string             `json:"content"`
	Author    *AuthorSummary     `json:"author"`
	Post      primitive.ObjectID `json:"post"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// PostView is a post with author and breed references resolved. Comments
// is only populated on the by-id read.
type PostView struct {
	ID        primitive.ObjectID `json:"id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Author    *AuthorSummary     `json:"author"`
	Breed     *BreedSummary      `json:"breed,omitempty"`
	Tags      []string           `json:"tags"`
	Comments  []CommentView      `json:"comments,omitempty"`
	Views     int64              `json:"views"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ContentService handles posts and their nested comments.
type ContentService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	breedRepo   repository.BreedRepository
}

// NewContentService creates a ContentService.
func NewContentService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository, breedRepo repository.BreedRepository) *ContentService {
	if postRepo == nil || commentRepo == nil || userRepo == nil || breedRepo == nil {
		panic("repositories cannot be nil for ContentService")
	}
	return &ContentService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		breedRepo:   breedRepo,
	}
}

// ListPosts returns the published posts, newest first, optionally filtered
// by breed, with authors and breed names resolved.
func (s *ContentService) ListPosts(ctx context.Context, page, limit int, breedID *primitive.ObjectID) ([]PostView, *Pagination, error) {
	page, limit = normalizePage(page, limit)
	skip := int64(page-1) * int64(limit)
	filter := domain.PostFilter{Status: domain.PostPublished, Breed: breedID}

	posts, err := s.postRepo.List(ctx, filter, skip, int64(limit))
	if err != nil {
		logrus.WithError(err).Error("Database error listing posts")
		return nil, nil, ErrInternalServer
	}
	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Database error counting posts")
		return nil, nil, ErrInternalServer
	}

	views, err := s.resolvePosts(ctx, posts)
	if err != nil {
		return nil, nil, err
	}
	return views, buildPagination(page, limit, total), nil
}

// CreatePost publishes a new post owned by the author. Status is always
// published; drafts are not exposed through this API.
func (s *ContentService) CreatePost(ctx context.Context, authorID primitive.ObjectID, title, content string, breedID *primitive.ObjectID, tags []string) (*PostView, error) {
	logCtx := logrus.WithField("author_id", authorID.Hex())

	if err := NewValidationError(domain.ValidatePost(title, content)); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:   strings.TrimSpace(title),
		Content: content,
		Author:  authorID,
		Breed:   breedID,
		Tags:    tags,
		Status:  domain.PostPublished,
	}
	if err := s.postRepo.Insert(ctx, post); err != nil {
		logCtx.WithError(err).Error("Database error inserting post")
		return nil, ErrInternalServer
	}

	if breedID != nil {
		if err := s.breedRepo.IncPostCount(ctx, *breedID, 1); err != nil {
			logCtx.WithError(err).Warn("Failed to increment breed post counter")
		}
	}

	logCtx.WithField("post_id", post.ID.Hex()).Info("Post created")
	views, err := s.resolvePosts(ctx, []domain.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// GetPost returns a post with author, breed and approved comments
// resolved. Every call counts as a view: the counter increment is a side
// effect of the read itself.
func (s *ContentService) GetPost(ctx context.Context, id primitive.ObjectID) (*PostView, error) {
	post, err := s.postRepo.FindByIDAndIncViews(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logrus.WithError(err).WithField("post_id", id.Hex()).Error("Database error loading post")
		return nil, ErrInternalServer
	}

	views, err := s.resolvePosts(ctx, []domain.Post{*post})
	if err != nil {
		return nil, err
	}
	view := views[0]

	comments, err := s.listCommentViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Comments = comments
	return &view, nil
}

// UpdatePost applies a partial update after checking the actor owns the post.
func (s *ContentService) UpdatePost(ctx context.Context, id, actorID primitive.ObjectID, update domain.PostUpdate) (*PostView, error) {
	logCtx := logrus.WithFields(logrus.Fields{"post_id": id.Hex(), "actor_id": actorID.Hex()})

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logCtx.WithError(err).Error("Database error loading post")
		return nil, ErrInternalServer
	}
	if post.Author != actorID {
		logCtx.Warn("Post update rejected: actor is not the author")
		return nil, ErrForbidden
	}

	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			return nil, ValidationMessage("title", "Title is required")
		}
		update.Title = &trimmed
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return nil, ValidationMessage("content", "Content is required")
	}

	updated, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logCtx.WithError(err).Error("Database error updating post")
		return nil, ErrInternalServer
	}

	logCtx.Info("Post updated")
	views, err := s.resolvePosts(ctx, []domain.Post{*updated})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// DeletePost removes an owned post and cascades to its comments. The two
// deletes are separate store operations; a crash in between leaves
// orphaned comments until the next delete attempt.
func (s *ContentService) DeletePost(ctx context.Context, id, actorID primitive.ObjectID) error {
	logCtx := logrus.WithFields(logrus.Fields{"post_id": id.Hex(), "actor_id": actorID.Hex()})

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		logCtx.WithError(err).Error("Database error loading post")
		return ErrInternalServer
	}
	if post.Author != actorID {
		logCtx.Warn("Post delete rejected: actor is not the author")
		return ErrForbidden
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		logCtx.WithError(err).Error("Database error deleting post")
		return ErrInternalServer
	}

	deleted, err := s.commentRepo.DeleteByPost(ctx, id)
	if err != nil {
		logCtx.WithError(err).Error("Database error cascading comment delete")
		return ErrInternalServer
	}

	if post.Breed != nil {
		if err := s.breedRepo.IncPostCount(ctx, *post.Breed, -1); err != nil {
			logCtx.WithError(err).Warn("Failed to decrement breed post counter")
		}
	}

	logCtx.WithField("comments_deleted", deleted).Info("Post deleted")
	return nil
}

// ListComments returns the approved comments of a post, newest first.
func (s *ContentService) ListComments(ctx context.Context, postID primitive.ObjectID) ([]CommentView, error) {
	return s.listCommentViews(ctx, postID)
}

// AddComment creates a comment under a post and appends its reference to
// the post's comment list.
func (s *ContentService) AddComment(ctx context.Context, postID, authorID primitive.ObjectID, content string) (*CommentView, error) {
	logCtx := logrus.WithFields(logrus.Fields{"post_id": postID.Hex(), "author_id": authorID.Hex()})

	if err := NewValidationError(domain.ValidateComment(content)); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logCtx.WithError(err).Error("Database error checking post")
		return nil, ErrInternalServer
	}

	comment := &domain.Comment{
		Content: strings.TrimSpace(content),
		Author:  authorID,
		Post:    postID,
		Status:  domain.CommentApproved,
	}
	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		logCtx.WithError(err).Error("Database error inserting comment")
		return nil, ErrInternalServer
	}

	if err := s.postRepo.PushComment(ctx, postID, comment.ID); err != nil {
		logCtx.WithError(err).Error("Database error appending comment reference")
		return nil, ErrInternalServer
	}

	logCtx.WithField("comment_id", comment.ID.Hex()).Info("Comment added")
	view, err := s.resolveComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateComment replaces the body of an owned comment.
func (s *ContentService) UpdateComment(ctx context.Context, commentID, actorID primitive.ObjectID, content string) (*CommentView, error) {
	logCtx := logrus.WithFields(logrus.Fields{"comment_id": commentID.Hex(), "actor_id": actorID.Hex()})

	if err := NewValidationError(domain.ValidateComment(content)); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		logCtx.WithError(err).Error("Database error loading comment")
		return nil, ErrInternalServer
	}
	if comment.Author != actorID {
		logCtx.Warn("Comment update rejected: actor is not the author")
		return nil, ErrForbidden
	}

	updated, err := s.commentRepo.UpdateContent(ctx, commentID, strings.TrimSpace(content))
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		logCtx.WithError(err).Error("Database error updating comment")
		return nil, ErrInternalServer
	}

	logCtx.Info("Comment updated")
	return s.resolveComment(ctx, updated)
}

// DeleteComment removes an owned comment and pulls its reference from the
// parent post's comment list.
func (s *ContentService) DeleteComment(ctx context.Context, commentID, actorID, postID primitive.ObjectID) error {
	logCtx := logrus.WithFields(logrus.Fields{"comment_id": commentID.Hex(), "actor_id": actorID.Hex()})

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		logCtx.WithError(err).Error("Database error loading comment")
		return ErrInternalServer
	}
	if comment.Author != actorID {
		logCtx.Warn("Comment delete rejected: actor is not the author")
		return ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		logCtx.WithError(err).Error("Database error deleting comment")
		return ErrInternalServer
	}

	if err := s.postRepo.PullComment(ctx, postID, commentID); err != nil {
		logCtx.WithError(err).Error("Database error pulling comment reference")
		return ErrInternalServer
	}

	logCtx.Info("Comment deleted")
	return nil
}

// resolvePosts attaches author and breed summaries to raw posts with one
// query per referenced collection.
func (s *ContentService) resolvePosts(ctx context.Context, posts []domain.Post) ([]PostView, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(posts))
	breedIDs := make([]primitive.ObjectID, 0, len(posts))
	seenAuthors := map[primitive.ObjectID]bool{}
	seenBreeds := map[primitive.ObjectID]bool{}
	for _, p := range posts {
		if !seenAuthors[p.Author] {
			seenAuthors[p.Author] = true
			authorIDs = append(authorIDs, p.Author)
		}
		if p.Breed != nil && !seenBreeds[*p.Breed] {
			seenBreeds[*p.Breed] = true
			breedIDs = append(breedIDs, *p.Breed)
		}
	}

	authors, err := s.authorSummaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	breeds := map[primitive.ObjectID]*BreedSummary{}
	if len(breedIDs) > 0 {
		found, err := s.breedRepo.FindByIDs(ctx, breedIDs)
		if err != nil {
			logrus.WithError(err).Error("Database error resolving post breeds")
			return nil, ErrInternalServer
		}
		for _, b := range found {
			breeds[b.ID] = &BreedSummary{ID: b.ID, Name: b.Name}
		}
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		view := PostView{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			Author:    authors[p.Author],
			Tags:      p.Tags,
			Views:     p.Views,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
		if p.Breed != nil {
			view.Breed = breeds[*p.Breed]
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ContentService) listCommentViews(ctx context.Context, postID primitive.ObjectID) ([]CommentView, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID, domain.CommentApproved)
	if err != nil {
		logrus.WithError(err).WithField("post_id", postID.Hex()).Error("Database error listing comments")
		return nil, ErrInternalServer
	}

	authorIDs := make([]primitive.ObjectID, 0, len(comments))
	seen := map[primitive.ObjectID]bool{}
	for _, c := range comments {
		if !seen[c.Author] {
			seen[c.Author] = true
			authorIDs = append(authorIDs, c.Author)
		}
	}
	authors, err := s.authorSummaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			Author:    authors[c.Author],
			Post:      c.Post,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return views, nil
}

func (s *ContentService) resolveComment(ctx context.Context, comment *domain.Comment) (*CommentView, error) {
	authors, err := s.authorSummaries(ctx, []primitive.ObjectID{comment.Author})
	if err != nil {
		return nil, err
	}
	return &CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    authors[comment.Author],
		Post:      comment.Post,
		Status:    comment.Status,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}, nil
}

func (s *ContentService) authorSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*AuthorSummary, error) {
	out := map[primitive.ObjectID]*AuthorSummary{}
	if len(ids) == 0 {
		return out, nil
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		logrus.WithError(err).Error("Database error resolving authors")
		return nil, ErrInternalServer
	}
	for _, u := range users {
		out[u.ID] = &AuthorSummary{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Avatar:    u.Avatar,
		}
	}
	return out, nil
}
