package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/repository"
)

// MongoPostRepository is the PostRepository implementation backed by the
// posts collection.
type MongoPostRepository struct {
	coll *mongo.Collection
}

// NewMongoPostRepository creates a MongoPostRepository.
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	if db == nil {
		panic("database handle cannot be nil for MongoPostRepository")
	}
	return &MongoPostRepository{coll: db.Collection("posts")}
}

func postFilterQuery(f domain.PostFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Breed != nil {
		filter["breed"] = *f.Breed
	}
	return filter
}

func (r *MongoPostRepository) List(ctx context.Context, f domain.PostFilter, skip, limit int64) ([]domain.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, postFilterQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: list posts: %w", err)
	}
	posts := []domain.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("mongodb: decode posts: %w", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) Count(ctx context.Context, f domain.PostFilter) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, postFilterQuery(f))
	if err != nil {
		return 0, fmt.Errorf("mongodb: count posts: %w", err)
	}
	return total, nil
}

func (r *MongoPostRepository) Insert(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Comments == nil {
		post.Comments = []primitive.ObjectID{}
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("mongodb: insert post %q: %w", post.Title, err)
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var post domain.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPostNotFound
		}
		return nil, fmt.Errorf("mongodb: find post by id %s: %w", id.Hex(), err)
	}
	return &post, nil
}

func (r *MongoPostRepository) FindByIDAndIncViews(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var post domain.Post
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPostNotFound
		}
		return nil, fmt.Errorf("mongodb: find post and inc views %s: %w", id.Hex(), err)
	}
	return &post, nil
}

func (r *MongoPostRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.PostUpdate) (*domain.Post, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}

	var post domain.Post
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPostNotFound
		}
		return nil, fmt.Errorf("mongodb: update post %s: %w", id.Hex(), err)
	}
	return &post, nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongodb: delete post %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrPostNotFound
	}
	return nil
}

func (r *MongoPostRepository) PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}},
	)
	if err != nil {
		return fmt.Errorf("mongodb: push comment on post %s: %w", postID.Hex(), err)
	}
	return nil
}

func (r *MongoPostRepository) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": commentID}},
	)
	if err != nil {
		return fmt.Errorf("mongodb: pull comment on post %s: %w", postID.Hex(), err)
	}
	return nil
}
