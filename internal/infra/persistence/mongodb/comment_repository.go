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

// MongoCommentRepository is the CommentRepository implementation backed by
// the comments collection.
type MongoCommentRepository struct {
	coll *mongo.Collection
}

// NewMongoCommentRepository creates a MongoCommentRepository.
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	if db == nil {
		panic("database handle cannot be nil for MongoCommentRepository")
	}
	return &MongoCommentRepository{coll: db.Collection("comments")}
}

func (r *MongoCommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID, status string) ([]domain.Comment, error) {
	filter := bson.M{"post": postID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: list comments for post %s: %w", postID.Hex(), err)
	}
	comments := []domain.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("mongodb: decode comments: %w", err)
	}
	return comments, nil
}

func (r *MongoCommentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	if comment.Status == "" {
		comment.Status = domain.CommentApproved
	}
	if comment.Likes == nil {
		comment.Likes = []primitive.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("mongodb: insert comment: %w", err)
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoCommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("mongodb: find comment by id %s: %w", id.Hex(), err)
	}
	return &comment, nil
}

func (r *MongoCommentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("mongodb: update comment %s: %w", id.Hex(), err)
	}
	return &comment, nil
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongodb: delete comment %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}
	return nil
}

func (r *MongoCommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"post": postID})
	if err != nil {
		return 0, fmt.Errorf("mongodb: delete comments for post %s: %w", postID.Hex(), err)
	}
	return res.DeletedCount, nil
}
