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

// MongoBreedRepository is the BreedRepository implementation backed by the
// breeds collection.
type MongoBreedRepository struct {
	coll *mongo.Collection
}

// NewMongoBreedRepository creates a MongoBreedRepository.
func NewMongoBreedRepository(db *mongo.Database) *MongoBreedRepository {
	if db == nil {
		panic("database handle cannot be nil for MongoBreedRepository")
	}
	return &MongoBreedRepository{coll: db.Collection("breeds")}
}

func (r *MongoBreedRepository) List(ctx context.Context, skip, limit int64) ([]domain.Breed, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: list breeds: %w", err)
	}
	breeds := []domain.Breed{}
	if err := cursor.All(ctx, &breeds); err != nil {
		return nil, fmt.Errorf("mongodb: decode breeds: %w", err)
	}
	return breeds, nil
}

func (r *MongoBreedRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongodb: count breeds: %w", err)
	}
	return total, nil
}

func (r *MongoBreedRepository) Search(ctx context.Context, query string) ([]domain.Breed, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: search breeds %q: %w", query, err)
	}
	breeds := []domain.Breed{}
	if err := cursor.All(ctx, &breeds); err != nil {
		return nil, fmt.Errorf("mongodb: decode breeds: %w", err)
	}
	return breeds, nil
}

func (r *MongoBreedRepository) Filter(ctx context.Context, f domain.BreedFilter) ([]domain.Breed, error) {
	filter := bson.M{}
	if f.Size != "" {
		filter["characteristics.size"] = f.Size
	}
	if f.ActivityLevel != "" {
		filter["characteristics.activityLevel"] = f.ActivityLevel
	}
	if f.Temperament != "" {
		filter["characteristics.temperament"] = f.Temperament
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb: filter breeds: %w", err)
	}
	breeds := []domain.Breed{}
	if err := cursor.All(ctx, &breeds); err != nil {
		return nil, fmt.Errorf("mongodb: decode breeds: %w", err)
	}
	return breeds, nil
}

func (r *MongoBreedRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Breed, error) {
	var breed domain.Breed
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&breed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBreedNotFound
		}
		return nil, fmt.Errorf("mongodb: find breed by id %s: %w", id.Hex(), err)
	}
	return &breed, nil
}

func (r *MongoBreedRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Breed, error) {
	if len(ids) == 0 {
		return []domain.Breed{}, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("mongodb: find breeds by ids: %w", err)
	}
	breeds := []domain.Breed{}
	if err := cursor.All(ctx, &breeds); err != nil {
		return nil, fmt.Errorf("mongodb: decode breeds: %w", err)
	}
	return breeds, nil
}

func (r *MongoBreedRepository) Insert(ctx context.Context, breed *domain.Breed) error {
	now := time.Now().UTC()
	breed.CreatedAt = now
	breed.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, breed)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("mongodb: insert breed %q: %w", breed.Name, err)
	}
	breed.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoBreedRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.BreedUpdate) (*domain.Breed, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Characteristics != nil {
		set["characteristics"] = *update.Characteristics
	}
	if update.Origin != nil {
		set["origin"] = *update.Origin
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Care != nil {
		set["care"] = *update.Care
	}
	if update.Health != nil {
		set["health"] = *update.Health
	}

	var breed domain.Breed
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&breed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBreedNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("mongodb: update breed %s: %w", id.Hex(), err)
	}
	return &breed, nil
}

func (r *MongoBreedRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongodb: delete breed %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrBreedNotFound
	}
	return nil
}

func (r *MongoBreedRepository) IncFavoriteCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	return r.inc(ctx, id, "favoriteCount", delta)
}

func (r *MongoBreedRepository) IncPostCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	return r.inc(ctx, id, "postCount", delta)
}

func (r *MongoBreedRepository) inc(ctx context.Context, id primitive.ObjectID, field string, delta int64) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{field: delta}},
	)
	if err != nil {
		return fmt.Errorf("mongodb: inc %s on breed %s: %w", field, id.Hex(), err)
	}
	return nil
}

func (r *MongoBreedRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongodb: delete all breeds: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MongoBreedRepository) InsertMany(ctx context.Context, breeds []domain.Breed) (int, error) {
	docs := make([]interface{}, 0, len(breeds))
	now := time.Now().UTC()
	for i := range breeds {
		breeds[i].CreatedAt = now
		breeds[i].UpdatedAt = now
		docs = append(docs, breeds[i])
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, repository.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("mongodb: insert breeds: %w", err)
	}
	return len(res.InsertedIDs), nil
}
