package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post statuses.
const (
	PostPublished = "published"
	PostDraft     = "draft"
	PostArchived  = "archived"
)

// Post is a community article. Author owns the post; only the author may
// mutate title/content/tags or delete it. Views is a denormalized counter
// incremented on every by-id read.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Content   string               `bson:"content" json:"content"`
	Author    primitive.ObjectID   `bson:"author" json:"author"`
	Breed     *primitive.ObjectID  `bson:"breed,omitempty" json:"breed,omitempty"`
	Tags      []string             `bson:"tags" json:"tags"`
	Comments  []primitive.ObjectID `bson:"comments" json:"comments"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Views     int64                `bson:"views" json:"views"`
	Status    string               `bson:"status" json:"status"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PostFilter restricts post listings. Breed is optional.
type PostFilter struct {
	Status string
	Breed  *primitive.ObjectID
}

// PostUpdate carries the optional fields of a partial post update.
type PostUpdate struct {
	Title   *string
	Content *string
	Tags    []string
}
