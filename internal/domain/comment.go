package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment statuses.
const (
	CommentApproved = "approved"
	CommentPending  = "pending"
	CommentRejected = "rejected"
)

// Comment is attached to a post. Only approved comments are listed publicly.
type Comment struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Content   string               `bson:"content" json:"content"`
	Author    primitive.ObjectID   `bson:"author" json:"author"`
	Post      primitive.ObjectID   `bson:"post" json:"post"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Status    string               `bson:"status" json:"status"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}
