package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Breed sizes.
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extra-large"
)

// Activity levels.
const (
	ActivityLow      = "low"
	ActivityModerate = "moderate"
	ActivityHigh     = "high"
	ActivityVeryHigh = "very-high"
)

// Range is a min/max interval (weight in kg, height in cm, life expectancy in years).
type Range struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// Characteristics groups the structured attributes of a breed.
type Characteristics struct {
	Size           string   `bson:"size" json:"size"`
	Weight         Range    `bson:"weight" json:"weight"`
	Height         Range    `bson:"height" json:"height"`
	Temperament    []string `bson:"temperament" json:"temperament"`
	ActivityLevel  string   `bson:"activityLevel" json:"activityLevel"`
	LifeExpectancy Range    `bson:"lifeExpectancy" json:"lifeExpectancy"`
}

// Image is an illustration of the breed.
type Image struct {
	URL string `bson:"url,omitempty" json:"url,omitempty"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

// Care holds the free-text care advice sections.
type Care struct {
	Grooming string `bson:"grooming,omitempty" json:"grooming,omitempty"`
	Exercise string `bson:"exercise,omitempty" json:"exercise,omitempty"`
	Diet     string `bson:"diet,omitempty" json:"diet,omitempty"`
}

// Health holds known health issues and preventive care advice.
type Health struct {
	CommonIssues   []string `bson:"commonIssues,omitempty" json:"commonIssues,omitempty"`
	PreventiveCare string   `bson:"preventiveCare,omitempty" json:"preventiveCare,omitempty"`
}

// Breed is a catalog entry. Name is globally unique.
// FavoriteCount and PostCount are denormalized counters maintained by
// atomic increments, never recomputed from source records.
type Breed struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Characteristics Characteristics    `bson:"characteristics" json:"characteristics"`
	Origin          string             `bson:"origin,omitempty" json:"origin,omitempty"`
	Image           Image              `bson:"image,omitempty" json:"image,omitempty"`
	Care            Care               `bson:"care,omitempty" json:"care,omitempty"`
	Health          Health             `bson:"health,omitempty" json:"health,omitempty"`
	FavoriteCount   int64              `bson:"favoriteCount" json:"favoriteCount"`
	PostCount       int64              `bson:"postCount" json:"postCount"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BreedFilter is a conjunctive exact-match filter; empty fields are not constrained.
type BreedFilter struct {
	Size          string
	Temperament   string
	ActivityLevel string
}

// BreedUpdate carries the optional fields of a partial breed update.
type BreedUpdate struct {
	Name            *string
	Description     *string
	Characteristics *Characteristics
	Origin          *string
	Image           *Image
	Care            *Care
	Health          *Health
}
