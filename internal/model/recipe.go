package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe represents a recipe document. Author holds the hex id of the user
// that created it and never changes after insert.
type Recipe struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Ingredients  []string           `json:"ingredients" bson:"ingredients"`
	Instructions []string           `json:"instructions" bson:"instructions"`
	Categories   []string           `json:"categories,omitempty" bson:"categories,omitempty"`
	Author       string             `json:"author" bson:"author"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
