package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment attached to a recipe. RecipeID and Author are
// immutable after insert.
type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RecipeID  primitive.ObjectID `json:"recipe_id" bson:"recipe_id"`
	Author    string             `json:"author" bson:"author"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
