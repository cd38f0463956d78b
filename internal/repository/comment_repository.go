package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipehub/internal/db"
	"recipehub/internal/model"
)

// CommentRepository defines persistence operations over the comments collection.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	ListByRecipe(ctx context.Context, recipeID primitive.ObjectID) ([]model.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByAuthor(ctx context.Context, author string) error
}

type commentRepository struct {
	col *mongo.Collection
}

// NewCommentRepository builds a Mongo-backed repository.
func NewCommentRepository(database *mongo.Database) CommentRepository {
	return &commentRepository{col: database.Collection(db.CommentsCollection)}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	res, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = id
	}
	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByRecipe(ctx context.Context, recipeID primitive.ObjectID) ([]model.Comment, error) {
	cursor, err := r.col.Find(ctx, bson.M{"recipe_id": recipeID})
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *commentRepository) DeleteByAuthor(ctx context.Context, author string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"author": author})
	return err
}
