package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipehub/internal/db"
	"recipehub/internal/model"
)

// RecipeRepository defines persistence operations over the recipes collection.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Update(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByAuthor(ctx context.Context, author string) ([]model.Recipe, error)
	DeleteByAuthor(ctx context.Context, author string) error
}

type recipeRepository struct {
	col *mongo.Collection
}

// NewRecipeRepository builds a Mongo-backed repository.
func NewRecipeRepository(database *mongo.Database) RecipeRepository {
	return &recipeRepository{col: database.Collection(db.RecipesCollection)}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	res, err := r.col.InsertOne(ctx, recipe)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		recipe.ID = id
	}
	return nil
}

func (r *recipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	recipes := make([]model.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update replaces the mutable fields; _id, author, and created_at are left
// untouched.
func (r *recipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": recipe.ID}, bson.M{"$set": bson.M{
		"title":        recipe.Title,
		"ingredients":  recipe.Ingredients,
		"instructions": recipe.Instructions,
		"categories":   recipe.Categories,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, author string) ([]model.Recipe, error) {
	cursor, err := r.col.Find(ctx, bson.M{"author": author})
	if err != nil {
		return nil, err
	}
	recipes := make([]model.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) DeleteByAuthor(ctx context.Context, author string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"author": author})
	return err
}
