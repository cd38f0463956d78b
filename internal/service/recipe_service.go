package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipehub/internal/auth"
	"recipehub/internal/cache"
	domainerrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const recipeCacheTTL = 5 * time.Minute

// RecipeService exposes recipe use cases. Reads are public; mutations take the
// verified actor id and enforce the ownership policy.
type RecipeService interface {
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id string) (*model.Recipe, error)
	Create(ctx context.Context, actorID, title string, ingredients, instructions, categories []string) (*model.Recipe, error)
	Update(ctx context.Context, actorID, id, title string, ingredients, instructions, categories []string) (*model.Recipe, error)
	Delete(ctx context.Context, actorID, id string) error
}

type recipeService struct {
	repo  repository.RecipeRepository
	cache *cache.Client
}

// NewRecipeService builds a RecipeService with repository and cache.
func NewRecipeService(repo repository.RecipeRepository, cache *cache.Client) RecipeService {
	return &recipeService{repo: repo, cache: cache}
}

// recipeCacheKey is shared with the user service, which has to invalidate
// cached recipes when it cascades an account deletion.
func recipeCacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("recipe:%s", id.Hex())
}

func (s *recipeService) List(ctx context.Context) ([]model.Recipe, error) {
	return s.repo.List(ctx)
}

func (s *recipeService) Get(ctx context.Context, id string) (*model.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrRecipeNotFound
	}

	if data, _ := s.cache.Get(ctx, recipeCacheKey(oid)); data != nil {
		var cached model.Recipe
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	recipe, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domainerrors.ErrRecipeNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(recipe); err == nil {
		_ = s.cache.Set(ctx, recipeCacheKey(oid), payload, recipeCacheTTL)
	}
	return recipe, nil
}

func (s *recipeService) Create(ctx context.Context, actorID, title string, ingredients, instructions, categories []string) (*model.Recipe, error) {
	if err := validateRecipe(title, ingredients); err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Title:        strings.TrimSpace(title),
		Ingredients:  ingredients,
		Instructions: instructions,
		Categories:   categories,
		Author:       actorID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) Update(ctx context.Context, actorID, id, title string, ingredients, instructions, categories []string) (*model.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrRecipeNotFound
	}

	if err := validateRecipe(title, ingredients); err != nil {
		return nil, err
	}

	recipe, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domainerrors.ErrRecipeNotFound
		}
		return nil, err
	}

	if !auth.CanMutateRecipe(actorID, recipe) {
		return nil, domainerrors.ErrForbidden
	}

	recipe.Title = strings.TrimSpace(title)
	recipe.Ingredients = ingredients
	recipe.Instructions = instructions
	recipe.Categories = categories

	if err := s.repo.Update(ctx, recipe); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domainerrors.ErrRecipeNotFound
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, recipeCacheKey(oid))
	return recipe, nil
}

// Delete removes the recipe. Comments referencing it are left in place; they
// become orphans rather than being cascade-deleted.
func (s *recipeService) Delete(ctx context.Context, actorID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domainerrors.ErrRecipeNotFound
	}

	recipe, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domainerrors.ErrRecipeNotFound
		}
		return err
	}

	if !auth.CanMutateRecipe(actorID, recipe) {
		return domainerrors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return domainerrors.ErrRecipeNotFound
		}
		return err
	}

	_ = s.cache.Delete(ctx, recipeCacheKey(oid))
	return nil
}

func validateRecipe(title string, ingredients []string) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrEmptyTitle
	}
	if len(ingredients) == 0 {
		return domainerrors.ErrEmptyIngredients
	}
	return nil
}
