package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipehub/internal/auth"
	"recipehub/internal/cache"
	domainerrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes account lookups and deletion.
type UserService interface {
	Get(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, actorID, targetID string) error
}

type userService struct {
	userRepo    repository.UserRepository
	recipeRepo  repository.RecipeRepository
	commentRepo repository.CommentRepository
	cache       *cache.Client
}

// NewUserService builds a UserService. The recipe and comment repositories are
// needed for the cleanup that follows an account deletion.
func NewUserService(userRepo repository.UserRepository, recipeRepo repository.RecipeRepository, commentRepo repository.CommentRepository, cache *cache.Client) UserService {
	return &userService{
		userRepo:    userRepo,
		recipeRepo:  recipeRepo,
		commentRepo: commentRepo,
		cache:       cache,
	}
}

func (s *userService) cacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("user:%s", id.Hex())
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrUserNotFound
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(oid)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(oid), payload, userCacheTTL)
	}
	return user, nil
}

// Delete removes the user and then their recipes and comments. The three
// deletes are independent document-store calls, not a transaction; a failure
// partway through leaves the account gone and some content behind.
func (s *userService) Delete(ctx context.Context, actorID, targetID string) error {
	oid, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return domainerrors.ErrUserNotFound
	}

	if !auth.CanDeleteUser(actorID, targetID) {
		return domainerrors.ErrForbidden
	}

	if err := s.userRepo.Delete(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return domainerrors.ErrUserNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(oid))

	// Drop cached copies of the user's recipes before the documents go away,
	// so reads cannot keep serving them for the rest of the cache TTL.
	recipes, err := s.recipeRepo.ListByAuthor(ctx, targetID)
	if err != nil {
		return fmt.Errorf("list recipes of user: %w", err)
	}
	for _, recipe := range recipes {
		_ = s.cache.Delete(ctx, recipeCacheKey(recipe.ID))
	}

	if err := s.recipeRepo.DeleteByAuthor(ctx, targetID); err != nil {
		return fmt.Errorf("delete recipes of user: %w", err)
	}
	if err := s.commentRepo.DeleteByAuthor(ctx, targetID); err != nil {
		return fmt.Errorf("delete comments of user: %w", err)
	}
	return nil
}
