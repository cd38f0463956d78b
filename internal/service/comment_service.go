package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipehub/internal/auth"
	domainerrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

// CommentService exposes comment use cases. Comments can only be attached to
// existing recipes and deleted by their author.
type CommentService interface {
	Add(ctx context.Context, actorID, recipeID, content string) (*model.Comment, error)
	List(ctx context.Context, recipeID string) ([]model.Comment, error)
	Delete(ctx context.Context, actorID, recipeID, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	recipeRepo  repository.RecipeRepository
}

// NewCommentService builds a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, recipeRepo repository.RecipeRepository) CommentService {
	return &commentService{commentRepo: commentRepo, recipeRepo: recipeRepo}
}

func (s *commentService) Add(ctx context.Context, actorID, recipeID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.ErrEmptyComment
	}

	oid, err := s.resolveRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		RecipeID:  oid,
		Author:    actorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) List(ctx context.Context, recipeID string) ([]model.Comment, error) {
	oid, err := s.resolveRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.ListByRecipe(ctx, oid)
}

func (s *commentService) Delete(ctx context.Context, actorID, recipeID, commentID string) error {
	recipeOID, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return domainerrors.ErrCommentNotFound
	}
	commentOID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return domainerrors.ErrCommentNotFound
	}

	comment, err := s.commentRepo.FindByID(ctx, commentOID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domainerrors.ErrCommentNotFound
		}
		return err
	}
	// The comment must actually belong to the recipe named in the request.
	if comment.RecipeID != recipeOID {
		return domainerrors.ErrCommentNotFound
	}

	if !auth.CanDeleteComment(actorID, comment) {
		return domainerrors.ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentOID); err != nil {
		if err == mongo.ErrNoDocuments {
			return domainerrors.ErrCommentNotFound
		}
		return err
	}
	return nil
}

// resolveRecipe parses the hex id and checks the recipe exists.
func (s *commentService) resolveRecipe(ctx context.Context, recipeID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrRecipeNotFound
	}
	if _, err := s.recipeRepo.FindByID(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return primitive.NilObjectID, domainerrors.ErrRecipeNotFound
		}
		return primitive.NilObjectID, err
	}
	return oid, nil
}
