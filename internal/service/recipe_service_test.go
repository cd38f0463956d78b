package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	domainerrors "recipehub/internal/errors"
	"recipehub/internal/model"
)

// MockRecipeRepository is a mock implementation of RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) ListByAuthor(ctx context.Context, author string) ([]model.Recipe, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) DeleteByAuthor(ctx context.Context, author string) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func TestRecipeService_Create(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		ingredients   []string
		setupMock     func(*MockRecipeRepository)
		expectedError error
	}{
		{
			name:        "successful create",
			title:       "Pasta",
			ingredients: []string{"pasta", "water"},
			setupMock: func(m *MockRecipeRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Recipe")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "empty title",
			title:         "   ",
			ingredients:   []string{"pasta"},
			setupMock:     func(m *MockRecipeRepository) {},
			expectedError: domainerrors.ErrEmptyTitle,
		},
		{
			name:          "no ingredients",
			title:         "Pasta",
			ingredients:   nil,
			setupMock:     func(m *MockRecipeRepository) {},
			expectedError: domainerrors.ErrEmptyIngredients,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecipeRepository)
			tt.setupMock(mockRepo)

			service := NewRecipeService(mockRepo, nil)
			recipe, err := service.Create(context.Background(), "user-a", tt.title, tt.ingredients, []string{"cook it"}, nil)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, recipe)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, recipe)
				assert.Equal(t, "user-a", recipe.Author)
				assert.Equal(t, "Pasta", recipe.Title)
				assert.False(t, recipe.CreatedAt.IsZero())
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Get(t *testing.T) {
	recipeID := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)
		mockRepo.On("FindByID", mock.Anything, recipeID).Return(&model.Recipe{ID: recipeID, Title: "Pasta", Author: "user-a"}, nil)

		service := NewRecipeService(mockRepo, nil)
		recipe, err := service.Get(context.Background(), recipeID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, "Pasta", recipe.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing document", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)
		mockRepo.On("FindByID", mock.Anything, recipeID).Return(nil, mongo.ErrNoDocuments)

		service := NewRecipeService(mockRepo, nil)
		recipe, err := service.Get(context.Background(), recipeID.Hex())

		assert.Equal(t, domainerrors.ErrRecipeNotFound, err)
		assert.Nil(t, recipe)
	})

	t.Run("invalid hex id", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)

		service := NewRecipeService(mockRepo, nil)
		recipe, err := service.Get(context.Background(), "not-an-object-id")

		assert.Equal(t, domainerrors.ErrRecipeNotFound, err)
		assert.Nil(t, recipe)
		mockRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestRecipeService_Update(t *testing.T) {
	recipeID := primitive.NewObjectID()
	owned := func() *model.Recipe {
		return &model.Recipe{ID: recipeID, Title: "Pasta", Ingredients: []string{"pasta"}, Author: "user-a"}
	}

	tests := []struct {
		name          string
		actorID       string
		setupMock     func(*MockRecipeRepository)
		expectedError error
	}{
		{
			name:    "owner updates",
			actorID: "user-a",
			setupMock: func(m *MockRecipeRepository) {
				m.On("FindByID", mock.Anything, recipeID).Return(owned(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Recipe")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "non-owner is rejected",
			actorID: "user-b",
			setupMock: func(m *MockRecipeRepository) {
				m.On("FindByID", mock.Anything, recipeID).Return(owned(), nil)
			},
			expectedError: domainerrors.ErrForbidden,
		},
		{
			name:    "missing recipe",
			actorID: "user-a",
			setupMock: func(m *MockRecipeRepository) {
				m.On("FindByID", mock.Anything, recipeID).Return(nil, mongo.ErrNoDocuments)
			},
			expectedError: domainerrors.ErrRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecipeRepository)
			tt.setupMock(mockRepo)

			service := NewRecipeService(mockRepo, nil)
			recipe, err := service.Update(context.Background(), tt.actorID, recipeID.Hex(), "Better Pasta", []string{"pasta", "salt"}, []string{"boil", "serve"}, []string{"dinner"})

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, recipe)
				mockRepo.AssertNotCalled(t, "Update")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Better Pasta", recipe.Title)
				// Owner and id survive the update untouched.
				assert.Equal(t, "user-a", recipe.Author)
				assert.Equal(t, recipeID, recipe.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Delete(t *testing.T) {
	recipeID := primitive.NewObjectID()

	t.Run("owner deletes", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)
		mockRepo.On("FindByID", mock.Anything, recipeID).Return(&model.Recipe{ID: recipeID, Author: "user-a"}, nil)
		mockRepo.On("Delete", mock.Anything, recipeID).Return(nil)

		service := NewRecipeService(mockRepo, nil)
		err := service.Delete(context.Background(), "user-a", recipeID.Hex())

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)
		mockRepo.On("FindByID", mock.Anything, recipeID).Return(&model.Recipe{ID: recipeID, Author: "user-a"}, nil)

		service := NewRecipeService(mockRepo, nil)
		err := service.Delete(context.Background(), "user-b", recipeID.Hex())

		assert.Equal(t, domainerrors.ErrForbidden, err)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("missing recipe", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)
		mockRepo.On("FindByID", mock.Anything, recipeID).Return(nil, mongo.ErrNoDocuments)

		service := NewRecipeService(mockRepo, nil)
		err := service.Delete(context.Background(), "user-a", recipeID.Hex())

		assert.Equal(t, domainerrors.ErrRecipeNotFound, err)
	})
}
