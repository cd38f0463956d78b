package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipehub/internal/model"
)

func TestCanMutateRecipe(t *testing.T) {
	recipe := &model.Recipe{Author: "user-a"}

	assert.True(t, CanMutateRecipe("user-a", recipe))
	assert.False(t, CanMutateRecipe("user-b", recipe))
	assert.False(t, CanMutateRecipe("", recipe))
	assert.False(t, CanMutateRecipe("user-a", nil))
}

func TestCanDeleteComment(t *testing.T) {
	comment := &model.Comment{Author: "user-a"}

	assert.True(t, CanDeleteComment("user-a", comment))
	assert.False(t, CanDeleteComment("user-b", comment))
	assert.False(t, CanDeleteComment("user-a", nil))
}

func TestCanDeleteUser(t *testing.T) {
	assert.True(t, CanDeleteUser("user-a", "user-a"))
	assert.False(t, CanDeleteUser("user-a", "user-b"))
	assert.False(t, CanDeleteUser("", ""))
}
