package auth

import "recipehub/internal/model"

// Authorization policy: pure decision functions over an authenticated actor
// and a target document. There is no role hierarchy and no admin override.

// CanMutateRecipe reports whether the actor may update or delete the recipe.
func CanMutateRecipe(actorID string, recipe *model.Recipe) bool {
	return recipe != nil && actorID == recipe.Author
}

// CanDeleteComment reports whether the actor may delete the comment.
func CanDeleteComment(actorID string, comment *model.Comment) bool {
	return comment != nil && actorID == comment.Author
}

// CanDeleteUser reports whether the actor may delete the target account.
// Account deletion is self-service only.
func CanDeleteUser(actorID, targetID string) bool {
	return actorID != "" && actorID == targetID
}
