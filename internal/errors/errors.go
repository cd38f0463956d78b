package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRecipeNotFound is returned when a recipe is not found.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrForbidden is returned when the actor is not allowed to mutate the resource.
	ErrForbidden = errors.New("operation not permitted")
	// ErrEmptyTitle is returned when a recipe has no title.
	ErrEmptyTitle = errors.New("recipe title must not be empty")
	// ErrEmptyIngredients is returned when a recipe has no ingredients.
	ErrEmptyIngredients = errors.New("recipe needs at least one ingredient")
	// ErrEmptyComment is returned when a comment has no content.
	ErrEmptyComment = errors.New("comment content must not be empty")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrRecipeNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_NOT_FOUND")
	case ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrDuplicateEmail:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrEmptyTitle:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_TITLE")
	case ErrEmptyIngredients:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_INGREDIENTS")
	case ErrEmptyComment:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_COMMENT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
