package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipehub/internal/errors"
	"recipehub/internal/service"
)

// CommentHandler bundles comment HTTP handlers.
type CommentHandler struct {
	svc service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// CommentRequest represents a comment creation payload.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Add godoc
// @Summary Add a comment to a recipe
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/comments/{id} [post]
func (h *CommentHandler) Add(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.svc.Add(c.Request().Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, comment)
}

// List godoc
// @Summary List comments of a recipe
// @Tags comments
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {array} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/comments/{id} [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.svc.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete godoc
// @Summary Delete a comment (author only)
// @Tags comments
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param commentId path string true "Comment ID"
// @Success 204 "No Content"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/comments/{id}/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), actor, c.Param("id"), c.Param("commentId")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
