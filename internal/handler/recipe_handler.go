package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipehub/internal/errors"
	"recipehub/internal/service"
)

// RecipeHandler bundles recipe HTTP handlers.
type RecipeHandler struct {
	svc service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// RecipeRequest represents a recipe create or update payload.
type RecipeRequest struct {
	Title        string   `json:"title" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions []string `json:"instructions"`
	Categories   []string `json:"categories"`
}

// List godoc
// @Summary List all recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} model.Recipe
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/ [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipes)
}

// Get godoc
// @Summary Get a recipe by id
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	recipe, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipe)
}

// Create godoc
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecipeRequest true "Recipe payload"
// @Success 201 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/ [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe, err := h.svc.Create(c.Request().Context(), actor, req.Title, req.Ingredients, req.Instructions, req.Categories)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, recipe)
}

// Update godoc
// @Summary Update a recipe (owner only)
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param request body RecipeRequest true "Recipe payload"
// @Success 200 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe, err := h.svc.Update(c.Request().Context(), actor, c.Param("id"), req.Title, req.Ingredients, req.Instructions, req.Categories)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipe)
}

// Delete godoc
// @Summary Delete a recipe (owner only)
// @Tags recipes
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 204 "No Content"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
