package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipehub/internal/auth"
	"recipehub/internal/config"
	"recipehub/internal/handler"
)

// Register wires routes and middleware. Reads stay public; mutating routes go
// through the JWT middleware, which leaves the parsed claims in the context
// for the handlers to extract the actor from.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	recipeHandler *handler.RecipeHandler,
	commentHandler *handler.CommentHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.JWTSecret),
		SigningMethod: cfg.JWTAlgorithm,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	})

	api := e.Group("/api/v1")

	recipes := api.Group("/recipes")
	recipes.GET("/", recipeHandler.List)
	recipes.POST("/", recipeHandler.Create, requireAuth)
	recipes.GET("/:id", recipeHandler.Get)
	recipes.PUT("/:id", recipeHandler.Update, requireAuth)
	recipes.DELETE("/:id", recipeHandler.Delete, requireAuth)

	recipes.POST("/comments/:id", commentHandler.Add, requireAuth)
	recipes.GET("/comments/:id", commentHandler.List)
	recipes.DELETE("/comments/:id/:commentId", commentHandler.Delete, requireAuth)

	users := api.Group("/users")
	users.POST("/", authHandler.Register)
	users.POST("/login/", authHandler.Login)
	users.GET("/me", userHandler.Me, requireAuth)
	users.DELETE("/delete/:id", userHandler.Delete, requireAuth)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
