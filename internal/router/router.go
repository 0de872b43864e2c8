package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"showroom/internal/config"
	"showroom/internal/handler"
)

// apiPrefixes are never served from the static frontend, so their 404s stay
// JSON instead of falling back to index.html.
var apiPrefixes = []string{
	"/cars",
	"/contacts",
	"/showrooms",
	"/admin",
	"/buyer",
	"/healthz",
	"/swagger",
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	carHandler *handler.CarHandler,
	contactHandler *handler.ContactHandler,
	authHandler *handler.AuthHandler,
	showroomHandler *handler.ShowroomHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Car routes
	e.GET("/cars", carHandler.ListCars)
	e.POST("/cars", carHandler.CreateCar)
	e.GET("/cars/:id", carHandler.GetCar)
	e.PUT("/cars/:id", carHandler.UpdateCar)
	e.DELETE("/cars/:id", carHandler.DeleteCar)

	// Contact routes
	e.GET("/contacts", contactHandler.ListContacts)
	e.POST("/contacts", contactHandler.CreateContact)
	e.GET("/contacts/:id", contactHandler.GetContact)
	e.PUT("/contacts/:id", contactHandler.UpdateContact)
	e.DELETE("/contacts/:id", contactHandler.DeleteContact)

	// Auth routes (sessionless: every call stands alone)
	e.POST("/admin/signup", authHandler.AdminSignup)
	e.POST("/admin/login", authHandler.AdminLogin)
	e.POST("/buyer/signup", authHandler.BuyerSignup)
	e.POST("/buyer/login", authHandler.BuyerLogin)

	// Showroom routes (read-only; rows come from the seed script)
	e.GET("/showrooms", showroomHandler.ListShowrooms)
	e.GET("/showrooms/:id", showroomHandler.GetShowroom)

	// Bundled single-page frontend for everything else
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper: skipAPIPaths,
		Root:    cfg.StaticRoot,
		HTML5:   true,
	}))
}

func skipAPIPaths(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, prefix := range apiPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
