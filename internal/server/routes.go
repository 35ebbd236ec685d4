package server

import (
	"context"
	"net/http"
	"time"

	"newsgraph/internal/server/middleware"
	"newsgraph/internal/server/routes"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the toolset endpoints.
func RegisterRoutes(e *echo.Echo) {
	// Health check route; reports store reachability.
	e.GET("/health", func(c echo.Context) error {
		app := c.(*middleware.AppContext).App
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := app.Store.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "store unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	apiRoutes := e.Group("/api")

	apiRoutes.GET("/toolset", routes.GetToolsetHandler)
	apiRoutes.POST("/tools/:name/invoke", routes.InvokeToolHandler)
}
