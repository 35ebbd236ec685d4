package middleware

import (
	"github.com/labstack/echo/v4"

	neo4jstore "newsgraph/pkg/graph/neo4j"
	"newsgraph/pkg/toolbox"
)

// App carries the process-wide handles routes need: the operation catalog
// and the store handle for health checks.
type App struct {
	Toolbox *toolbox.Toolbox
	Store   *neo4jstore.Store
}

// AppContext wraps the echo context with the application handles.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware injects the application handles into every request.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
