package routes

import (
	"net/http"

	"newsgraph/internal/server/middleware"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

// GetToolsetHandler returns the catalog manifest: every operation with its
// parameter contract. JSON by default, YAML with ?format=yaml for callers
// that expect a tools file.
func GetToolsetHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	manifest := app.Toolbox.Manifest()

	if c.QueryParam("format") == "yaml" {
		out, err := yaml.Marshal(manifest)
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.Blob(http.StatusOK, "application/yaml", out)
	}

	return c.JSON(http.StatusOK, manifest)
}
