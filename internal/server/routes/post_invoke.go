package routes

import (
	"errors"
	"net/http"

	"newsgraph/internal/server/middleware"
	"newsgraph/internal/timing"
	"newsgraph/pkg/graph"
	"newsgraph/pkg/logger"
	"newsgraph/pkg/toolbox"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type invokeParams struct {
	Name      string            `param:"name" validate:"required"`
	Arguments map[string]string `json:"arguments"`
}

type invokeResponse struct {
	InvocationID string           `json:"invocation_id"`
	Records      []toolbox.Record `json:"records"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Operation string `json:"operation,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

// InvokeToolHandler runs one catalog operation. The body carries the flat
// string-argument map; the response is the record sequence or a classified
// failure mapped onto an HTTP status.
func InvokeToolHandler(c echo.Context) error {
	params := new(invokeParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "Invalid request body",
			Kind:  graph.KindInvalidArgument.String(),
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "Invalid request params",
			Kind:  graph.KindInvalidArgument.String(),
		})
	}

	invocationID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "Failed to allocate invocation ID",
			Kind:  graph.KindStoreUnavailable.String(),
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	logger.Debug("[Invoke] dispatch", "invocation_id", invocationID, "tool", params.Name, "args", params.Arguments)

	obs := timing.Start("invoke")
	records, err := app.Toolbox.Dispatch(ctx, params.Name, params.Arguments)
	obs.Done("invocation_id", invocationID, "tool", params.Name)
	if err != nil {
		return invokeError(c, invocationID, err)
	}

	return c.JSON(http.StatusOK, invokeResponse{
		InvocationID: invocationID,
		Records:      records,
	})
}

func invokeError(c echo.Context, invocationID string, err error) error {
	var qe *graph.QueryError
	if !errors.As(err, &qe) {
		qe = graph.NewStoreUnavailable("", err)
	}

	logger.Error("[Invoke] failed", "invocation_id", invocationID, "operation", qe.Op, "kind", qe.Kind.String(), "err", err)

	status := http.StatusInternalServerError
	switch qe.Kind {
	case graph.KindInvalidArgument:
		status = http.StatusBadRequest
	case graph.KindNotFound, graph.KindUnknownOperation:
		status = http.StatusNotFound
	case graph.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, errorResponse{
		Error:     qe.Error(),
		Kind:      qe.Kind.String(),
		Operation: qe.Op,
		Parameter: qe.Param,
	})
}
