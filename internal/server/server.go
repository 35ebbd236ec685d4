package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "newsgraph/internal/server/middleware"
	"newsgraph/internal/util"
	"newsgraph/pkg/graph"
	neo4jstore "newsgraph/pkg/graph/neo4j"
	"newsgraph/pkg/logger"
	"newsgraph/pkg/toolbox"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// Init connects to the graph store, builds the operation catalog and serves
// it until SIGINT/SIGTERM.
func Init() {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := neo4jstore.NewStore(ctx, neo4jstore.Config{
		URI:            util.GetEnv("NEO4J_URI"),
		Username:       util.GetEnv("NEO4J_USERNAME"),
		Password:       util.GetEnv("NEO4J_PASSWORD"),
		Database:       util.GetEnvString("NEO4J_DATABASE", "neo4j"),
		QueryTimeout:   time.Duration(util.GetEnvInt("QUERY_TIMEOUT_SECONDS", 30)) * time.Second,
		ConnectRetries: util.GetEnvInt("NEO4J_CONNECT_RETRIES", 3),
	})
	if err != nil {
		logger.Fatal("Failed to connect to graph store", "err", err)
	}
	defer store.Close(context.Background())

	service := graph.NewService(store)
	tb := toolbox.New(service)

	e.Use(mid.AppContextMiddleware(&mid.App{
		Toolbox: tb,
		Store:   store,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
