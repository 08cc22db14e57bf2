package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/teachsmart-backend/internal/db"
	"github.com/yungbote/teachsmart-backend/internal/handlers"
	"github.com/yungbote/teachsmart-backend/internal/logger"
	"github.com/yungbote/teachsmart-backend/internal/model"
	"github.com/yungbote/teachsmart-backend/internal/model/mock"
	"github.com/yungbote/teachsmart-backend/internal/recommend"
	"github.com/yungbote/teachsmart-backend/internal/repos"
	"github.com/yungbote/teachsmart-backend/internal/server"
	"github.com/yungbote/teachsmart-backend/internal/services"
	"github.com/yungbote/teachsmart-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Model. A load failure degrades to the non-model paths instead of
	// refusing to start; /healthcheck reports model_loaded=false.
	var m *model.Model
	if utils.GetEnvAsBool("USE_MOCK_MODEL", false, log) {
		log.Info("Using mock model")
		m = mock.New()
	} else {
		modelPath := utils.GetEnv("MODEL_PATH", "model/teachsmart_model.json", log)
		m, err = model.Load(modelPath)
		if err != nil {
			log.Warn("Model load failed, running without trained model", "path", modelPath, "error", err)
			m = nil
		}
	}
	predictor := recommend.NewPredictor(m)

	// Rule table
	rules, err := recommend.LoadRuleTable()
	if err != nil {
		log.Error("Failed to load activity rule table", "error", err)
		os.Exit(1)
	}

	// Postgres audit log, optional
	var resourceLogRepo repos.ResourceLogRepo
	if utils.GetEnvAsBool("RESOURCE_LOG_ENABLED", false, log) {
		postgresService, err := db.NewPostgresService(log)
		if err != nil {
			log.Warn("Postgres init failed, resource logging disabled", "error", err)
		} else if err := postgresService.AutoMigrateAll(); err != nil {
			log.Warn("Postgres auto migration failed, resource logging disabled", "error", err)
		} else {
			resourceLogRepo = repos.NewResourceLogRepo(postgresService.DB(), log)
		}
	}

	// Services
	resourceService := services.NewResourceService(log, predictor, rules, resourceLogRepo, nil, nil)

	// Handlers
	healthHandler := handlers.NewHealthHandler(resourceService)
	resourceHandler := handlers.NewResourceHandler(log, resourceService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		HealthHandler:   healthHandler,
		ResourceHandler: resourceHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
