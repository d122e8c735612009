package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	dbadapter "tasktrack/internal/adapter/db"
	httpadapter "tasktrack/internal/adapter/http"
	"tasktrack/internal/adapter/http/handlers"
	httpmiddleware "tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/app/service"
	"tasktrack/internal/config"
	"tasktrack/internal/core/access"
	"tasktrack/internal/core/domain"
	"tasktrack/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	limits := domain.DefaultTaskLimits()
	taskRepository := dbadapter.NewTaskRepository(db, limits)
	departmentRepository := dbadapter.NewDepartmentRepository(db)
	projectRepository := dbadapter.NewProjectRepository(db)

	engine := access.NewEngine(departmentRepository)
	taskService := service.NewTaskService(taskRepository, projectRepository, engine, limits)
	dashboardService := service.NewDashboardService(taskRepository, departmentRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, dashboardHandler,
		rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
