package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hunyar/focusflow-api/api/swagger"
	"github.com/hunyar/focusflow-api/internal/ai"
	"github.com/hunyar/focusflow-api/internal/handler"
	"github.com/hunyar/focusflow-api/internal/middleware"
	"github.com/hunyar/focusflow-api/internal/repository"
	"github.com/hunyar/focusflow-api/internal/service"
	"github.com/hunyar/focusflow-api/internal/store"
	"github.com/hunyar/focusflow-api/pkg/cache"
	"github.com/hunyar/focusflow-api/pkg/config"
	"github.com/hunyar/focusflow-api/pkg/database"
	"github.com/hunyar/focusflow-api/pkg/logger"
	corsmiddleware "github.com/hunyar/focusflow-api/pkg/middleware/cors"
	reqidmiddleware "github.com/hunyar/focusflow-api/pkg/middleware/requestid"
)

// @title FocusFlow API
// @version 1.0.0
// @description Personal study dashboard: todos, marks, subjects, timetable, notes and AI insights
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var backing store.Store
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect postgres", "error", err)
		}
		backing, err = store.NewPostgresStore(db)
		if err != nil {
			logr.Sugar().Fatalw("failed to init postgres store", "error", err)
		}
	default:
		backing, err = store.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init file store", "error", err)
		}
	}
	backing = store.Instrument(backing, metricsSvc.ObserveStoreWrite)

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			// Cache is an optimisation; run without it rather than refuse to start.
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.SummaryTTL, logr, true)
		}
	}

	validate := validator.New()

	todoSvc := service.NewTodoService(repository.NewTodoRepository(backing, logr), validate, logr)
	markSvc := service.NewMarkService(repository.NewMarkRepository(backing, logr), cacheSvc, cfg.Cache.SummaryTTL, validate, logr)
	subjectRepo := repository.NewSubjectRepository(backing, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, validate, logr)
	timetableSvc := service.NewTimetableService(repository.NewTimetableRepository(backing, logr), subjectRepo, validate, logr)
	noteSvc := service.NewNoteService(repository.NewNoteRepository(backing, logr), validate, logr)

	var insightSvc *service.InsightService
	if cfg.AI.Enabled {
		insightSvc = service.NewInsightService(ai.NewClient(cfg.AI, logr), markSvc, cfg.AI.StudentName, validate, logr)
	} else {
		insightSvc = service.NewInsightService(nil, markSvc, cfg.AI.StudentName, validate, logr)
	}

	reportSvc := service.NewReportService(markSvc, logr)
	dashboardSvc := service.NewDashboardService(todoSvc, subjectSvc, noteSvc, timetableSvc, markSvc, logr)

	var unlockSvc *service.UnlockService
	if cfg.Unlock.Enabled {
		unlockSvc, err = service.NewUnlockService(cfg.Unlock, logr)
		if err != nil {
			logr.Sugar().Fatalw("failed to init unlock gate", "error", err)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.Register(api, handler.Services{
		Todos:         todoSvc,
		Marks:         markSvc,
		Subjects:      subjectSvc,
		Timetable:     timetableSvc,
		Notes:         noteSvc,
		Insights:      insightSvc,
		Reports:       reportSvc,
		Dashboard:     dashboardSvc,
		Unlock:        unlockSvc,
		Metrics:       metricsSvc,
		UnlockEnabled: cfg.Unlock.Enabled,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
