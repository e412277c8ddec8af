package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ddplanner_backend/internal/config"
	"ddplanner_backend/internal/controller"
	"ddplanner_backend/internal/planner"
	"ddplanner_backend/internal/repository"
	"ddplanner_backend/internal/service"
	"ddplanner_backend/internal/store"
	syncpkg "ddplanner_backend/internal/sync"
	"ddplanner_backend/pkg/database"
	"ddplanner_backend/pkg/logger"
	"ddplanner_backend/pkg/monitoring"
	"ddplanner_backend/pkg/security"
	"ddplanner_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	LocalDB         *sqlx.DB
	Redis           *redis.Client
	Reconciler      *syncpkg.Reconciler
	Scheduler       *syncpkg.SyncScheduler
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	sub        *repository.SubscriptionRepository
	webhookLog *repository.WebhookLogRepository
	plan       *repository.PlanRepository
}

type services struct {
	auth    *service.AuthService
	email   *service.EmailService
	webhook *service.WebhookService
	plan    *service.PlanService
}

type controllers struct {
	auth      *controller.AuthController
	plan      *controller.PlanController
	dashboard *controller.DashboardController
	webhook   *controller.WebhookController
	sync      *controller.SyncController
	exam      *controller.ExamController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		sub:        repository.NewSubscriptionRepository(db),
		webhookLog: repository.NewWebhookLogRepository(db),
		plan:       repository.NewPlanRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, local *store.LocalStore, rdb *redis.Client) *services {
	s := &services{}

	s.email = service.NewEmailService(cfg.Email)
	s.auth = service.NewAuthService(repos.user, repos.sub, cfg)
	s.webhook = service.NewWebhookService(repos.user, repos.sub, repos.webhookLog, s.email, cfg)
	s.plan = service.NewPlanService(planner.New(), a.Reconciler, local, rdb)

	return s
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	isRelease := cfg.Server.Mode == "release"
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		plan:      controller.NewPlanController(s.plan),
		dashboard: controller.NewDashboardController(s.plan),
		webhook:   controller.NewWebhookController(s.webhook, isRelease),
		sync:      controller.NewSyncController(a.Reconciler),
		exam:      controller.NewExamController(),
		health:    controller.NewHealthController(a.DB, a.LocalDB),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	localDB, err := database.InitLocalDB(cfg.LocalDB.Path)
	if err != nil {
		logger.Log.Fatal("Failed to initialize local database", zap.Error(err))
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		// The remote store mirrors the local one; the app keeps
		// serving from the local database when it is unreachable.
		logger.Log.Warn("Remote database unavailable, running local-only", zap.Error(err))
		db = nil
	}

	rdb, err := database.InitRedis(cfg)
	if err != nil {
		logger.Log.Warn("Redis unavailable, stats caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		LocalDB: localDB,
		Redis:   rdb,
	}

	local := store.NewLocalStore(localDB)

	var remote syncpkg.RemoteStore
	var repos *repositories
	if db != nil {
		repos = app.initRepositories(db)
		remote = repos.plan
	}
	app.Reconciler = syncpkg.NewReconciler(local, remote)
	app.Scheduler = syncpkg.NewSyncScheduler(app.Reconciler, time.Duration(cfg.Sync.IntervalMinutes)*time.Minute)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ddplanner", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	if repos != nil {
		services := app.initServices(repos, cfg, local, rdb)
		controllers := app.initControllers(services, cfg)
		app.registerRoutes(router, controllers, services, cfg)
	} else {
		app.registerLocalOnlyRoutes(router, local, rdb, cfg)
	}

	app.Scheduler.Start()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	a.Scheduler.Stop()
	a.Reconciler.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
