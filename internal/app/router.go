package app

import (
	"ddplanner_backend/docs"
	"ddplanner_backend/internal/config"
	"ddplanner_backend/internal/controller"
	"ddplanner_backend/internal/middleware"
	"ddplanner_backend/internal/planner"
	"ddplanner_backend/internal/service"
	"ddplanner_backend/internal/store"
	"ddplanner_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.Use(middleware.RequestID())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/exams", c.exam.List)

		public.POST("/webhook", c.webhook.Handle)
		public.GET("/webhook", c.webhook.Reject)
		public.POST("/webhook/test", c.webhook.Test)
		public.GET("/webhook/logs", c.webhook.Logs)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.PUT("/profile/password", c.auth.ChangePassword)

		authGroup.POST("/sync", c.sync.Trigger)
		authGroup.GET("/sync/status", c.sync.Status)

		authGroup.GET("/dashboard/stats", c.dashboard.Stats)
		authGroup.GET("/dashboard/activity", c.dashboard.Activity)

		plans := authGroup.Group("/plans")
		plans.Use(middleware.SubscriptionMiddleware(s.auth))
		{
			plans.POST("", c.plan.Create)
			plans.GET("", c.plan.List)
			plans.GET("/:id", c.plan.Get)
			plans.PUT("/:id/tasks", c.plan.UpdateTasks)
			plans.DELETE("/:id", c.plan.Delete)
		}
	}
}

// registerLocalOnlyRoutes serves the planning surface when the remote
// database is unreachable. Account and webhook routes need it and are
// left out; the subscription gate is skipped for the same reason.
func (a *App) registerLocalOnlyRoutes(router *gin.Engine, local *store.LocalStore, rdb *redis.Client, cfg *config.Config) {
	planSvc := service.NewPlanService(planner.New(), a.Reconciler, local, rdb)
	planCtl := controller.NewPlanController(planSvc)
	dashCtl := controller.NewDashboardController(planSvc)
	syncCtl := controller.NewSyncController(a.Reconciler)
	examCtl := controller.NewExamController()
	healthCtl := controller.NewHealthController(nil, a.LocalDB)

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.Use(middleware.RequestID())

	public := router.Group("/api")
	{
		public.GET("/health", healthCtl.HealthCheck)
		public.GET("/exams", examCtl.List)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/sync", syncCtl.Trigger)
		authGroup.GET("/sync/status", syncCtl.Status)

		authGroup.GET("/dashboard/stats", dashCtl.Stats)
		authGroup.GET("/dashboard/activity", dashCtl.Activity)

		plans := authGroup.Group("/plans")
		{
			plans.POST("", planCtl.Create)
			plans.GET("", planCtl.List)
			plans.GET("/:id", planCtl.Get)
			plans.PUT("/:id/tasks", planCtl.UpdateTasks)
			plans.DELETE("/:id", planCtl.Delete)
		}
	}
}
