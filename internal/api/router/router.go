package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pmo-dashboard/internal/api/handler"
	"pmo-dashboard/internal/api/middleware"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/pkg/config"
	"pmo-dashboard/internal/pkg/database"
	"pmo-dashboard/internal/repository"
	"pmo-dashboard/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	// Cookie会话
	store := cookie.NewStore([]byte(cfg.Auth.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Auth.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Auth.Session.Secure,
	})
	r.Use(sessions.Sessions("pmo_session", store))

	db := database.GetDB()

	// 初始化Repository
	projectRepo := repository.NewProjectRepository(db)
	simpleRepo := repository.NewSimpleProjectRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo)
	projectService := service.NewProjectService(projectRepo, commentRepo)
	simpleService := service.NewSimpleProjectService(simpleRepo)
	optionService := service.NewOptionService(optionRepo, projectRepo)
	userService := service.NewUserService(userRepo)
	commentService := service.NewCommentService(commentRepo, projectRepo)
	settingService := service.NewSettingService(settingRepo)
	activityService := service.NewActivityService(activityRepo)
	reportService := service.NewReportService(projectRepo, simpleRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	simpleHandler := handler.NewSimpleProjectHandler(simpleService)
	optionHandler := handler.NewOptionHandler(optionService, activityService)
	userHandler := handler.NewUserHandler(userService, activityService)
	commentHandler := handler.NewCommentHandler(commentService)
	settingHandler := handler.NewSettingHandler(settingService, activityService)
	activityHandler := handler.NewActivityHandler(activityService)
	reportHandler := handler.NewReportHandler(reportService)
	healthHandler := handler.NewHealthHandler()

	// 健康检查
	r.GET("/health", healthHandler.Check)

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(&cfg.RateLimit))
	{
		api.GET("/health", healthHandler.Check)

		// 认证相关(无需登录)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/logout", authHandler.Logout)
		}

		// 报表为只读聚合, 不做认证
		reports := api.Group("/reports")
		{
			reports.GET("/summary", reportHandler.Summary)
			reports.GET("/monthly-distribution", reportHandler.MonthlyDistribution)
			reports.GET("/status-distribution", reportHandler.StatusDistribution)
			reports.GET("/recent-activity", reportHandler.RecentActivity)
			reports.GET("/account-managers", reportHandler.AccountManagers)
			reports.GET("/priority-distribution", reportHandler.PriorityDistribution)
			reports.GET("/phase-distribution", reportHandler.PhaseDistribution)
			reports.GET("/by-end-month", reportHandler.ByEndMonth)
			reports.GET("/simple-summary", reportHandler.SimpleSummary)
		}

		// 需要登录的路由
		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/auth/me", authHandler.Me)

			// 读操作: 任意已登录角色
			read := authed.Group("")
			read.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleViewer))
			{
				read.GET("/projects", projectHandler.List)
				read.GET("/projects/filters/values", projectHandler.FilterValues)
				read.GET("/projects/export", projectHandler.Export)
				read.GET("/projects/:id", projectHandler.Get)

				read.GET("/simple-projects", simpleHandler.List)
				read.GET("/simple-projects/filters/values", simpleHandler.FilterValues)
				read.GET("/simple-projects/:id", simpleHandler.Get)

				read.GET("/comments/project/:projectId", commentHandler.ListByProject)
				read.GET("/comments/history", commentHandler.History)
				read.GET("/comments/stats", commentHandler.Stats)
			}

			// 写操作: admin与manager
			write := authed.Group("")
			write.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager))
			{
				write.POST("/projects", projectHandler.Create)
				write.PUT("/projects/:id", projectHandler.Update)
				write.DELETE("/projects/:id", projectHandler.Delete)

				write.POST("/simple-projects", simpleHandler.Create)
				write.PUT("/simple-projects/:id", simpleHandler.Update)
				write.DELETE("/simple-projects/:id", simpleHandler.Delete)

				write.POST("/comments/project/:projectId", commentHandler.Create)
				write.PUT("/comments/:id", commentHandler.Update)
				write.DELETE("/comments/:id", commentHandler.Delete)
			}

			// 管理接口: 仅admin
			admin := authed.Group("/admin")
			admin.Use(middleware.RequireRole(model.RoleAdmin))
			{
				admin.GET("/dropdown-options", optionHandler.List)
				admin.POST("/dropdown-options", optionHandler.Create)
				admin.PUT("/dropdown-options/:id", optionHandler.Update)
				admin.DELETE("/dropdown-options/:id", optionHandler.Delete)

				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PUT("/users/:id", userHandler.Update)
				admin.PUT("/users/:id/toggle-status", userHandler.ToggleStatus)

				admin.GET("/activity-log", activityHandler.List)

				admin.GET("/settings", settingHandler.Get)
				admin.PUT("/settings", settingHandler.Update)
			}
		}
	}

	return r
}
