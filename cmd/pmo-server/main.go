package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pmo-dashboard/internal/api/router"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/pkg/config"
	"pmo-dashboard/internal/pkg/database"
	"pmo-dashboard/internal/pkg/jwt"
	"pmo-dashboard/internal/repository"
	"pmo-dashboard/internal/scheduler"
	"pmo-dashboard/internal/service"

	_ "pmo-dashboard/docs" // Swagger docs

	"pmo-dashboard/internal/pkg/logger"
)

// @title PMO Dashboard API
// @version 1.0
// @description PMO 项目管理看板后端 API 文档
// @description 提供项目管理、下拉选项管理、备注管理、报表统计等功能

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:3000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "配置文件路径 (例如: -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "显示版本信息")
)

const (
	appVersion = "1.0.0"
	appName    = "pmo-dashboard"
)

func main() {
	// 解析命令行参数
	flag.Parse()

	// 显示版本信息
	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// init config logger
	var cfg *config.Config
	{
		// 优先级: 命令行参数 > 环境变量 > 默认路径
		configPath := getConfigPath()

		// 加载配置
		c, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = c

		// 初始化日志
		if err := logger.Init(&cfg.Log); err != nil {
			fmt.Printf("初始化日志失败: %v\n", err)
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("Load config file: %s", configPath))

		defer func() {
			_ = logger.Close()
		}()
	}

	logger.Info(fmt.Sprintf("服务 %s 启动中...", appName), zap.String("version", appVersion))

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer func() {
		_ = database.Close()
	}()

	logger.Info(fmt.Sprintf("数据库连接成功 %s:%v", cfg.Database.Host, cfg.Database.Port), zap.String("database", cfg.Database.Database))

	// 同步表结构
	if err := database.GetDB().AutoMigrate(
		&model.Project{},
		&model.SimpleProject{},
		&model.DropdownOption{},
		&model.User{},
		&model.Comment{},
		&model.ActivityLog{},
		&model.SystemSetting{},
	); err != nil {
		logger.Fatal("同步表结构失败", zap.Error(err))
	}

	// 初始化JWT
	jwt.Init(&cfg.Auth.JWT)

	// 初始化并启动定时任务调度器
	activityService := service.NewActivityService(repository.NewActivityLogRepository(database.GetDB()))
	taskScheduler := scheduler.NewScheduler(activityService, &cfg.Retention)
	if err := taskScheduler.Start(); err != nil {
		logger.Warn("定时任务调度器启动失败", zap.Error(err))
	}

	// 设置路由
	r := router.Setup(cfg)

	// 创建HTTP服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// 启动服务器
	go func() {
		logger.Info(fmt.Sprintf("%s 服务启动成功", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务正在关闭...")

	// 关闭定时任务调度器
	taskScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
}

// getConfigPath 获取配置文件路径
// 优先级: 命令行参数 > 环境变量 > 默认路径
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}

	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}

	return "configs/config.yaml"
}
