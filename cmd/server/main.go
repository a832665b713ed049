package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dobby_cafe_v1/internal/config"
	"dobby_cafe_v1/internal/controller"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/model"
	"dobby_cafe_v1/internal/repository"
	"dobby_cafe_v1/internal/router"
	"dobby_cafe_v1/internal/service"
	"dobby_cafe_v1/pkg/database"
	"dobby_cafe_v1/pkg/logger"
)

const version = "1.0.0"

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	// 2. 初始化日志
	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer zlog.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. JWT 配置（进程级，启动时设置一次）
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey: cfg.JWTSecret,
		TokenTTL:  cfg.JWTExpiresIn,
		Issuer:    "dobby-cafe",
	})

	// 4. 初始化数据库
	db := initDatabase(cfg)

	// 5. 初始化依赖
	deps := initDependencies(db, cfg)

	// 6. 初始化路由
	r := router.SetupRouter(zlog, cfg.FrontendURL, deps.Controllers)

	// 7. 启动服务
	startServer(r, cfg.ServerPort, zlog, db)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User          repository.UserRepository
	Branch        repository.BranchRepository
	Category      repository.CategoryRepository
	Product       repository.ProductRepository
	BranchProduct repository.BranchProductRepository
	Menu          repository.MenuRepository
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	Menu    *service.MenuService
	Catalog *service.CatalogService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config) *gorm.DB {
	return database.InitDB(cfg.DB.DSN(),
		// 租户
		&model.Company{}, &model.Branch{}, &model.User{},
		// 目录
		&model.Category{}, &model.MasterProduct{}, &model.BranchProduct{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB, cfg *config.Config) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:          repository.NewUserRepository(db),
		Branch:        repository.NewBranchRepository(db),
		Category:      repository.NewCategoryRepository(db),
		Product:       repository.NewProductRepository(db),
		BranchProduct: repository.NewBranchProductRepository(db),
		Menu:          repository.NewMenuRepository(db),
	}

	// -------- 业务服务 --------
	services := &Services{
		Auth:    service.NewAuthService(repos.User, cfg.BcryptRounds),
		Menu:    service.NewMenuService(repos.Menu, repos.Category, repos.Branch),
		Catalog: service.NewCatalogService(repos.Category, repos.Product, repos.Branch, repos.BranchProduct),
	}

	// -------- Controller 层 --------
	dev := cfg.IsDevelopment()
	controllers := &router.Controllers{
		Health:  controller.NewHealthController(version),
		Auth:    controller.NewAuthController(services.Auth, dev),
		Menu:    controller.NewMenuController(services.Menu, dev),
		Catalog: controller.NewCatalogController(services.Catalog, dev),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 服务启动 ====================

// startServer 启动 HTTP 服务并处理优雅退出
func startServer(r *gin.Engine, port string, zlog *zap.Logger, db *gorm.DB) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		zlog.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}

	// 关闭数据库连接池
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	zlog.Info("server exited")
}
