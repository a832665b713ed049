package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dobby_cafe_v1/internal/controller"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/model"
)

// Controllers 路由依赖的全部控制器
type Controllers struct {
	Health  *controller.HealthController
	Auth    *controller.AuthController
	Menu    *controller.MenuController
	Catalog *controller.CatalogController
}

// SetupRouter 注册所有路由
func SetupRouter(logger *zap.Logger, frontendURL string, ctls *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// 1. 入口与健康检查
	r.GET("/", ctls.Health.Root)

	// 2. API 路由组
	api := r.Group("/api")
	{
		api.GET("/health", ctls.Health.Health)

		// auth 鉴权组
		auth := api.Group("/auth")
		{
			// POST /api/auth/login
			auth.POST("/login", ctls.Auth.Login)
			// POST /api/auth/logout
			auth.POST("/logout", ctls.Auth.Logout)
			// GET /api/auth/me
			auth.GET("/me", middleware.JWTAuth(), ctls.Auth.Me)
		}

		// menu 菜单组（全部需登录）
		menu := api.Group("/menu", middleware.JWTAuth())
		{
			// GET /api/menu?branch_id=N
			menu.GET("", middleware.RequireBranchScope(), ctls.Menu.GetMenu)
			// GET /api/menu/categories
			menu.GET("/categories", ctls.Menu.GetCategories)
		}

		// catalog 目录维护组（全部需登录）
		catalog := api.Group("/catalog", middleware.JWTAuth())
		{
			// 分类与主商品仅 company_admin
			adminOnly := middleware.RequireRole(model.RoleCompanyAdmin)

			categories := catalog.Group("/categories", adminOnly)
			{
				categories.POST("", ctls.Catalog.CreateCategory)
				categories.PUT("/:id", ctls.Catalog.UpdateCategory)
				categories.DELETE("/:id", ctls.Catalog.DeleteCategory)
			}

			products := catalog.Group("/products", adminOnly)
			{
				products.POST("", ctls.Catalog.CreateProduct)
				products.PUT("/:id", ctls.Catalog.UpdateProduct)
				products.DELETE("/:id", ctls.Catalog.DeactivateProduct)
				products.DELETE("/:id/purge", ctls.Catalog.PurgeProduct)
			}

			// 门店与覆盖：店长可操作自己的门店，归属在业务层再校验
			branches := catalog.Group("/branches")
			{
				branches.GET("", ctls.Catalog.ListBranches)
				branches.POST("", adminOnly, ctls.Catalog.CreateBranch)

				override := middleware.RequireRole(model.RoleCompanyAdmin, model.RoleBranchManager)
				branches.PUT("/:branch_id/products/:product_id", override, ctls.Catalog.SetOverride)
				branches.DELETE("/:branch_id/products/:product_id", override, ctls.Catalog.RemoveOverride)
			}
		}
	}

	// 3. 未匹配路由
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	return r
}
