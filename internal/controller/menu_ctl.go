package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/service"
)

// ==================== MenuController 菜单控制器 ====================

type MenuController struct {
	menuService *service.MenuService
	devMode     bool
}

func NewMenuController(s *service.MenuService, devMode bool) *MenuController {
	return &MenuController{menuService: s, devMode: devMode}
}

// GetMenu 菜单查询
// 带 branch_id：该门店的有效菜单（主商品合并覆盖行）
// 不带 branch_id：company_admin 得到含成本价的主菜单，
// 门店级角色回落到自己门店的有效菜单
// GET /api/menu?branch_id=N
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	ctx := c.Request.Context()

	if scoped := middleware.GetScopedBranchID(c); scoped != nil {
		items, err := ctrl.menuService.BranchMenu(ctx, claims, *scoped)
		if err != nil {
			failFromService(c, err, ctrl.devMode)
			return
		}
		ok(c, "Menu retrieved", items)
		return
	}

	if claims.Role.BranchScoped() {
		if claims.BranchID == nil {
			fail(c, http.StatusForbidden, "Access denied: no branch assigned")
			return
		}
		items, err := ctrl.menuService.BranchMenu(ctx, claims, *claims.BranchID)
		if err != nil {
			failFromService(c, err, ctrl.devMode)
			return
		}
		ok(c, "Menu retrieved", items)
		return
	}

	items, err := ctrl.menuService.MasterMenu(ctx, claims)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Menu retrieved", items)
}

// GetCategories 本公司启用分类
// GET /api/menu/categories
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	categories, err := ctrl.menuService.Categories(c.Request.Context(), claims)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Categories retrieved", categories)
}
