package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dobby_cafe_v1/internal/api/dto"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/service"
)

// ==================== CatalogController 目录维护控制器 ====================

type CatalogController struct {
	catalogService *service.CatalogService
	devMode        bool
}

func NewCatalogController(s *service.CatalogService, devMode bool) *CatalogController {
	return &CatalogController{catalogService: s, devMode: devMode}
}

// ==================== 分类 ====================

// CreateCategory 创建分类
// POST /api/catalog/categories
func (ctrl *CatalogController) CreateCategory(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	category, err := ctrl.catalogService.CreateCategory(c.Request.Context(), claims, &req)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Category created", category)
}

// UpdateCategory 更新分类
// PUT /api/catalog/categories/:id
func (ctrl *CatalogController) UpdateCategory(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	category, err := ctrl.catalogService.UpdateCategory(c.Request.Context(), claims, id, &req)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Category updated", category)
}

// DeleteCategory 停用分类（软删除）
// DELETE /api/catalog/categories/:id
func (ctrl *CatalogController) DeleteCategory(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := ctrl.catalogService.DeactivateCategory(c.Request.Context(), claims, id); err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Category deactivated", nil)
}

// ==================== 主商品 ====================

// CreateProduct 创建主商品
// POST /api/catalog/products
func (ctrl *CatalogController) CreateProduct(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	product, err := ctrl.catalogService.CreateProduct(c.Request.Context(), claims, &req)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Product created", product)
}

// UpdateProduct 更新主商品
// PUT /api/catalog/products/:id
func (ctrl *CatalogController) UpdateProduct(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	product, err := ctrl.catalogService.UpdateProduct(c.Request.Context(), claims, id, &req)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Product updated", product)
}

// DeactivateProduct 停用主商品（软删除，所有门店菜单即刻隐藏）
// DELETE /api/catalog/products/:id
func (ctrl *CatalogController) DeactivateProduct(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := ctrl.catalogService.DeactivateProduct(c.Request.Context(), claims, id); err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Product deactivated", nil)
}

// PurgeProduct 物理删除主商品，门店覆盖随之级联删除
// DELETE /api/catalog/products/:id/purge
func (ctrl *CatalogController) PurgeProduct(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := ctrl.catalogService.DeleteProduct(c.Request.Context(), claims, id); err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Product deleted", nil)
}

// ==================== 门店覆盖 ====================

// SetOverride 写入/更新门店覆盖
// PUT /api/catalog/branches/:branch_id/products/:product_id
func (ctrl *CatalogController) SetOverride(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	branchID, err := pathID(c, "branch_id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid branch id")
		return
	}
	productID, err := pathID(c, "product_id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req dto.SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	override, err := ctrl.catalogService.SetOverride(c.Request.Context(), claims, branchID, productID, &req)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Override saved", override)
}

// RemoveOverride 删除门店覆盖，回落到主商品默认值
// DELETE /api/catalog/branches/:branch_id/products/:product_id
func (ctrl *CatalogController) RemoveOverride(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	branchID, err := pathID(c, "branch_id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid branch id")
		return
	}
	productID, err := pathID(c, "product_id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := ctrl.catalogService.RemoveOverride(c.Request.Context(), claims, branchID, productID); err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Override removed", nil)
}

// ==================== 门店 ====================

// CreateBranch 创建门店
// POST /api/catalog/branches
func (ctrl *CatalogController) CreateBranch(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	branch, err := ctrl.catalogService.CreateBranch(c.Request.Context(), claims, &req)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Branch created", branch)
}

// ListBranches 本公司门店列表
// GET /api/catalog/branches
func (ctrl *CatalogController) ListBranches(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	branches, err := ctrl.catalogService.ListBranches(c.Request.Context(), claims)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}
	ok(c, "Branches retrieved", branches)
}

// ==================== 辅助方法 ====================

// pathID 解析路径参数里的正整数 id
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
