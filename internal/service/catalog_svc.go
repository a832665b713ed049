package service

import (
	"context"
	"errors"

	"dobby_cafe_v1/internal/api/dto"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/model"
	"dobby_cafe_v1/internal/repository"
)

// ==================== CatalogService 目录维护服务 ====================

// CatalogService 后台目录维护：分类、主商品、门店覆盖
// 所有写操作都以调用者 claims 的公司为租户边界
type CatalogService struct {
	categoryRepo      repository.CategoryRepository
	productRepo       repository.ProductRepository
	branchRepo        repository.BranchRepository
	branchProductRepo repository.BranchProductRepository
}

// NewCatalogService 创建目录维护服务
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	branchProductRepo repository.BranchProductRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo:      categoryRepo,
		productRepo:       productRepo,
		branchRepo:        branchRepo,
		branchProductRepo: branchProductRepo,
	}
}

// ==================== 分类维护 ====================

// CreateCategory 创建分类
func (s *CatalogService) CreateCategory(ctx context.Context, claims *middleware.UserClaims, req *dto.CreateCategoryRequest) (*dto.CategoryInfo, error) {
	category := &model.Category{
		CompanyID: claims.CompanyID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryInfo(category), nil
}

// UpdateCategory 更新分类
func (s *CatalogService) UpdateCategory(ctx context.Context, claims *middleware.UserClaims, id int64, req *dto.UpdateCategoryRequest) (*dto.CategoryInfo, error) {
	category, err := s.ownedCategory(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryInfo(category), nil
}

// DeactivateCategory 停用分类（软删除，菜单解析即刻隐藏整个分类）
func (s *CatalogService) DeactivateCategory(ctx context.Context, claims *middleware.UserClaims, id int64) error {
	if _, err := s.ownedCategory(ctx, claims, id); err != nil {
		return err
	}
	return s.categoryRepo.Deactivate(ctx, id)
}

// ==================== 主商品维护 ====================

// CreateProduct 创建主商品
func (s *CatalogService) CreateProduct(ctx context.Context, claims *middleware.UserClaims, req *dto.CreateProductRequest) (*dto.ProductInfo, error) {
	// 分类必须属于本公司
	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if category.CompanyID != claims.CompanyID {
		return nil, ErrForbidden
	}

	product := &model.MasterProduct{
		CompanyID:   claims.CompanyID,
		CategoryID:  &req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		CostPrice:   req.CostPrice,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductInfo(product), nil
}

// UpdateProduct 更新主商品
func (s *CatalogService) UpdateProduct(ctx context.Context, claims *middleware.UserClaims, id int64, req *dto.UpdateProductRequest) (*dto.ProductInfo, error) {
	product, err := s.ownedProduct(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		if category.CompanyID != claims.CompanyID {
			return nil, ErrForbidden
		}
		product.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}
	if req.CostPrice != nil {
		product.CostPrice = req.CostPrice
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductInfo(product), nil
}

// DeactivateProduct 停用主商品（软删除）
func (s *CatalogService) DeactivateProduct(ctx context.Context, claims *middleware.UserClaims, id int64) error {
	if _, err := s.ownedProduct(ctx, claims, id); err != nil {
		return err
	}
	return s.productRepo.Deactivate(ctx, id)
}

// DeleteProduct 物理删除主商品，所有门店覆盖行随之级联删除
func (s *CatalogService) DeleteProduct(ctx context.Context, claims *middleware.UserClaims, id int64) error {
	if _, err := s.ownedProduct(ctx, claims, id); err != nil {
		return err
	}
	return s.productRepo.HardDelete(ctx, id)
}

// ==================== 门店覆盖维护 ====================

// SetOverride 写入/更新门店覆盖
// 覆盖只有在主商品与门店同属一家公司时才有意义
func (s *CatalogService) SetOverride(ctx context.Context, claims *middleware.UserClaims, branchID, productID int64, req *dto.SetOverrideRequest) (*dto.OverrideInfo, error) {
	branch, err := s.ownedBranch(ctx, claims, branchID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.CompanyID != branch.CompanyID {
		return nil, ErrForbidden
	}

	bp := &model.BranchProduct{
		BranchID:        branchID,
		MasterProductID: productID,
		CustomName:      req.CustomName,
		Price:           req.Price,
		IsAvailable:     true,
		SortOrder:       0,
	}
	if req.IsAvailable != nil {
		bp.IsAvailable = *req.IsAvailable
	}
	if req.SortOrder != nil {
		bp.SortOrder = *req.SortOrder
	}

	if err := s.branchProductRepo.Upsert(ctx, bp); err != nil {
		return nil, err
	}

	// Upsert 命中已有行时不回填 id，重新读一次
	saved, err := s.branchProductRepo.GetByPair(ctx, branchID, productID)
	if err != nil {
		return nil, err
	}
	return toOverrideInfo(saved), nil
}

// RemoveOverride 删除门店覆盖，该商品回落到主商品默认值
func (s *CatalogService) RemoveOverride(ctx context.Context, claims *middleware.UserClaims, branchID, productID int64) error {
	if _, err := s.ownedBranch(ctx, claims, branchID); err != nil {
		return err
	}
	return s.branchProductRepo.DeleteByPair(ctx, branchID, productID)
}

// ==================== 门店维护 ====================

// CreateBranch 创建门店
func (s *CatalogService) CreateBranch(ctx context.Context, claims *middleware.UserClaims, req *dto.CreateBranchRequest) (*dto.BranchInfo, error) {
	branch := &model.Branch{
		CompanyID: claims.CompanyID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		ManagerID: req.ManagerID,
		IsActive:  true,
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchInfo(branch), nil
}

// ListBranches 本公司门店列表
func (s *CatalogService) ListBranches(ctx context.Context, claims *middleware.UserClaims) ([]dto.BranchInfo, error) {
	branches, err := s.branchRepo.ListByCompany(ctx, claims.CompanyID)
	if err != nil {
		return nil, err
	}
	list := make([]dto.BranchInfo, len(branches))
	for i := range branches {
		list[i] = *toBranchInfo(&branches[i])
	}
	return list, nil
}

// ==================== 租户归属校验 ====================

func (s *CatalogService) ownedCategory(ctx context.Context, claims *middleware.UserClaims, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if category.CompanyID != claims.CompanyID {
		return nil, ErrForbidden
	}
	return category, nil
}

func (s *CatalogService) ownedProduct(ctx context.Context, claims *middleware.UserClaims, id int64) (*model.MasterProduct, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.CompanyID != claims.CompanyID {
		return nil, ErrForbidden
	}
	return product, nil
}

// ownedBranch 门店归属校验；店长仅能操作自己的门店
func (s *CatalogService) ownedBranch(ctx context.Context, claims *middleware.UserClaims, id int64) (*model.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, ErrBranchNotFound
	}
	if branch.CompanyID != claims.CompanyID {
		return nil, ErrForbidden
	}
	if claims.Role.BranchScoped() {
		if claims.BranchID == nil || *claims.BranchID != id {
			return nil, ErrForbidden
		}
	}
	return branch, nil
}

// ==================== 辅助方法 ====================

func toCategoryInfo(c *model.Category) *dto.CategoryInfo {
	return &dto.CategoryInfo{
		ID:        c.ID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
	}
}

func toProductInfo(p *model.MasterProduct) *dto.ProductInfo {
	return &dto.ProductInfo{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		CostPrice:   p.CostPrice,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
	}
}

func toOverrideInfo(bp *model.BranchProduct) *dto.OverrideInfo {
	return &dto.OverrideInfo{
		ID:              bp.ID,
		BranchID:        bp.BranchID,
		MasterProductID: bp.MasterProductID,
		CustomName:      bp.CustomName,
		Price:           bp.Price,
		IsAvailable:     bp.IsAvailable,
		SortOrder:       bp.SortOrder,
	}
}

func toBranchInfo(b *model.Branch) *dto.BranchInfo {
	return &dto.BranchInfo{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		ManagerID: b.ManagerID,
		IsActive:  b.IsActive,
	}
}

// ==================== 错误定义 ====================

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrBranchNotFound   = errors.New("branch not found")
)
