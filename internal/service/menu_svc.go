package service

import (
	"context"

	"dobby_cafe_v1/internal/api/dto"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/model"
	"dobby_cafe_v1/internal/repository"
)

// ==================== MenuService 菜单服务 ====================

// MenuService 菜单解析服务
// 两种视图：公司主菜单（后台，含成本价）与门店有效菜单（合并覆盖行）
type MenuService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
	branchRepo   repository.BranchRepository
}

// NewMenuService 创建菜单服务
func NewMenuService(
	menuRepo repository.MenuRepository,
	categoryRepo repository.CategoryRepository,
	branchRepo repository.BranchRepository,
) *MenuService {
	return &MenuService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		branchRepo:   branchRepo,
	}
}

// ==================== 菜单解析 ====================

// BranchMenu 门店有效菜单
// 门店级角色只能看自己的门店；company_admin 可看本公司任意门店
// 公司范围内不存在的门店返回空菜单，不报错
func (s *MenuService) BranchMenu(ctx context.Context, claims *middleware.UserClaims, branchID int64) ([]dto.BranchMenuItem, error) {
	if claims.Role.BranchScoped() {
		if claims.BranchID == nil || *claims.BranchID != branchID {
			return nil, ErrForbidden
		}
	} else {
		// 管理员也不能跨公司取门店菜单
		branch, err := s.branchRepo.GetByID(ctx, branchID)
		if err != nil {
			return nil, err
		}
		if branch != nil && branch.CompanyID != claims.CompanyID {
			return nil, ErrForbidden
		}
	}

	rows, err := s.menuRepo.ResolveBranchMenu(ctx, claims.CompanyID, branchID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BranchMenuItem, len(rows))
	for i, row := range rows {
		items[i] = dto.BranchMenuItem{
			BranchProductID: row.BranchProductID,
			MasterProductID: row.MasterProductID,
			Name:            row.Name,
			Price:           row.Price,
			BasePrice:       row.BasePrice,
			Description:     row.Description,
			ImageURL:        row.ImageURL,
			Category:        row.Category,
			CategoryID:      row.CategoryID,
			IsAvailable:     row.IsAvailable,
			SortOrder:       row.SortOrder,
		}
	}
	return items, nil
}

// MasterMenu 公司主菜单，含成本价，仅 company_admin 可用
func (s *MenuService) MasterMenu(ctx context.Context, claims *middleware.UserClaims) ([]dto.MasterMenuItem, error) {
	if claims.Role != model.RoleCompanyAdmin {
		return nil, ErrForbidden
	}

	rows, err := s.menuRepo.ResolveMasterMenu(ctx, claims.CompanyID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MasterMenuItem, len(rows))
	for i, row := range rows {
		items[i] = dto.MasterMenuItem{
			ID:          row.ID,
			Name:        row.Name,
			Price:       row.Price,
			CostPrice:   row.CostPrice,
			Description: row.Description,
			ImageURL:    row.ImageURL,
			Category:    row.Category,
			CategoryID:  row.CategoryID,
		}
	}
	return items, nil
}

// Categories 本公司启用分类列表
func (s *MenuService) Categories(ctx context.Context, claims *middleware.UserClaims) ([]dto.CategoryInfo, error) {
	categories, err := s.categoryRepo.ListActive(ctx, claims.CompanyID)
	if err != nil {
		return nil, err
	}

	list := make([]dto.CategoryInfo, len(categories))
	for i, c := range categories {
		list[i] = dto.CategoryInfo{
			ID:        c.ID,
			Name:      c.Name,
			SortOrder: c.SortOrder,
			IsActive:  c.IsActive,
		}
	}
	return list, nil
}
