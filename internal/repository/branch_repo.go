package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dobby_cafe_v1/internal/model"
)

// ==================== 接口定义 ====================

// BranchRepository 门店仓储接口
type BranchRepository interface {
	Create(ctx context.Context, branch *model.Branch) error
	GetByID(ctx context.Context, id int64) (*model.Branch, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.Branch, error)
	Update(ctx context.Context, branch *model.Branch) error
}

// ==================== 仓储实现 ====================

type branchRepo struct {
	db *gorm.DB
}

// NewBranchRepository 创建门店仓储
func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepo{db: db}
}

func (r *branchRepo) Create(ctx context.Context, branch *model.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *branchRepo) GetByID(ctx context.Context, id int64) (*model.Branch, error) {
	var branch model.Branch
	err := r.db.WithContext(ctx).First(&branch, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepo) ListByCompany(ctx context.Context, companyID int64) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("name").
		Find(&branches).Error
	return branches, err
}

func (r *branchRepo) Update(ctx context.Context, branch *model.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}
