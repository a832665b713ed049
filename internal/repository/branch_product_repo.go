package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dobby_cafe_v1/internal/model"
)

// ==================== 接口定义 ====================

// BranchProductRepository 门店覆盖仓储接口
// (branch_id, master_product_id) 唯一性由数据库索引保证，并发写入不会产生重复行
type BranchProductRepository interface {
	Upsert(ctx context.Context, bp *model.BranchProduct) error
	GetByPair(ctx context.Context, branchID, masterProductID int64) (*model.BranchProduct, error)
	DeleteByPair(ctx context.Context, branchID, masterProductID int64) error
	ListByBranch(ctx context.Context, branchID int64) ([]model.BranchProduct, error)
}

// ==================== 仓储实现 ====================

type branchProductRepo struct {
	db *gorm.DB
}

// NewBranchProductRepository 创建门店覆盖仓储
func NewBranchProductRepository(db *gorm.DB) BranchProductRepository {
	return &branchProductRepo{db: db}
}

// Upsert 覆盖行按唯一对写入，已存在则更新覆盖字段
func (r *branchProductRepo) Upsert(ctx context.Context, bp *model.BranchProduct) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "branch_id"}, {Name: "master_product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"custom_name", "price", "is_available", "sort_order", "updated_at",
		}),
	}).Create(bp).Error
}

func (r *branchProductRepo) GetByPair(ctx context.Context, branchID, masterProductID int64) (*model.BranchProduct, error) {
	var bp model.BranchProduct
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND master_product_id = ?", branchID, masterProductID).
		First(&bp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bp, nil
}

func (r *branchProductRepo) DeleteByPair(ctx context.Context, branchID, masterProductID int64) error {
	return r.db.WithContext(ctx).
		Where("branch_id = ? AND master_product_id = ?", branchID, masterProductID).
		Delete(&model.BranchProduct{}).Error
}

func (r *branchProductRepo) ListByBranch(ctx context.Context, branchID int64) ([]model.BranchProduct, error) {
	var list []model.BranchProduct
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("sort_order").
		Find(&list).Error
	return list, err
}
