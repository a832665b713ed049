package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dobby_cafe_v1/internal/model"
)

// ==================== 接口定义 ====================

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	ListActive(ctx context.Context, companyID int64) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Deactivate(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// ListActive 公司下启用的分类，按展示顺序返回
func (r *categoryRepo) ListActive(ctx context.Context, companyID int64) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("sort_order").
		Order("name").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Deactivate 软删除：仅隐藏，不物理删除
func (r *categoryRepo) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
