package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dobby_cafe_v1/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 主商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.MasterProduct) error
	GetByID(ctx context.Context, id int64) (*model.MasterProduct, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.MasterProduct, error)
	Update(ctx context.Context, product *model.MasterProduct) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Deactivate(ctx context.Context, id int64) error
	// HardDelete 物理删除，门店覆盖行由外键级联清理
	HardDelete(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建主商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.MasterProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.MasterProduct, error) {
	var product model.MasterProduct
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) ListByCompany(ctx context.Context, companyID int64) ([]model.MasterProduct, error) {
	var products []model.MasterProduct
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("company_id = ?", companyID).
		Order("name").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, product *model.MasterProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.MasterProduct{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Deactivate 软删除：从所有菜单解析结果中隐藏
func (r *productRepo) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.MasterProduct{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *productRepo) HardDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.MasterProduct{}, id).Error
}
