package model

import (
	"github.com/shopspring/decimal"
)

// ==================== 主商品 ====================

// MasterProduct 公司级主商品，所有门店共享的标准目录条目
type MasterProduct struct {
	BaseModel
	CompanyID int64    `gorm:"index;not null"`
	Company   *Company `gorm:"constraint:OnDelete:CASCADE"`

	// 分类被删除时置空，商品保留
	CategoryID *int64    `gorm:"index"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL"`

	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`

	// 金额一律定点小数，两位精度，严禁浮点
	BasePrice decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	CostPrice *decimal.Decimal `gorm:"type:decimal(10,2)"` // 成本价，仅后台可见

	ImageURL string `gorm:"size:500"`
	IsActive bool   `gorm:"default:true"`
}

func (MasterProduct) TableName() string {
	return "master_products"
}

// ==================== 门店覆盖 ====================

// BranchProduct 门店级覆盖记录，按 (branch, master_product) 唯一
// 不存在覆盖行时，门店按主商品默认名称/基础价/默认顺序售卖
type BranchProduct struct {
	BaseModel
	BranchID int64   `gorm:"uniqueIndex:idx_branch_master;not null"`
	Branch   *Branch `gorm:"constraint:OnDelete:CASCADE"`

	MasterProductID int64          `gorm:"uniqueIndex:idx_branch_master;not null"`
	MasterProduct   *MasterProduct `gorm:"constraint:OnDelete:CASCADE"`

	CustomName  *string         `gorm:"size:255"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"` // 覆盖基础价
	IsAvailable bool            `gorm:"default:true"`
	SortOrder   int             `gorm:"default:0"`
}

func (BranchProduct) TableName() string {
	return "branch_products"
}
