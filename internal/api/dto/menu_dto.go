package dto

import "github.com/shopspring/decimal"

// ==================== 菜单 ====================

// BranchMenuItem 门店有效菜单条目
// 不含成本价：该类型下发给门店/收银端，特权字段不在此结构中
type BranchMenuItem struct {
	BranchProductID *int64          `json:"branch_product_id"`
	MasterProductID int64           `json:"master_product_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	BasePrice       decimal.Decimal `json:"base_price"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	Category        string          `json:"category"`
	CategoryID      int64           `json:"category_id"`
	IsAvailable     bool            `json:"is_available"`
	SortOrder       int             `json:"sort_order"`
}

// MasterMenuItem 公司主菜单条目，含成本价，仅限后台视图
type MasterMenuItem struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	Category    string           `json:"category"`
	CategoryID  int64            `json:"category_id"`
}

// CategoryInfo 分类条目
type CategoryInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}
