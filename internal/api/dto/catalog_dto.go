package dto

import "github.com/shopspring/decimal"

// ==================== 后台目录维护 ====================
// 每个端点一份静态请求契约，进入业务逻辑前完成绑定校验

// CreateCategoryRequest 创建分类
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	SortOrder int    `json:"sort_order" binding:"omitempty,min=0"`
}

// UpdateCategoryRequest 更新分类
type UpdateCategoryRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	SortOrder *int    `json:"sort_order" binding:"omitempty,min=0"`
	IsActive  *bool   `json:"is_active"`
}

// CreateProductRequest 创建主商品
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=255"`
	Description string           `json:"description" binding:"omitempty,max=1000"`
	BasePrice   decimal.Decimal  `json:"base_price" binding:"required"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	CategoryID  int64            `json:"category_id" binding:"required,gt=0"`
	ImageURL    string           `json:"image_url" binding:"omitempty,max=500"`
}

// UpdateProductRequest 更新主商品
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	CategoryID  *int64           `json:"category_id" binding:"omitempty,gt=0"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,max=500"`
	IsActive    *bool            `json:"is_active"`
}

// SetOverrideRequest 写入门店覆盖（价格必填，其余可选）
type SetOverrideRequest struct {
	CustomName  *string         `json:"custom_name" binding:"omitempty,min=1,max=255"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	IsAvailable *bool           `json:"is_available"`
	SortOrder   *int            `json:"sort_order" binding:"omitempty,min=0"`
}

// ProductInfo 主商品详情（后台视图）
type ProductInfo struct {
	ID          int64            `json:"id"`
	CategoryID  *int64           `json:"category_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	BasePrice   decimal.Decimal  `json:"base_price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	ImageURL    string           `json:"image_url"`
	IsActive    bool             `json:"is_active"`
}

// OverrideInfo 门店覆盖详情
type OverrideInfo struct {
	ID              int64           `json:"id"`
	BranchID        int64           `json:"branch_id"`
	MasterProductID int64           `json:"master_product_id"`
	CustomName      *string         `json:"custom_name"`
	Price           decimal.Decimal `json:"price"`
	IsAvailable     bool            `json:"is_available"`
	SortOrder       int             `json:"sort_order"`
}

// BranchInfo 门店详情
type BranchInfo struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	ManagerID *int64 `json:"manager_id"`
	IsActive  bool   `json:"is_active"`
}

// CreateBranchRequest 创建门店
type CreateBranchRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	Address   string `json:"address" binding:"omitempty,max=500"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	ManagerID *int64 `json:"manager_id" binding:"omitempty,gt=0"`
}
