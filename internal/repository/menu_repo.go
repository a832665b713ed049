package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ==================== 查询结果行 ====================
// 每条查询一个显式结构体，存储投影与响应 JSON 解耦

// BranchMenuRow 门店级有效菜单行
// 不携带成本价：该视图面向门店/收银端消费者
type BranchMenuRow struct {
	BranchProductID *int64          // 覆盖行 id，无覆盖时为空
	MasterProductID int64           // 主商品 id
	Name            string          // 有效名称 = COALESCE(覆盖名, 主商品名)
	Price           decimal.Decimal // 有效价格 = COALESCE(覆盖价, 基础价)
	BasePrice       decimal.Decimal
	Description     string
	ImageURL        string
	Category        string
	CategoryID      int64
	IsAvailable     bool // 无覆盖行时默认可售
	SortOrder       int  // 有效顺序 = COALESCE(覆盖顺序, 默认 0)
}

// MasterMenuRow 公司级主菜单行，含成本价，仅供后台使用
type MasterMenuRow struct {
	ID          int64
	Name        string
	Price       decimal.Decimal // 基础价
	CostPrice   *decimal.Decimal
	Description string
	ImageURL    string
	Category    string
	CategoryID  int64
}

// ==================== 接口定义 ====================

// MenuRepository 菜单解析查询
// 两种视图都静默排除停用分类与停用主商品（软删除语义）
type MenuRepository interface {
	// ResolveBranchMenu 门店有效菜单：主商品左连接该门店的覆盖行
	// 未知门店 id 返回空集，不报错（归属校验由访问控制层前置完成）
	ResolveBranchMenu(ctx context.Context, companyID, branchID int64) ([]BranchMenuRow, error)
	// ResolveMasterMenu 公司主菜单：全部启用主商品按基础价返回
	ResolveMasterMenu(ctx context.Context, companyID int64) ([]MasterMenuRow, error)
}

// ==================== 仓储实现 ====================

type menuRepo struct {
	db *gorm.DB
}

// NewMenuRepository 创建菜单解析仓储
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepo{db: db}
}

// 门店菜单解析 SQL
// 排序是正确性要求：分类顺序 → 有效商品顺序 → 商品名，结果必须稳定
const branchMenuQuery = `
SELECT
    bp.id                              AS branch_product_id,
    mp.id                              AS master_product_id,
    COALESCE(bp.custom_name, mp.name)  AS name,
    COALESCE(bp.price, mp.base_price)  AS price,
    mp.base_price                      AS base_price,
    mp.description                     AS description,
    mp.image_url                       AS image_url,
    c.name                             AS category,
    c.id                               AS category_id,
    COALESCE(bp.is_available, TRUE)    AS is_available,
    COALESCE(bp.sort_order, 0)         AS sort_order
FROM master_products mp
JOIN categories c ON mp.category_id = c.id
LEFT JOIN branch_products bp
       ON bp.master_product_id = mp.id AND bp.branch_id = ?
WHERE mp.company_id = ?
  AND mp.is_active = TRUE
  AND c.is_active = TRUE
ORDER BY c.sort_order, COALESCE(bp.sort_order, 0), mp.name`

func (r *menuRepo) ResolveBranchMenu(ctx context.Context, companyID, branchID int64) ([]BranchMenuRow, error) {
	rows := make([]BranchMenuRow, 0)
	err := r.db.WithContext(ctx).
		Raw(branchMenuQuery, branchID, companyID).
		Scan(&rows).Error
	return rows, err
}

// 公司主菜单 SQL，含成本价
const masterMenuQuery = `
SELECT
    mp.id          AS id,
    mp.name        AS name,
    mp.base_price  AS price,
    mp.cost_price  AS cost_price,
    mp.description AS description,
    mp.image_url   AS image_url,
    c.name         AS category,
    c.id           AS category_id
FROM master_products mp
JOIN categories c ON mp.category_id = c.id
WHERE mp.company_id = ?
  AND mp.is_active = TRUE
  AND c.is_active = TRUE
ORDER BY c.sort_order, mp.name`

func (r *menuRepo) ResolveMasterMenu(ctx context.Context, companyID int64) ([]MasterMenuRow, error) {
	rows := make([]MasterMenuRow, 0)
	err := r.db.WithContext(ctx).
		Raw(masterMenuQuery, companyID).
		Scan(&rows).Error
	return rows, err
}
