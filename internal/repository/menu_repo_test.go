package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dobby_cafe_v1/internal/model"
)

// ==================== 测试辅助 ====================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	// 级联删除依赖外键约束，sqlite 默认关闭
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("开启外键失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Company{}, &model.Branch{}, &model.User{},
		&model.Category{}, &model.MasterProduct{}, &model.BranchProduct{},
	); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}
	return db
}

// catalogFixture 一套完整的演示目录
type catalogFixture struct {
	company  *model.Company
	other    *model.Company
	kadikoy  *model.Branch
	besiktas *model.Branch
	kahve    *model.Category
	tatli    *model.Category
	latte    *model.MasterProduct
	espresso *model.MasterProduct
	baklava  *model.MasterProduct
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

// seedCatalog 两家公司、两家门店、两个分类、三个商品
// Kadıköy 对 Latte 有覆盖：改名 + 涨价
func seedCatalog(t *testing.T, db *gorm.DB) *catalogFixture {
	t.Helper()
	f := &catalogFixture{
		company: &model.Company{Name: "Dobby Cafe", Email: "info@dobby.com"},
		other:   &model.Company{Name: "Rival Cafe", Email: "info@rival.com"},
	}
	mustCreate(t, db, f.company, f.other)

	f.kadikoy = &model.Branch{CompanyID: f.company.ID, Name: "Kadıköy", IsActive: true}
	f.besiktas = &model.Branch{CompanyID: f.company.ID, Name: "Beşiktaş", IsActive: true}
	mustCreate(t, db, f.kadikoy, f.besiktas)

	f.kahve = &model.Category{CompanyID: f.company.ID, Name: "Kahve", SortOrder: 1, IsActive: true}
	f.tatli = &model.Category{CompanyID: f.company.ID, Name: "Tatlı", SortOrder: 2, IsActive: true}
	mustCreate(t, db, f.kahve, f.tatli)

	f.latte = &model.MasterProduct{
		CompanyID: f.company.ID, CategoryID: &f.kahve.ID,
		Name: "Latte", BasePrice: price("40.00"), CostPrice: pricePtr("18.00"), IsActive: true,
	}
	f.espresso = &model.MasterProduct{
		CompanyID: f.company.ID, CategoryID: &f.kahve.ID,
		Name: "Espresso", BasePrice: price("30.00"), IsActive: true,
	}
	f.baklava = &model.MasterProduct{
		CompanyID: f.company.ID, CategoryID: &f.tatli.ID,
		Name: "Baklava", BasePrice: price("55.00"), IsActive: true,
	}
	mustCreate(t, db, f.latte, f.espresso, f.baklava)

	custom := "Dobby Latte"
	mustCreate(t, db, &model.BranchProduct{
		BranchID: f.kadikoy.ID, MasterProductID: f.latte.ID,
		CustomName: &custom, Price: price("45.00"), IsAvailable: true, SortOrder: 1,
	})
	return f
}

func mustCreate(t *testing.T, db *gorm.DB, records ...interface{}) {
	t.Helper()
	for _, rec := range records {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("写入测试数据失败: %v", err)
		}
	}
}

// ==================== 门店菜单解析 ====================

func TestResolveBranchMenu_OverrideApplied(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewMenuRepository(db)

	rows, err := repo.ResolveBranchMenu(context.Background(), f.company.ID, f.kadikoy.ID)
	if err != nil {
		t.Fatalf("ResolveBranchMenu() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("行数 = %d, want 3", len(rows))
	}

	var latte *BranchMenuRow
	for i := range rows {
		if rows[i].MasterProductID == f.latte.ID {
			latte = &rows[i]
		}
	}
	if latte == nil {
		t.Fatal("菜单中找不到 Latte")
	}
	if latte.Name != "Dobby Latte" {
		t.Errorf("覆盖名未生效: Name = %s, want Dobby Latte", latte.Name)
	}
	if !latte.Price.Equal(price("45.00")) {
		t.Errorf("覆盖价未生效: Price = %s, want 45.00", latte.Price)
	}
	if !latte.BasePrice.Equal(price("40.00")) {
		t.Errorf("基础价应保留: BasePrice = %s, want 40.00", latte.BasePrice)
	}
	if latte.BranchProductID == nil {
		t.Error("有覆盖行时 BranchProductID 不应为空")
	}
}

func TestResolveBranchMenu_FallbackToBase(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewMenuRepository(db)

	// Beşiktaş 没有任何覆盖
	rows, err := repo.ResolveBranchMenu(context.Background(), f.company.ID, f.besiktas.ID)
	if err != nil {
		t.Fatalf("ResolveBranchMenu() error = %v", err)
	}

	for _, row := range rows {
		if row.BranchProductID != nil {
			t.Errorf("无覆盖门店出现覆盖行 id: %v", *row.BranchProductID)
		}
		if !row.Price.Equal(row.BasePrice) {
			t.Errorf("%s: 价格应回落到基础价, Price = %s, BasePrice = %s", row.Name, row.Price, row.BasePrice)
		}
		if !row.IsAvailable {
			t.Errorf("%s: 无覆盖时默认应可售", row.Name)
		}
	}
}

func TestResolveBranchMenu_UnknownBranchEmptyOverrides(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewMenuRepository(db)

	// 不存在的门店 id：主商品照常返回，只是没有任何覆盖命中
	rows, err := repo.ResolveBranchMenu(context.Background(), f.company.ID, 99999)
	if err != nil {
		t.Fatalf("ResolveBranchMenu() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("行数 = %d, want 3", len(rows))
	}
	for _, row := range rows {
		if row.BranchProductID != nil {
			t.Errorf("未知门店不应命中覆盖行: %s", row.Name)
		}
	}
}

func TestResolveBranchMenu_InactiveExcluded(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewMenuRepository(db)

	// 停用一个商品
	if err := db.Model(f.espresso).Update("is_active", false).Error; err != nil {
		t.Fatalf("停用商品失败: %v", err)
	}
	rows, _ := repo.ResolveBranchMenu(context.Background(), f.company.ID, f.kadikoy.ID)
	if len(rows) != 2 {
		t.Fatalf("停用商品后行数 = %d, want 2", len(rows))
	}

	// 停用整个分类，分类下所有商品消失
	if err := db.Model(f.kahve).Update("is_active", false).Error; err != nil {
		t.Fatalf("停用分类失败: %v", err)
	}
	rows, _ = repo.ResolveBranchMenu(context.Background(), f.company.ID, f.kadikoy.ID)
	if len(rows) != 1 {
		t.Fatalf("停用分类后行数 = %d, want 1", len(rows))
	}
	if rows[0].Name != "Baklava" {
		t.Errorf("剩余商品 = %s, want Baklava", rows[0].Name)
	}
}

func TestResolveBranchMenu_Ordering(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewMenuRepository(db)

	rows, err := repo.ResolveBranchMenu(context.Background(), f.company.ID, f.kadikoy.ID)
	if err != nil {
		t.Fatalf("ResolveBranchMenu() error = %v", err)
	}

	// 分类顺序：Kahve(1) 在 Tatlı(2) 前
	// Kahve 内：Espresso 无覆盖 sort 0，Latte 覆盖 sort 1
	want := []string{"Espresso", "Dobby Latte", "Baklava"}
	if len(rows) != len(want) {
		t.Fatalf("行数 = %d, want %d", len(rows), len(want))
	}
	for i, name := range want {
		if rows[i].Name != name {
			t.Errorf("第 %d 行 = %s, want %s", i, rows[i].Name, name)
		}
	}
}

func TestResolveBranchMenu_CompanyIsolation(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewMenuRepository(db)

	// 另一家公司看不到任何商品
	rows, err := repo.ResolveBranchMenu(context.Background(), f.other.ID, f.kadikoy.ID)
	if err != nil {
		t.Fatalf("ResolveBranchMenu() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("跨公司行数 = %d, want 0", len(rows))
	}
}

// ==================== 主菜单解析 ====================

func TestResolveMasterMenu(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewMenuRepository(db)

	rows, err := repo.ResolveMasterMenu(context.Background(), f.company.ID)
	if err != nil {
		t.Fatalf("ResolveMasterMenu() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("行数 = %d, want 3", len(rows))
	}

	// 主菜单忽略覆盖行，始终返回基础价与原名
	var latte *MasterMenuRow
	for i := range rows {
		if rows[i].ID == f.latte.ID {
			latte = &rows[i]
		}
	}
	if latte == nil {
		t.Fatal("主菜单中找不到 Latte")
	}
	if latte.Name != "Latte" {
		t.Errorf("主菜单 Name = %s, want Latte", latte.Name)
	}
	if !latte.Price.Equal(price("40.00")) {
		t.Errorf("主菜单 Price = %s, want 40.00", latte.Price)
	}
	if latte.CostPrice == nil || !latte.CostPrice.Equal(price("18.00")) {
		t.Errorf("主菜单应携带成本价: %v", latte.CostPrice)
	}
}
