package repository

import (
	"context"
	"testing"

	"dobby_cafe_v1/internal/model"
)

// ==================== 覆盖行唯一性 ====================

func TestBranchProductUpsert(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewBranchProductRepository(db)
	ctx := context.Background()

	// 首次写入
	err := repo.Upsert(ctx, &model.BranchProduct{
		BranchID:        f.besiktas.ID,
		MasterProductID: f.latte.ID,
		Price:           price("42.00"),
		IsAvailable:     true,
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// 同一 (门店, 商品) 再写一次：更新而非新增
	custom := "Beşiktaş Latte"
	err = repo.Upsert(ctx, &model.BranchProduct{
		BranchID:        f.besiktas.ID,
		MasterProductID: f.latte.ID,
		CustomName:      &custom,
		Price:           price("48.00"),
		IsAvailable:     false,
		SortOrder:       3,
	})
	if err != nil {
		t.Fatalf("二次 Upsert() error = %v", err)
	}

	var count int64
	db.Model(&model.BranchProduct{}).
		Where("branch_id = ? AND master_product_id = ?", f.besiktas.ID, f.latte.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("覆盖行数 = %d, want 1", count)
	}

	bp, err := repo.GetByPair(ctx, f.besiktas.ID, f.latte.ID)
	if err != nil {
		t.Fatalf("GetByPair() error = %v", err)
	}
	if bp == nil {
		t.Fatal("GetByPair() 返回空")
	}
	if bp.CustomName == nil || *bp.CustomName != custom {
		t.Errorf("CustomName = %v, want %s", bp.CustomName, custom)
	}
	if !bp.Price.Equal(price("48.00")) {
		t.Errorf("Price = %s, want 48.00", bp.Price)
	}
	if bp.IsAvailable {
		t.Error("IsAvailable 应已更新为 false")
	}
	if bp.SortOrder != 3 {
		t.Errorf("SortOrder = %d, want 3", bp.SortOrder)
	}
}

func TestBranchProductDeleteByPair(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewBranchProductRepository(db)
	ctx := context.Background()

	if err := repo.DeleteByPair(ctx, f.kadikoy.ID, f.latte.ID); err != nil {
		t.Fatalf("DeleteByPair() error = %v", err)
	}

	bp, err := repo.GetByPair(ctx, f.kadikoy.ID, f.latte.ID)
	if err != nil {
		t.Fatalf("GetByPair() error = %v", err)
	}
	if bp != nil {
		t.Error("覆盖行应已删除")
	}

	// 删除覆盖后菜单回落到基础价
	menuRepo := NewMenuRepository(db)
	rows, _ := menuRepo.ResolveBranchMenu(ctx, f.company.ID, f.kadikoy.ID)
	for _, row := range rows {
		if row.MasterProductID == f.latte.ID {
			if row.Name != "Latte" || !row.Price.Equal(price("40.00")) {
				t.Errorf("回落失败: Name = %s, Price = %s", row.Name, row.Price)
			}
		}
	}
}

// ==================== 级联删除 ====================

func TestMasterProductHardDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	ctx := context.Background()

	productRepo := NewProductRepository(db)
	if err := productRepo.HardDelete(ctx, f.latte.ID); err != nil {
		t.Fatalf("HardDelete() error = %v", err)
	}

	var count int64
	db.Model(&model.BranchProduct{}).
		Where("master_product_id = ?", f.latte.ID).
		Count(&count)
	if count != 0 {
		t.Errorf("物理删除主商品后覆盖行应级联删除, 剩余 %d 行", count)
	}
}

func TestListByBranch(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	repo := NewBranchProductRepository(db)

	list, err := repo.ListByBranch(context.Background(), f.kadikoy.ID)
	if err != nil {
		t.Fatalf("ListByBranch() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("覆盖行数 = %d, want 1", len(list))
	}
	if list[0].MasterProductID != f.latte.ID {
		t.Errorf("MasterProductID = %d, want %d", list[0].MasterProductID, f.latte.ID)
	}
}
