package main

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dobby_cafe_v1/internal/config"
	"dobby_cafe_v1/internal/model"
	"dobby_cafe_v1/pkg/database"
)

// 建表 + 补充约束 + 演示数据
// 可重复执行：已存在的数据按 email/名称跳过

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	db := database.InitDB(cfg.DB.DSN(),
		&model.Company{}, &model.Branch{}, &model.User{},
		&model.Category{}, &model.MasterProduct{}, &model.BranchProduct{},
	)

	addManagerConstraint(db)
	seed(db, cfg.BcryptRounds)

	log.Println("迁移完成 (Migration Completed)")
}

// addManagerConstraint 补充 branches.manager_id 外键
// branches 与 users 互相引用，AutoMigrate 无法一次建出环，外键在两表齐备后补
func addManagerConstraint(db *gorm.DB) {
	err := db.Exec(`
		DO $$ BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'fk_branches_manager'
			) THEN
				ALTER TABLE branches
					ADD CONSTRAINT fk_branches_manager
					FOREIGN KEY (manager_id) REFERENCES users(id) ON DELETE SET NULL;
			END IF;
		END $$;
	`).Error
	if err != nil {
		log.Fatalf("补充外键失败: %v", err)
	}
}

// ==================== 演示数据 ====================

func seed(db *gorm.DB, bcryptRounds int) {
	// 公司
	company := &model.Company{
		Name:  "Dobby Cafe",
		Email: "info@dobby.com",
		Phone: "+90 212 555 0101",
	}
	var existing model.Company
	if err := db.Where("email = ?", company.Email).First(&existing).Error; err == nil {
		log.Println("演示数据已存在，跳过")
		return
	}
	if err := db.Create(company).Error; err != nil {
		log.Fatalf("公司创建失败: %v", err)
	}

	// 门店
	kadikoy := &model.Branch{CompanyID: company.ID, Name: "Kadıköy", Address: "Kadıköy, İstanbul", IsActive: true}
	besiktas := &model.Branch{CompanyID: company.ID, Name: "Beşiktaş", Address: "Beşiktaş, İstanbul", IsActive: true}
	if err := db.Create([]*model.Branch{kadikoy, besiktas}).Error; err != nil {
		log.Fatalf("门店创建失败: %v", err)
	}

	// 管理员，演示口令 123456
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcryptRounds)
	if err != nil {
		log.Fatalf("口令哈希失败: %v", err)
	}
	admin := &model.User{
		CompanyID:    company.ID,
		Username:     "admin",
		Email:        "admin@dobby.com",
		PasswordHash: string(hash),
		Role:         model.RoleCompanyAdmin,
		FullName:     "Dobby Admin",
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("管理员创建失败: %v", err)
	}

	// 分类
	categories := []*model.Category{
		{CompanyID: company.ID, Name: "Kahve", SortOrder: 1, IsActive: true},
		{CompanyID: company.ID, Name: "Çay", SortOrder: 2, IsActive: true},
		{CompanyID: company.ID, Name: "İçecek", SortOrder: 3, IsActive: true},
		{CompanyID: company.ID, Name: "Tatlı", SortOrder: 4, IsActive: true},
	}
	if err := db.Create(categories).Error; err != nil {
		log.Fatalf("分类创建失败: %v", err)
	}

	// 示例商品 + Kadıköy 覆盖价
	cost := decimal.NewFromFloat(18.00)
	latte := &model.MasterProduct{
		CompanyID:  company.ID,
		CategoryID: &categories[0].ID,
		Name:       "Latte",
		BasePrice:  decimal.NewFromFloat(40.00),
		CostPrice:  &cost,
		IsActive:   true,
	}
	if err := db.Create(latte).Error; err != nil {
		log.Fatalf("商品创建失败: %v", err)
	}
	override := &model.BranchProduct{
		BranchID:        kadikoy.ID,
		MasterProductID: latte.ID,
		Price:           decimal.NewFromFloat(45.00),
		IsAvailable:     true,
		SortOrder:       1,
	}
	if err := db.Create(override).Error; err != nil {
		log.Fatalf("覆盖创建失败: %v", err)
	}

	log.Println("演示数据写入完成")
}
