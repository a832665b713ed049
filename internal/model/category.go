package model

// Category 菜单分类，公司级，sort_order 决定菜单展示顺序
type Category struct {
	BaseModel
	CompanyID int64    `gorm:"index;not null"`
	Company   *Company `gorm:"constraint:OnDelete:CASCADE"`
	Name      string   `gorm:"size:255;not null"`
	SortOrder int      `gorm:"default:0"`
	IsActive  bool     `gorm:"default:true"`
}

func (Category) TableName() string {
	return "categories"
}
