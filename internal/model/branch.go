package model

// Branch 门店，隶属于一个公司
type Branch struct {
	BaseModel
	CompanyID int64    `gorm:"index;not null"`
	Company   *Company `gorm:"constraint:OnDelete:CASCADE"`
	Name      string   `gorm:"size:255;not null"`
	Address   string   `gorm:"type:text"`
	Phone     string   `gorm:"size:50"`

	// 店长引用，店长用户被删除时置空
	// 外键约束在迁移脚本中补加（users 表建表晚于 branches，避免循环依赖）
	ManagerID *int64 `gorm:"index"`

	IsActive bool `gorm:"default:true"`
}

func (Branch) TableName() string {
	return "branches"
}
