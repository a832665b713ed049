package model

import (
	"gorm.io/datatypes"
)

// Company 租户根实体，旗下拥有所有门店/用户/分类/主商品
type Company struct {
	BaseModel
	Name     string         `gorm:"size:255;not null"`
	Email    string         `gorm:"size:255;uniqueIndex;not null"` // 联系邮箱，全局唯一
	Phone    string         `gorm:"size:50"`
	Address  string         `gorm:"type:text"`
	Settings datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// --- 关联关系（删除公司时级联清理） ---
	Branches []Branch        `gorm:"foreignKey:CompanyID"`
	Users    []User          `gorm:"foreignKey:CompanyID"`
	Products []MasterProduct `gorm:"foreignKey:CompanyID"`
}

func (Company) TableName() string {
	return "companies"
}
