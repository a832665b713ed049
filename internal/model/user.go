package model

import (
	"time"
)

// ==================== 角色定义 ====================

// UserRole 用户角色，决定可访问的数据范围
type UserRole string

const (
	RoleCompanyAdmin  UserRole = "company_admin"  // 全公司
	RoleBranchManager UserRole = "branch_manager" // 仅本门店
	RoleCashier       UserRole = "cashier"        // 仅本门店
)

// BranchScoped 是否为门店级角色（仅能访问自己门店的数据）
func (r UserRole) BranchScoped() bool {
	return r == RoleBranchManager || r == RoleCashier
}

// Valid 角色取值校验
func (r UserRole) Valid() bool {
	switch r {
	case RoleCompanyAdmin, RoleBranchManager, RoleCashier:
		return true
	}
	return false
}

// ==================== 用户 ====================

// User 系统用户，隶属于一个公司，可选隶属于一个门店
type User struct {
	BaseModel
	CompanyID int64    `gorm:"index;not null"`
	Company   *Company `gorm:"constraint:OnDelete:CASCADE"`
	BranchID  *int64   `gorm:"index"`
	Branch    *Branch  `gorm:"constraint:OnDelete:SET NULL"`

	Username     string   `gorm:"size:100;uniqueIndex;not null"`
	Email        string   `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:50;not null;check:role IN ('company_admin','branch_manager','cashier')"`
	FullName     string   `gorm:"size:255"`

	IsActive  bool       `gorm:"default:true"`
	LastLogin *time.Time `gorm:"column:last_login"`
}

func (User) TableName() string {
	return "users"
}
