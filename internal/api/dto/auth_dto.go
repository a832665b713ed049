package dto

import "time"

// ==================== 登录 ====================

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserInfo 用户信息（登录响应与 /auth/me 共用）
type UserInfo struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	CompanyID   int64      `json:"company_id"`
	CompanyName string     `json:"company_name"`
	BranchID    *int64     `json:"branch_id"`
	BranchName  *string    `json:"branch_name"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
}

// LoginResult 登录结果（service 层返回，controller 负责包装 success 外壳）
type LoginResult struct {
	Token string
	User  *UserInfo
}
