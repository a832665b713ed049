package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"dobby_cafe_v1/internal/api/dto"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/model"
	"dobby_cafe_v1/internal/repository"
)

// ==================== AuthService 认证服务 ====================

// AuthService 认证服务
type AuthService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// NewAuthService 创建认证服务
// bcryptCost 是部署级配置，可调慢哈希成本而不影响已存哈希的兼容性
func NewAuthService(userRepo repository.UserRepository, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{userRepo: userRepo, bcryptCost: bcryptCost}
}

// ==================== 凭证校验 ====================

// VerifyPassword 明文口令与存储哈希比对
// 哈希格式非法视同不匹配，绝不中断请求
func VerifyPassword(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

// HashPassword 生成加盐慢哈希
func (s *AuthService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ==================== 登录 / 会话 ====================

// Login 用户登录
// 邮箱不存在、用户停用、口令不符一律返回同一错误，不泄露存在性
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	// 更新最后登录时间，失败不影响登录
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)

	return &dto.LoginResult{
		Token: token,
		User:  toUserInfo(user),
	}, nil
}

// Profile 获取当前用户信息
// Token 自包含，签发后用户可能已被停用，这里回查最新状态
func (s *AuthService) Profile(ctx context.Context, userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserInfo(user), nil
}

// ==================== 辅助方法 ====================

// toUserInfo 转换为 DTO
func toUserInfo(user *model.User) *dto.UserInfo {
	info := &dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
		BranchID:  user.BranchID,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
	if user.Company != nil {
		info.CompanyName = user.Company.Name
	}
	if user.Branch != nil {
		info.BranchName = &user.Branch.Name
	}
	return info
}

// ==================== 错误定义 ====================

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)
