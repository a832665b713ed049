package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dobby_cafe_v1/internal/api/dto"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/service"
)

// ==================== AuthController 认证控制器 ====================

type AuthController struct {
	authService *service.AuthService
	devMode     bool
}

func NewAuthController(s *service.AuthService, devMode bool) *AuthController {
	return &AuthController{authService: s, devMode: devMode}
}

// Login 邮箱+口令登录，成功时 token 置于响应顶层
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Me 当前用户信息，回查数据库确认账号仍然有效
// GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := ctrl.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		failFromService(c, err, ctrl.devMode)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Logout 无状态 JWT，服务端无会话可清理，前端丢弃 token 即可
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}
