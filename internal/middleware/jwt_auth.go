package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"dobby_cafe_v1/internal/model"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string        // 签名密钥，进程级，轮换即全部失效
	TokenTTL  time.Duration // Token 有效期
	Issuer    string        // 签发者
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey: "dobby-cafe-secret-key-change-in-production",
		TokenTTL:  24 * time.Hour,
		Issuer:    "dobby-cafe",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置（启动时调用一次）
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== 错误定义 ====================
// 过期与无效是两类错误，上层提示语不同

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// ==================== Claims 定义 ====================

// UserClaims 用户声明：身份 + 租户范围（公司/门店/角色）
// 反映的是签发时刻的用户状态，校验不回查数据库
type UserClaims struct {
	UserID    int64          `json:"user_id"`
	Email     string         `json:"email"`
	Role      model.UserRole `json:"role"`
	CompanyID int64          `json:"company_id"`
	BranchID  *int64         `json:"branch_id,omitempty"`
	jwt.RegisteredClaims
}

// ==================== Token 生成 ====================

// GenerateToken 为已验证身份签发自包含 Token
func GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		BranchID:  user.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ==================== Token 解析 ====================

// ParseToken 解析 Token，纯计算，不做任何 I/O
// 签名有效但已过期 → ErrTokenExpired；结构/签名/算法问题 → ErrInvalidToken
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyCompanyID = "company_id"
	ContextKeyRole      = "role"
	ContextKeyClaims    = "claims"
)

// JWTAuth 认证中间件
// 所有 401 提示语都包含 "token" 字样，客户端依赖该约定
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access token required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid authorization header, expected Bearer token",
			})
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, ErrTokenExpired) {
				message = "Session token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		// 注入用户信息到 Context
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyCompanyID, claims.CompanyID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyUserID); exists {
		return id.(int64)
	}
	return 0
}

// GetClaims 从 Context 获取完整 Claims
func GetClaims(c *gin.Context) *UserClaims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*UserClaims)
	}
	return nil
}
