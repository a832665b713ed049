package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dobby_cafe_v1/internal/model"
)

// ==================== 租户范围过滤 ====================

// Context Key：经过范围校验的门店 id
const ContextKeyScopedBranchID = "scoped_branch_id"

// RequireBranchScope 门店范围校验
// 请求带 branch_id 时：门店级角色（店长/收银员）只能访问自己的门店，
// company_admin 不受门店限制（公司归属在业务层校验）
// 必须在 JWTAuth 之后挂载
func RequireBranchScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access token required",
			})
			return
		}

		branchParam := c.Query("branch_id")
		if branchParam == "" {
			c.Next()
			return
		}

		branchID, err := strconv.ParseInt(branchParam, 10, 64)
		if err != nil || branchID <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid branch_id",
			})
			return
		}

		if claims.Role.BranchScoped() {
			if claims.BranchID == nil || *claims.BranchID != branchID {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"message": "Access denied: branch outside your scope",
				})
				return
			}
		}

		c.Set(ContextKeyScopedBranchID, branchID)
		c.Next()
	}
}

// RequireRole 角色校验中间件
func RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access token required",
			})
			return
		}

		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied: insufficient role",
		})
	}
}

// GetScopedBranchID 获取经过范围校验的门店 id，未提供时返回 nil
func GetScopedBranchID(c *gin.Context) *int64 {
	if v, exists := c.Get(ContextKeyScopedBranchID); exists {
		id := v.(int64)
		return &id
	}
	return nil
}
