package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"dobby_cafe_v1/internal/service"
)

// ==================== 统一响应格式 ====================
// 所有端点返回 {success, message, ...}，前端据 success 字段分流

// ok 成功响应，data 为空时省略 data 字段
func ok(c *gin.Context, message string, data interface{}) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// fail 失败响应
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// failValidation 绑定校验失败，逐字段列出错误
func failValidation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{
				"field":   fe.Field(),
				"message": validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  details,
		})
		return
	}
	// JSON 语法错误等非字段级问题
	fail(c, http.StatusBadRequest, "Invalid request body")
}

// validationMessage 字段级错误文案
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	case "gt":
		return fe.Field() + " must be positive"
	default:
		return fe.Field() + " is invalid"
	}
}

// failFromService 把 service 层错误映射为 HTTP 状态码
func failFromService(c *gin.Context, err error, devMode bool) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		fail(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		fail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		fail(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, service.ErrProductNotFound):
		fail(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, service.ErrBranchNotFound):
		fail(c, http.StatusNotFound, "Branch not found")
	default:
		// 内部错误细节只在开发环境下暴露
		if devMode {
			fail(c, http.StatusInternalServerError, "Internal server error: "+err.Error())
		} else {
			fail(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}
