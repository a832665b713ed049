package service

import "errors"

// ==================== 公共错误定义 ====================
// controller 据此映射 HTTP 状态码：
// ErrForbidden → 403，*NotFound → 404，ErrInvalidCredentials → 401

var (
	// ErrForbidden 已认证但越出租户范围（跨公司/跨门店）
	ErrForbidden = errors.New("access denied: outside tenant scope")
)
