package logger

import (
	"go.uber.org/zap"
)

// New 创建进程级 zap Logger
// 开发环境输出彩色可读日志，生产环境输出 JSON
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
