package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ==================== 配置定义 ====================

// Config 进程级配置，启动时加载一次
type Config struct {
	AppEnv      string // development / production / test
	ServerPort  string
	FrontendURL string // CORS 允许的前端来源

	JWTSecret    string
	JWTExpiresIn time.Duration
	BcryptRounds int

	DB DBConfig
}

// DBConfig 数据库连接配置
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN 拼接 Postgres 连接串
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// IsDevelopment 是否开发环境（影响错误详情是否下发）
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// ==================== 加载 ====================

// Load 读取 .env + 环境变量，返回完整配置
// .env 不存在时不报错，仅依赖环境变量（容器部署场景）
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_PORT", "3001")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("JWT_EXPIRES_HOURS", 24)
	v.SetDefault("BCRYPT_ROUNDS", 10)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "dobby_cafe")
	v.SetDefault("DB_SSLMODE", "disable")

	cfg := &Config{
		AppEnv:       v.GetString("APP_ENV"),
		ServerPort:   v.GetString("SERVER_PORT"),
		FrontendURL:  v.GetString("FRONTEND_URL"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTExpiresIn: time.Duration(v.GetInt("JWT_EXPIRES_HOURS")) * time.Hour,
		BcryptRounds: v.GetInt("BCRYPT_ROUNDS"),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
	}

	// 签名密钥必须显式配置，轮换密钥会使所有已签发 Token 失效
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}
