// File: internal/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	LogLevel string         `yaml:"log_level"`
}

// ServerConfig HTTP 监听配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig 登录校验与令牌配置
// JWTSecret 为空时签发固定令牌 StaticToken
type AuthConfig struct {
	Username    string        `yaml:"username"`
	Password    string        `yaml:"password"`
	DisplayName string        `yaml:"display_name"`
	StaticToken string        `yaml:"static_token"`
	JWTSecret   string        `yaml:"jwt_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
}

// DatabaseConfig URL 为空时不连接数据库，改用静态账号校验
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// RedisConfig Addr 为空时不连接 Redis
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Auth: AuthConfig{
			Username:    "admin",
			Password:    "123456",
			DisplayName: "管理员",
			StaticToken: "fake-jwt-token-zhangwu-2025",
			TokenTTL:    24 * time.Hour,
		},
		LogLevel: "info",
	}
}

// Load 依次应用默认值、YAML 文件（可不存在）与环境变量
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr 返回 host:port
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func applyEnvOverrides(cfg *Config) error {
	setString(&cfg.Server.Host, "HTTP_HOST")
	if err := setInt(&cfg.Server.Port, "HTTP_PORT"); err != nil {
		return err
	}

	setString(&cfg.Auth.Username, "AUTH_USERNAME")
	setString(&cfg.Auth.Password, "AUTH_PASSWORD")
	setString(&cfg.Auth.DisplayName, "AUTH_DISPLAY_NAME")
	setString(&cfg.Auth.StaticToken, "AUTH_STATIC_TOKEN")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("无效的 AUTH_TOKEN_TTL: %q", v)
		}
		cfg.Auth.TokenTTL = d
	}

	setString(&cfg.Database.URL, "DATABASE_URL")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if err := setInt(&cfg.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}

	setString(&cfg.LogLevel, "LOG_LEVEL")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("无效的 %s: %v", key, err)
	}
	*dst = n
	return nil
}
