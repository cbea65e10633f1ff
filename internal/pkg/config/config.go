package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 全局配置
// 启动时加载一次, 之后只读, 以依赖注入方式传递
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Retention RetentionConfig `mapstructure:"retention"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	LogLevel        string `mapstructure:"log_level"`         // SQL日志级别: silent/error/warn/info
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWT     JWTConfig     `mapstructure:"jwt"`
	Session SessionConfig `mapstructure:"session"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	AccessTokenExpire int    `mapstructure:"access_token_expire"` // 秒
}

// SessionConfig 浏览器Cookie会话配置
type SessionConfig struct {
	Secret string `mapstructure:"secret"`
	MaxAge int    `mapstructure:"max_age"` // 秒
	Secure bool   `mapstructure:"secure"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// RateLimitConfig 限流配置, 固定窗口按调用方IP计数
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	WindowSeconds int  `mapstructure:"window_seconds"`
	MaxRequests   int  `mapstructure:"max_requests"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RetentionConfig 活动日志保留配置
type RetentionConfig struct {
	Cron            string `mapstructure:"cron"`              // 清理任务cron表达式(秒级)
	ActivityLogDays int    `mapstructure:"activity_log_days"` // 保留天数, 0表示不清理
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// 读取环境变量
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	applyDefaults(config)

	return config, nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Auth.JWT.AccessTokenExpire == 0 {
		c.Auth.JWT.AccessTokenExpire = 8 * 3600
	}
	if c.Auth.Session.MaxAge == 0 {
		c.Auth.Session.MaxAge = 8 * 3600
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 15 * 60
	}
	if c.RateLimit.MaxRequests == 0 {
		c.RateLimit.MaxRequests = 100
	}
}

// GetDSN 获取数据库DSN
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
