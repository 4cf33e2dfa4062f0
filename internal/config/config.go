package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	AI        AIConfig
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Log       LogConfig       `mapstructure:"log"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	FrontendURL    string   `mapstructure:"frontend_url"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// AIConfig OpenAI 兼容的 chat completion 服务
type AIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Configured 是否配置了 API Key
func (c AIConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type ServerConfig struct {
	Port string
	Mode string
}

// DatabaseConfig Driver 取 postgres、mysql 或 sqlite，URL 原样作为 DSN
type DatabaseConfig struct {
	Driver      string `mapstructure:"driver"`
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	LogLevel    string `mapstructure:"log_level"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	Exporter          string `mapstructure:"exporter"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
	ServiceName       string `mapstructure:"service_name"`
}

type AnalyticsConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location 统计按天分桶使用的时区，无效时回退到 UTC
func (c AnalyticsConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// AllowedOrigins 合并白名单与 FRONTEND_URL，去掉末尾的 /
func (c *Config) AllowedOrigins() []string {
	seen := make(map[string]bool)
	var origins []string
	for _, o := range append(append([]string{}, c.CORS.AllowedOrigins...), c.CORS.FrontendURL) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3001")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("jwt.ttl", "720h")

	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.model", "gpt-3.5-turbo")
	v.SetDefault("ai.timeout", "60s")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("rate_limit.max_requests", 100)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("tracing.exporter", "jaeger")
	v.SetDefault("tracing.service_name", "study-buddy")

	v.SetDefault("analytics.timezone", "UTC")

	v.SetDefault("log.file", "logs/app.log")
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("STUDY_BUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Database
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("database.driver", "DATABASE_DRIVER")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// AI
	v.BindEnv("ai.api_key", "OPENAI_API_KEY")
	v.BindEnv("ai.base_url", "OPENAI_BASE_URL")
	v.BindEnv("ai.model", "OPENAI_MODEL")
	v.BindEnv("ai.timeout", "OPENAI_TIMEOUT")

	// CORS
	v.BindEnv("cors.frontend_url", "FRONTEND_URL")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.exporter", "TRACING_EXPORTER")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT secret is required (set JWT_SECRET)")
	}
	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be positive, got %s", c.JWT.TTL)
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return errors.New("rate_limit.max_requests and rate_limit.window_minutes must be positive")
	}
	return nil
}
