package config

import (
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config 结构体用于存储所有配置
type Config struct {
	Client        ClientConfig        `yaml:"client"`
	Auth          AuthConfig          `yaml:"auth"`
	Logger        LoggerConfig        `yaml:"logger"`
	OpenTelemetry OpenTelemetryConfig `yaml:"opentelemetry"`
}

// ClientConfig 后端 API 访问配置
type ClientConfig struct {
	BaseURL string            `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration     `yaml:"timeout" validate:"gte=0"`
	Retries int               `yaml:"retries" validate:"gte=0,lte=10"`
	Backoff time.Duration     `yaml:"backoff" validate:"gte=0"`
	Headers map[string]string `yaml:"headers"`
}

// NewClientConfig 创建一个带有默认值的 ClientConfig
func NewClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: "http://localhost:8080/api",
		Timeout: 10 * time.Second,
		Retries: 2,
		Backoff: 200 * time.Millisecond,
	}
}

// AuthConfig 登录凭证，token 非空时跳过登录直接使用
type AuthConfig struct {
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password" validate:"required_with=Username"`
	Token      string        `yaml:"token"`
	ExpirySkew time.Duration `yaml:"expiry_skew" validate:"gte=0"`
}

// LoggerConfig 存储日志相关配置
type LoggerConfig struct {
	LogFile    string `yaml:"log_file"`
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	MaxSize    int    `yaml:"max_size" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge     int    `yaml:"max_age" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

func NewLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      "info",
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

// New 返回仅包含默认值的配置
func New() *Config {
	return &Config{
		Client:        NewClientConfig(),
		Auth:          AuthConfig{ExpirySkew: 30 * time.Second},
		Logger:        NewLoggerConfig(),
		OpenTelemetry: NewOpenTelemetryConfig(),
	}
}

var (
	config *Config
	once   sync.Once
)

// Override 在环境变量之后、校验之前修改配置，用于命令行参数
type Override func(*Config)

// WithBaseURL 覆盖后端地址，空值忽略
func WithBaseURL(baseURL string) Override {
	return func(c *Config) {
		if baseURL != "" {
			c.Client.BaseURL = baseURL
		}
	}
}

// WithToken 覆盖访问令牌，空值忽略
func WithToken(token string) Override {
	return func(c *Config) {
		if token != "" {
			c.Auth.Token = token
		}
	}
}

// Load 加载并解析 YAML 配置文件，只会执行一次
func Load(filename string, overrides ...Override) (*Config, error) {
	var err error
	once.Do(func() {
		config, err = Parse(filename, overrides...)
	})
	return config, err
}

// Parse 读取配置文件，依次应用默认值、环境变量、覆盖项后校验
func Parse(filename string, overrides ...Override) (*Config, error) {
	cfg := New()
	if err := loadFile(filename, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv 优先使用环境变量的值
func (c *Config) applyEnv() {
	if baseURL := os.Getenv("ADMIN_API_BASE_URL"); baseURL != "" {
		c.Client.BaseURL = baseURL
	}
	if token := os.Getenv("ADMIN_API_TOKEN"); token != "" {
		c.Auth.Token = token
	}
	if instanceID := os.Getenv("INSTANCE_ID"); instanceID != "" {
		c.OpenTelemetry.Service = instanceID
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		c.OpenTelemetry.Endpoint = endpoint
	}
	if protocol := os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"); protocol != "" {
		c.OpenTelemetry.Protocol = protocol
	}
}

// loadFile 读取并解析 YAML 文件
func loadFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read config %s", filename)
	}
	return errors.Wrapf(yaml.Unmarshal(data, cfg), "parse config %s", filename)
}

// Get 返回已加载的配置
func Get() *Config {
	return config
}
