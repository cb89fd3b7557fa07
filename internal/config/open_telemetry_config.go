package config

import "time"

// OpenTelemetryConfig 存储OpenTelemetry相关配置
type OpenTelemetryConfig struct {
	Enable   bool    `yaml:"enable"`                                                 // 是否启用
	Service  string  `yaml:"service" validate:"required_if=Enable true"`             // 服务名称
	Endpoint string  `yaml:"endpoint" validate:"required_if=Enable true"`            // 上报地址
	Protocol string  `yaml:"protocol" validate:"omitempty,oneof=grpc http/protobuf"` // 上报协议
	Sampling float64 `yaml:"sampling" validate:"gte=0,lte=1"`                        // 采样率（0.0-1.0）
	Timeout  int     `yaml:"timeout" validate:"gte=0"`                               // 超时时间（秒）
}

// 默认OpenTelemetry配置
func NewOpenTelemetryConfig() OpenTelemetryConfig {
	return OpenTelemetryConfig{
		Enable:   false,            // 默认不启用
		Service:  "adminctl",       // 默认服务名
		Endpoint: "localhost:4317", // 默认上报地址
		Protocol: "grpc",           // 默认上报协议
		Sampling: 1,                // 客户端请求量小，默认全采样
		Timeout:  3,                // 默认超时3秒
	}
}

func (c OpenTelemetryConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
