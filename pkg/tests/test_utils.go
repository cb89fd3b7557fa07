package tests

import (
	"fmt"
	"sync"

	"github.com/ayxworxfr/go_admin_client/internal/config"
	"github.com/ayxworxfr/go_admin_client/pkg/logger"
	"github.com/ayxworxfr/go_admin_client/pkg/utils"
)

var (
	once sync.Once
	cfg  *config.Config
)

// Setup 加载测试配置并初始化日志，多次调用只生效一次
func Setup() *config.Config {
	once.Do(func() {
		cfg = InitConfig()
		InitLogger(cfg.Logger)
	})
	return cfg
}

func InitConfig() *config.Config {
	configPath := utils.GetAbsPath("conf/config_test.yaml")
	c, err := config.Parse(configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	return c
}

func InitLogger(cfg config.LoggerConfig) {
	logger.InitLogger(logger.Config{
		LogFile:    cfg.LogFile,
		Level:      cfg.Level,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		Console:    cfg.Console,
	})
}
