package logger

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日志配置
type Config struct {
	LogFile    string // 日志文件路径，为空时只输出到控制台
	Level      string // debug/info/warn/error
	MaxSize    int    // 单个文件最大尺寸（MB）
	MaxBackups int    // 最多保留的旧文件个数
	MaxAge     int    // 旧文件最多保留天数
	Compress   bool   // 是否压缩旧文件
	Console    bool   // 是否同时输出到控制台
}

type ctxFieldsKey struct{}

// 未初始化时使用 Nop，作为库被嵌入时保持静默
var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// InitLogger 按配置初始化全局日志
func InitLogger(cfg Config) {
	level := parseLevel(cfg.Level)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if cfg.LogFile != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(writer), level))
	}
	if cfg.Console || cfg.LogFile == "" {
		consoleCfg := encoderCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	current.Store(l)
}

// SetLogger 替换全局日志实例，测试中常用
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// L 返回全局日志实例
func L() *zap.Logger {
	return current.Load()
}

// Sync 刷新缓冲区
func Sync() error {
	return current.Load().Sync()
}

// WithContext 将日志字段附加到 context 中，后续日志会自动携带
func WithContext(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	existing := fieldsFrom(ctx)
	merged := make([]zap.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func fieldsFrom(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(ctxFieldsKey{}).([]zap.Field); ok {
		return fields
	}
	return nil
}

func withCtx(ctx context.Context, fields []zap.Field) []zap.Field {
	ctxFields := fieldsFrom(ctx)
	if len(ctxFields) == 0 {
		return fields
	}
	return append(append(make([]zap.Field, 0, len(ctxFields)+len(fields)), ctxFields...), fields...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	current.Load().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	current.Load().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	current.Load().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	current.Load().Error(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	current.Load().Debug(fmt.Sprintf(format, args...), fieldsFrom(ctx)...)
}

func Infof(ctx context.Context, format string, args ...any) {
	current.Load().Info(fmt.Sprintf(format, args...), fieldsFrom(ctx)...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	current.Load().Warn(fmt.Sprintf(format, args...), fieldsFrom(ctx)...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	current.Load().Error(fmt.Sprintf(format, args...), fieldsFrom(ctx)...)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
