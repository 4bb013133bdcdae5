package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service logger from config. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.Encoding == "console" && cfg.ColorEnabled {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sugar: l.Sugar()}
}

// with attaches the request ID from ctx when the middleware has set one.
func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if reqID := RequestIDFromContext(ctx); reqID != "" {
		return z.sugar.With("request_id", reqID)
	}
	return z.sugar
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any) { z.with(ctx).Debug(arg...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Debugf(template, arg...)
}
func (z *zapLogger) Info(ctx context.Context, arg ...any) { z.with(ctx).Info(arg...) }
func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Infof(template, arg...)
}
func (z *zapLogger) Warn(ctx context.Context, arg ...any) { z.with(ctx).Warn(arg...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Warnf(template, arg...)
}
func (z *zapLogger) Error(ctx context.Context, arg ...any) { z.with(ctx).Error(arg...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Errorf(template, arg...)
}
func (z *zapLogger) Fatal(ctx context.Context, arg ...any) { z.with(ctx).Fatal(arg...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Fatalf(template, arg...)
}
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.with(ctx).DPanic(arg...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).DPanicf(template, arg...)
}
func (z *zapLogger) Panic(ctx context.Context, arg ...any) { z.with(ctx).Panic(arg...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Panicf(template, arg...)
}
