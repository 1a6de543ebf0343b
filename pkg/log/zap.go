package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	fieldRequestID = "request_id"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger backed by zap.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "time"

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		if cfg.ColorEnabled {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With(fieldRequestID, id)
	}
	return l.sugar
}

// Info/Warn/... accept either plain args or a message followed by key/value pairs.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) { logw(l.with(ctx).Debugw, l.with(ctx).Debug, arg) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)  { logw(l.with(ctx).Infow, l.with(ctx).Info, arg) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)  { logw(l.with(ctx).Warnw, l.with(ctx).Warn, arg) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { logw(l.with(ctx).Errorw, l.with(ctx).Error, arg) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	logw(l.with(ctx).DPanicw, l.with(ctx).DPanic, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { logw(l.with(ctx).Panicw, l.with(ctx).Panic, arg) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { logw(l.with(ctx).Fatalw, l.with(ctx).Fatal, arg) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// logw routes `msg, k1, v1, k2, v2...` calls to the structured variant.
func logw(structured func(string, ...any), plain func(...any), arg []any) {
	if len(arg) > 1 && len(arg)%2 == 1 {
		if msg, ok := arg[0].(string); ok {
			structured(msg, arg[1:]...)
			return
		}
	}
	plain(arg...)
}
