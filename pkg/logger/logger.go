package logger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once
	atom = zap.NewAtomicLevel()
)

var buildLogger = func(cfg zap.Config) (*zap.Logger, error) {
	return cfg.Build(zap.AddCallerSkip(1))
}

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	SubjectKey   ContextKey = "subject"
)

// Init builds the process logger once. Development gets a colored console
// encoder at debug level, everything else JSON at info.
func Init(env string) {
	once.Do(func() {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		if env == "development" {
			config = zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		atom.SetLevel(config.Level.Level())
		config.Level = atom

		var err error
		log, err = buildLogger(config)
		if err != nil {
			panic(err)
		}
	})
}

// SetLevel changes the minimum level at runtime ("debug", "info", "warn", "error").
func SetLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	atom.SetLevel(l)
	return nil
}

// GetLogger returns the underlying zap logger. A no-op logger is returned
// when Init has not been called so packages can log from tests.
func GetLogger() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// WithSubject records the authenticated identity on ctx so later log lines carry it.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

// WithContext returns the logger annotated with the request id and subject found on ctx.
func WithContext(ctx context.Context) *zap.Logger {
	base := GetLogger()
	if ctx == nil {
		return base
	}

	fields := make([]zap.Field, 0, 2)
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	} else if reqID, ok := ctx.Value("request_id").(string); ok && reqID != "" {
		// gin.Context stores it under the plain string key
		fields = append(fields, zap.String("request_id", reqID))
	}
	if sub, ok := ctx.Value(SubjectKey).(string); ok && sub != "" {
		fields = append(fields, zap.String("subject", sub))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Info(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Debug(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Warn(msg, fields...)
}

// RequestLog describes one served HTTP request.
type RequestLog struct {
	Method   string
	Path     string
	Route    string
	Status   int
	Latency  time.Duration
	ClientIP string
	Bytes    int
}

// LogRequest writes r at warn for 4xx, error for 5xx and info otherwise.
func LogRequest(ctx context.Context, r RequestLog) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.Path),
		zap.Int("status", r.Status),
		zap.Duration("latency", r.Latency),
		zap.String("client_ip", r.ClientIP),
		zap.Int("bytes", r.Bytes),
	}
	if r.Route != "" {
		fields = append(fields, zap.String("route", r.Route))
	}

	l := WithContext(ctx)
	switch {
	case r.Status >= 500:
		l.Error("HTTP request", fields...)
	case r.Status >= 400:
		l.Warn("HTTP request", fields...)
	default:
		l.Info("HTTP request", fields...)
	}
}
