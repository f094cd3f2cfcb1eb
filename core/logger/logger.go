package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Until Init runs, warnings and errors go to stderr so failures during
// startup (bad config, unreachable store) are still reported.
var (
	mu    sync.RWMutex
	sugar = newFallback(zapcore.Lock(os.Stderr))
)

func newFallback(ws zapcore.WriteSyncer) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), ws, zapcore.WarnLevel)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Init builds the global logger. mode "prod"/"production" gives JSON output,
// anything else gives the development console encoder.
func Init(mode string) error {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	Replace(l)
	return nil
}

// Replace swaps the global logger. l must already carry AddCallerSkip(1)
// if caller annotations matter.
func Replace(l *zap.Logger) {
	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

// Sync flushes buffered entries.
func Sync() {
	_ = current().Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(msg string, keysAndValues ...any) {
	current().Debugw(msg, normalize(keysAndValues)...)
}

func Info(msg string, keysAndValues ...any) {
	current().Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	current().Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	current().Errorw(msg, normalize(keysAndValues)...)
}

// normalize lets callers pass a bare error as the only argument,
// e.g. logger.Error("Repo:Get", err).
func normalize(kv []any) []any {
	if len(kv)%2 == 0 {
		return kv
	}
	if len(kv) == 1 {
		if err, ok := kv[0].(error); ok {
			return []any{"error", err}
		}
		return []any{"detail", kv[0]}
	}
	return append(kv[:len(kv)-1:len(kv)-1], "detail", kv[len(kv)-1])
}
