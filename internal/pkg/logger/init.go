package logger

import (
	"BlogAdmin/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"strings"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 以 JSON 格式输出到 stdout, 并注入 trace_id
func InitLogger(cfg config.LoggerConfig) {
	handler := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: ParseLevel(cfg.Level)})
	log.SetDefault(log.New(&ContextHandler{handler}))
}

func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
