package env

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLogLevel accepts debug, info, warn or error in any case.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func LogLevel(key, def string) (slog.Level, error) {
	level, err := ParseLogLevel(String(key, def))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}
