package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the base attributes of the process logger
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

var levels = map[string]slog.Level{
	LevelDebug:   slog.LevelDebug,
	LevelInfo:    slog.LevelInfo,
	LevelWarn:    slog.LevelWarn,
	LevelWarning: slog.LevelWarn,
	LevelError:   slog.LevelError,
}

// SlogLevel maps Level to a slog level, falling back to info
func (c Config) SlogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(c.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

func (c Config) attrs() []slog.Attr {
	out := make([]slog.Attr, 0, 3)
	for _, a := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if a[1] != "" {
			out = append(out, slog.String(a[0], a[1]))
		}
	}
	return out
}
