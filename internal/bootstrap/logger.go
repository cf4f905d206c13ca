package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/krishiquest/KrishiQuest_Go/internal/config"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// SetupLogger installs the process logger from config. With LogDir set it
// also writes to a timestamped session file in that directory, pruning older
// session files. The returned closer must be closed on exit.
func SetupLogger(fsys afero.Fs, stdout io.Writer, cfg *config.Config) (io.Closer, error) {
	logCfg := logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.IsDevelopment(),
	}

	var closer io.Closer = nopCloser{}
	out := stdout

	if cfg.LogDir != "" {
		if err := fsys.MkdirAll(cfg.LogDir, LogDirPerm); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgCreateLogDir, err)
		}

		cleanupLogs(fsys, cfg.LogDir, SessionLogsKept)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(SessionLogPattern, time.Now().Format(SessionLogTimeLayout)))
		logFile, err := fsys.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePerm)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenSessionLog, err)
		}
		closer = logFile
		out = io.MultiWriter(stdout, logFile)
	}

	logger.Init(logCfg, out)

	slog.Info(LogMsgLoggerReady, "level", logCfg.SlogLevel())
	slog.Info(LogMsgStartingKrishiQuest,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgEffectiveConfig,
		"storage_backend", cfg.StorageBackend,
		"port", cfg.Port,
		"growth_delay", cfg.GrowthDelay,
		"weather_interval", cfg.WeatherInterval,
		"chat_endpoint", cfg.ChatEndpoint)

	return closer, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session names embed a sortable timestamp.
func cleanupLogs(fsys afero.Fs, logDir string, keep int) {
	entries, err := afero.ReadDir(fsys, logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), SessionLogSuffix) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := fsys.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
