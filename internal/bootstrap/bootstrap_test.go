package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/config"
	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	bot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"namaste"}`))
	}))
	t.Cleanup(bot.Close)

	return &config.Config{
		Port:                0,
		APIKey:              "test-key",
		LogLevel:            "info",
		LogFormat:           "text",
		Environment:         "test",
		StorageBackend:      config.StorageMemory,
		ChatEndpoint:        bot.URL,
		ChatTimeout:         time.Second,
		ChatLanguage:        config.DefaultChatLanguage,
		GrowthDelay:         10 * time.Millisecond,
		WeatherInterval:     10 * time.Millisecond,
		SessionCacheSize:    16,
		SessionTTL:          time.Minute,
		TaskCataloguePath:   config.ConfigPathTaskCatalogue,
		MarketCataloguePath: config.ConfigPathMarketCatalogue,
	}
}

func shutdown(t *testing.T, app *App) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	app.Shutdown(ctx)
}

func TestBuild_MemoryBackend(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	app, err := Build(ctx, cfg, afero.NewMemMapFs())
	require.NoError(t, err)
	defer shutdown(t, app)

	assert.NotNil(t, app.Server)
	assert.NotNil(t, app.Services.SSEHub)
	assert.Empty(t, app.Services.Readiness, "memory backend has nothing to ping")

	field, err := app.Services.Farm.ScanField(ctx, domain.ScanRequest{PlayerID: "p1", Width: 2, Height: 2, MoistureLevel: 50})
	require.NoError(t, err)
	assert.Len(t, field.Tiles, 4)

	tasks, err := app.Services.Tasks.ListTasks(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, tasks, 4, "default catalogue seeds four tasks")

	msgs, err := app.Services.Chat.Send(ctx, "p1", "hello")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "namaste", msgs[1].Text)

	assert.NotEmpty(t, app.Services.Market.Categories(ctx))
	assert.NotEmpty(t, app.Services.Weather.Current(ctx).Effect)
}

func TestBuild_ShutdownIsSafeToRepeat(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t), afero.NewMemMapFs())
	require.NoError(t, err)

	shutdown(t, app)
	assert.NotPanics(t, func() { shutdown(t, app) })
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *config.Config, fsys afero.Fs)
		errContains string
	}{
		{
			name:        "unknown storage backend",
			mutate:      func(cfg *config.Config, _ afero.Fs) { cfg.StorageBackend = "redis" },
			errContains: ErrMsgUnknownStoreBackend,
		},
		{
			name: "malformed task catalogue",
			mutate: func(cfg *config.Config, fsys afero.Fs) {
				_ = afero.WriteFile(fsys, cfg.TaskCataloguePath, []byte("tasks: [oops"), 0644)
			},
			errContains: ErrMsgFailedLoadTasks,
		},
		{
			name: "malformed market catalogue",
			mutate: func(cfg *config.Config, fsys afero.Fs) {
				_ = afero.WriteFile(fsys, cfg.MarketCataloguePath, []byte("prices: {"), 0644)
			},
			errContains: ErrMsgFailedLoadMarket,
		},
		{
			name:        "bad chat language",
			mutate:      func(cfg *config.Config, _ afero.Fs) { cfg.ChatLanguage = "not a tag!" },
			errContains: ErrMsgFailedCreateChatClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			fsys := afero.NewMemMapFs()
			tt.mutate(cfg, fsys)

			app, err := Build(context.Background(), cfg, fsys)

			require.Error(t, err)
			assert.Nil(t, app)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadCatalogues_FromFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig(t)
	require.NoError(t, afero.WriteFile(fsys, cfg.TaskCataloguePath, []byte(`
tasks:
  - title: Plough once
    description: Turn the soil
    type: plough
    points: 5
`), 0644))

	cat, err := LoadCatalogues(fsys, cfg)

	require.NoError(t, err)
	require.Len(t, cat.Tasks.Tasks, 1)
	assert.Equal(t, "Plough once", cat.Tasks.Tasks[0].Title)
	assert.NotEmpty(t, cat.Market.Prices, "missing market file uses defaults")
}

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer

	closer, err := SetupLogger(afero.NewMemMapFs(), &buf, testConfig(t))

	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.Contains(t, buf.String(), LogMsgLoggerReady)
	assert.Contains(t, buf.String(), LogMsgStartingKrishiQuest)
}

func TestSetupLogger_SessionFileAndRetention(t *testing.T) {
	restoreDefaultLogger(t)
	fsys := afero.NewMemMapFs()
	cfg := testConfig(t)
	cfg.LogDir = "logs"

	require.NoError(t, fsys.MkdirAll("logs", LogDirPerm))
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("logs/session_2020-01-%02d_00-00-00.log", i+1)
		require.NoError(t, afero.WriteFile(fsys, name, []byte("old"), LogFilePerm))
	}
	require.NoError(t, afero.WriteFile(fsys, "logs/keep.txt", []byte("x"), LogFilePerm))

	var buf bytes.Buffer
	closer, err := SetupLogger(fsys, &buf, cfg)
	require.NoError(t, err)
	defer closer.Close()

	entries, err := afero.ReadDir(fsys, "logs")
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), SessionLogSuffix) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, SessionLogsKept+1)
	assert.NotContains(t, logs, "session_2020-01-01_00-00-00.log")
	assert.Contains(t, logs, "session_2020-01-12_00-00-00.log")

	exists, err := afero.Exists(fsys, "logs/keep.txt")
	require.NoError(t, err)
	assert.True(t, exists, "non-log files are left alone")
}

func TestGracefulShutdown_EmptyComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
