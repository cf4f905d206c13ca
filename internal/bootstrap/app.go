// Package bootstrap wires configuration, storage and services into a runnable application.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/krishiquest/KrishiQuest_Go/internal/chat"
	"github.com/krishiquest/KrishiQuest_Go/internal/config"
	"github.com/krishiquest/KrishiQuest_Go/internal/farm"
	"github.com/krishiquest/KrishiQuest_Go/internal/handler"
	"github.com/krishiquest/KrishiQuest_Go/internal/market"
	"github.com/krishiquest/KrishiQuest_Go/internal/scheduler"
	"github.com/krishiquest/KrishiQuest_Go/internal/server"
	"github.com/krishiquest/KrishiQuest_Go/internal/sse"
	"github.com/krishiquest/KrishiQuest_Go/internal/task"
	"github.com/krishiquest/KrishiQuest_Go/internal/weather"
	"github.com/krishiquest/KrishiQuest_Go/internal/worker"
)

// App is a fully wired application. Background workers are already running;
// call Server.Start to serve and Shutdown to stop everything.
type App struct {
	Server     *server.Server
	Services   server.Services
	components ShutdownComponents
}

// Shutdown stops every component in order
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, a.components)
}

// Build creates repositories, services and workers from config and starts
// the background loops. Catalogues are read from fsys.
func Build(ctx context.Context, cfg *config.Config, fsys afero.Fs, chatOpts ...chat.Option) (*App, error) {
	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	components := ShutdownComponents{}
	if repos.DB != nil {
		components.DB = repos.DB
	}

	catalogues, err := LoadCatalogues(fsys, cfg)
	if err != nil {
		GracefulShutdown(ctx, components)
		return nil, err
	}

	chatClient, err := chat.NewClient(chat.Config{
		Endpoint:    cfg.ChatEndpoint,
		Timeout:     cfg.ChatTimeout,
		Language:    cfg.ChatLanguage,
		HistorySize: cfg.SessionCacheSize,
		HistoryTTL:  cfg.SessionTTL,
	}, chatOpts...)
	if err != nil {
		GracefulShutdown(ctx, components)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateChatClient, err)
	}

	bus := InitializeEventSystem()

	hub := sse.NewHub()
	hub.Start()
	components.SSEHub = hub

	RegisterEventHandlers(ctx, EventHandlerDependencies{EventBus: bus, SSEHub: hub})

	taskSvc := task.NewService(repos.Tasks, catalogues.Tasks, bus)

	growth := worker.NewGrowthWorker()
	farmSvc := farm.NewService(repos.Fields, taskSvc, growth, bus, farm.Options{
		GrowthDelay:      cfg.GrowthDelay,
		SessionCacheSize: cfg.SessionCacheSize,
		SessionTTL:       cfg.SessionTTL,
	})
	growth.Start(farmSvc)
	components.GrowthWorker = growth

	cycle := weather.NewCycle(bus)
	pool := worker.NewPool(WeatherPoolWorkers, WeatherPoolQueueSize)
	pool.Start()
	components.WorkerPool = pool

	sched := scheduler.New(pool)
	sched.Schedule(JobNameWeather, cfg.WeatherInterval, cycle)
	components.Scheduler = sched

	services := server.Services{
		Farm:    farmSvc,
		Tasks:   taskSvc,
		Weather: cycle,
		Chat:    chatClient,
		Market:  market.NewService(catalogues.Market),
		SSEHub:  hub,
	}
	if repos.DB != nil {
		services.Readiness = []handler.Pinger{repos.DB}
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, services)
	components.Server = srv

	return &App{Server: srv, Services: services, components: components}, nil
}
