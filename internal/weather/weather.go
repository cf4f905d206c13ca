// Package weather runs the cosmetic weather cycle shown over the farm.
// The effect never changes gameplay.
package weather

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// Service exposes the current weather
type Service interface {
	Current(ctx context.Context) domain.WeatherState
}

// Cycle holds the current effect and picks a new one each time it is processed.
// It implements worker.Job so the scheduler can run it on an interval.
type Cycle struct {
	mu    sync.RWMutex
	state domain.WeatherState
	bus   event.Bus
	pick  func(n int) int
	title cases.Caser
}

// Option customises a Cycle
type Option func(*Cycle)

// WithPicker replaces the uniform random choice, for tests
func WithPicker(pick func(n int) int) Option {
	return func(c *Cycle) { c.pick = pick }
}

// NewCycle creates a cycle that starts sunny
func NewCycle(bus event.Bus, opts ...Option) *Cycle {
	c := &Cycle{
		bus:   bus,
		pick:  rand.IntN,
		title: cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = c.stateFor(domain.WeatherSunny)
	return c
}

func (c *Cycle) stateFor(effect domain.WeatherEffect) domain.WeatherState {
	return domain.WeatherState{
		Effect:    effect,
		Label:     c.title.String(string(effect)),
		ChangedAt: time.Now().UTC(),
	}
}

// Current returns the effect currently shown
func (c *Cycle) Current(_ context.Context) domain.WeatherState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Process picks the next effect uniformly and publishes it
func (c *Cycle) Process(ctx context.Context) error {
	effect := domain.WeatherEffects[c.pick(len(domain.WeatherEffects))]

	c.mu.Lock()
	c.state = c.stateFor(effect)
	c.mu.Unlock()

	event.PublishBestEffort(ctx, c.bus, event.NewWeatherChangedEvent(effect))
	logger.FromContext(ctx).Debug(LogMsgWeatherChanged, "effect", effect)
	return nil
}

// LogMsgWeatherChanged is logged on every cycle tick
const LogMsgWeatherChanged = "Weather changed"
