// Package dbtest starts a throwaway postgres container for integration tests.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	Image          = "postgres:15-alpine"
	StartupTimeout = 30 * time.Second

	// SkipEnv disables container startup when set to any value
	SkipEnv = "SKIP_INTEGRATION"
)

// Container is a running postgres instance
type Container struct {
	DSN       string
	container *postgres.PostgresContainer
}

// Start runs a postgres container. It returns (nil, nil) when SkipEnv is set,
// and an error when docker is unreachable.
func Start(ctx context.Context) (c *Container, err error) {
	if os.Getenv(SkipEnv) != "" {
		return nil, nil
	}

	// testcontainers panics instead of erroring when no docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("start postgres container: %v", r)
		}
	}()

	pg, err := postgres.Run(ctx, Image,
		postgres.WithDatabase("krishiquest_test"),
		postgres.WithUsername("krishi"),
		postgres.WithPassword("krishi"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(StartupTimeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}
	return &Container{DSN: dsn, container: pg}, nil
}

// Stop terminates the container. Safe on a nil Container.
func (c *Container) Stop(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.container.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "terminate postgres container: %v\n", err)
	}
}
