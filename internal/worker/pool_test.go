package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type jobFunc func(ctx context.Context) error

func (f jobFunc) Process(ctx context.Context) error { return f(ctx) }

func countingJob(n *atomic.Int32, err error) Job {
	return jobFunc(func(context.Context) error {
		n.Add(1)
		return err
	})
}

func stopPool(t *testing.T, p *Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))
}

func TestPool_RunsQueuedJobs(t *testing.T) {
	var ran atomic.Int32
	pool := NewPool(2, 10)
	pool.Start()
	defer stopPool(t, pool)

	for range 5 {
		require.True(t, pool.TryEnqueue(countingJob(&ran, nil)))
	}

	assert.Eventually(t, func() bool { return ran.Load() == 5 }, time.Second, time.Millisecond)
}

func TestPool_FailingJobKeepsWorkerAlive(t *testing.T) {
	var ran atomic.Int32
	pool := NewPool(1, 10)
	pool.Start()
	defer stopPool(t, pool)

	require.True(t, pool.TryEnqueue(countingJob(&ran, errors.New("boom"))))
	require.True(t, pool.TryEnqueue(countingJob(&ran, nil)))

	assert.Eventually(t, func() bool { return ran.Load() == 2 }, time.Second, time.Millisecond)
}

func TestPool_RejectsAfterStop(t *testing.T) {
	var ran atomic.Int32
	pool := NewPool(1, 1)
	pool.Start()
	stopPool(t, pool)
	stopPool(t, pool)

	assert.False(t, pool.TryEnqueue(countingJob(&ran, nil)))
	assert.Zero(t, ran.Load())
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	var ran atomic.Int32
	// not started, so nothing drains the queue
	pool := NewPool(1, 1)
	defer stopPool(t, pool)

	assert.True(t, pool.TryEnqueue(countingJob(&ran, nil)))
	assert.False(t, pool.TryEnqueue(countingJob(&ran, nil)))
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	var jobErr error
	require.True(t, pool.TryEnqueue(jobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		jobErr = ctx.Err()
		return jobErr
	})))
	<-started

	stopPool(t, pool)
	assert.ErrorIs(t, jobErr, context.Canceled)
}

func TestPool_StopGivesUpAtDeadline(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started, release := make(chan struct{}), make(chan struct{})
	require.True(t, pool.TryEnqueue(jobFunc(func(context.Context) error {
		close(started)
		<-release
		return nil
	})))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	begin := time.Now()
	err := pool.Stop(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(begin), time.Second)

	close(release)
	stopPool(t, pool)
}

func TestNewPool_AtLeastOneWorker(t *testing.T) {
	pool := NewPool(0, 1)
	defer stopPool(t, pool)

	assert.Equal(t, 1, pool.size)
}
