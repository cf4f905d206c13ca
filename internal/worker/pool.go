package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Job is a unit of work run by a Pool
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines. Jobs receive a
// context that is cancelled by Stop.
type Pool struct {
	size  int
	queue chan Job

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	once    sync.Once
	stopped chan struct{}
}

// NewPool creates a pool of at least one worker with a queue of queueSize
func NewPool(workers, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		size:    max(workers, 1),
		queue:   make(chan Job, queueSize),
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start launches the workers
func (p *Pool) Start() {
	p.wg.Add(p.size)
	for range p.size {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job := <-p.queue:
			if err := job.Process(p.ctx); err != nil {
				slog.Error(LogMsgWorkerJobFailed, "error", err)
			}
		}
	}
}

// TryEnqueue queues job only if there is room right now
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.queue <- job:
		return true
	default:
		slog.Warn(LogMsgWorkerQueueFull, "queued", len(p.queue))
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit, or for ctx.
// Jobs still queued are dropped. Later calls only wait.
func (p *Pool) Stop(ctx context.Context) error {
	p.once.Do(func() {
		p.cancel()
		go func() {
			p.wg.Wait()
			close(p.stopped)
		}()
	})
	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
