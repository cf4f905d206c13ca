package worker

import (
	"sync"
	"time"
)

// timerSet tracks one pending timer per key. Callbacks registered through it
// only run if their timer is still the current one for the key.
type timerSet struct {
	mu      sync.Mutex
	timers  map[string]*pendingTimer
	nextGen uint64
	closed  bool
	wg      sync.WaitGroup
}

type pendingTimer struct {
	timer *time.Timer
	gen   uint64
	group string
}

func newTimerSet() *timerSet {
	return &timerSet{timers: make(map[string]*pendingTimer)}
}

// schedule replaces any timer for key. fn runs in the timer goroutine and is
// tracked so shutdown can wait for it.
func (s *timerSet) schedule(key, group string, delay time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if existing, ok := s.timers[key]; ok {
		existing.timer.Stop()
	}
	s.nextGen++
	gen := s.nextGen
	s.timers[key] = &pendingTimer{
		gen:   gen,
		group: group,
		timer: time.AfterFunc(delay, func() { s.fire(key, gen, fn) }),
	}
	return true
}

func (s *timerSet) fire(key string, gen uint64, fn func()) {
	s.mu.Lock()
	entry, ok := s.timers[key]
	if !ok || entry.gen != gen || s.closed {
		// replaced or cancelled after the timer had already started to fire
		s.mu.Unlock()
		return
	}
	delete(s.timers, key)
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	fn()
}

// stop cancels the timer for key, if any
func (s *timerSet) stop(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.timers[key]
	if !ok {
		return false
	}
	entry.timer.Stop()
	delete(s.timers, key)
	return true
}

// stopGroup cancels every timer registered under group and returns how many it stopped
func (s *timerSet) stopGroup(group string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key, entry := range s.timers {
		if entry.group == group {
			entry.timer.Stop()
			delete(s.timers, key)
			n++
		}
	}
	return n
}

func (s *timerSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// close stops all pending timers and refuses new ones. It returns the number cancelled
// and a channel closed once in-flight callbacks have returned.
func (s *timerSet) close() (int, <-chan struct{}) {
	s.mu.Lock()
	s.closed = true
	n := len(s.timers)
	for _, entry := range s.timers {
		entry.timer.Stop()
	}
	s.timers = make(map[string]*pendingTimer)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	return n, done
}
