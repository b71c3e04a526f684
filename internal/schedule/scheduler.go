package schedule

import (
	"context"
	"sync"
	"time"
)

const maxNotifications = 100
const tickInterval = 10 * time.Second
const maxTaskTimeout = 5 * time.Minute
const maxRetryDelay = 10 * time.Minute

// Scheduler runs tasks one by one in a background goroutine
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	wg sync.WaitGroup

	notifies chan struct{}

	mu            sync.Mutex
	q             queue
	running       *Task
	cancelRunning bool
}

func New() *Scheduler {
	s := Scheduler{
		notifies: make(chan struct{}, maxNotifications),
		q:        newQueue(),
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.process()
	}()

	return &s
}

func (s *Scheduler) process() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.notifies:
			s.processQueue()
		case <-ticker.C:
			s.processQueue()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) processQueue() {
	for s.ctx.Err() == nil {
		s.mu.Lock()
		t := s.q.pop(time.Now())
		s.running = t
		s.mu.Unlock()

		if t == nil {
			return
		}

		s.run(t)
	}
}

// Add enqueues task, returns false for an empty task
func (s *Scheduler) Add(t *Task) bool {
	if t == nil || t.Fn == nil {
		return false
	}

	s.mu.Lock()
	s.q.push(t)
	s.mu.Unlock()

	select {
	case s.notifies <- struct{}{}:
	default:
	}
	return true
}

// Cancel drops queued tasks of the group and prevents rescheduling of the running one
func (s *Scheduler) Cancel(group string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.q.removeGroup(group)
	if s.running != nil && s.running.Group == group {
		s.cancelRunning = true
	}
}

// pending returns count of queued tasks
func (s *Scheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.len()
}

func (s *Scheduler) run(t *Task) {
	timeout := maxTaskTimeout
	if t.timeout != 0 {
		timeout = t.timeout
	}

	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	result := t.Fn(ctx)

	switch result.Result {
	case OpResultRetry:
		if t.delay == 0 {
			t.delay = time.Second
		}
		t.delay *= 2
		if t.delay > maxRetryDelay {
			t.delay = maxRetryDelay
		}
		t.scheduledAt = time.Now().Add(t.delay)

	case OpResultRetryAfter:
		t.delay = result.After
		t.scheduledAt = time.Now().Add(result.After)
	}

	s.mu.Lock()
	if result.Result != OpResultDone && !s.cancelRunning {
		s.q.schedule(t)
	}
	s.running = nil
	s.cancelRunning = false
	s.mu.Unlock()
}

// Stop interrupts running task and waits for the worker
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
