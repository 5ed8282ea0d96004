package gateway

import (
	"context"
	"log"
	"sync"
	"time"
)

// Scheduler runs at most one delayed task per key. Scheduling a key again
// replaces the earlier task.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

func (s *Scheduler) Schedule(key string, delay time.Duration, task func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	if t, ok := s.timers[key]; ok && t.Stop() {
		s.wg.Done()
	}

	s.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		if s.timers[key] != t {
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()

		defer func() {
			if r := recover(); r != nil {
				log.Printf("scheduled task %s panicked: %v", key, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		task(ctx)
	})
	s.timers[key] = t
	return true
}

// Cancel reports whether a pending task was dropped.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[key]
	if !ok {
		return false
	}
	delete(s.timers, key)
	if t.Stop() {
		s.wg.Done()
		return true
	}
	return false
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop drops every pending task and waits for running ones to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for key, t := range s.timers {
		if t.Stop() {
			s.wg.Done()
		}
		delete(s.timers, key)
	}
	s.mu.Unlock()

	s.wg.Wait()
}
