package gateway

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsTask(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	done := make(chan struct{})
	assert.True(t, s.Schedule("b1", 10*time.Millisecond, func(ctx context.Context) { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CancelDropsTask(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var ran atomic.Bool
	s.Schedule("b1", 50*time.Millisecond, func(ctx context.Context) { ran.Store(true) })

	assert.True(t, s.Cancel("b1"))
	assert.False(t, s.Cancel("b1"))

	time.Sleep(100 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestScheduler_RescheduleReplaces(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var calls atomic.Int32
	s.Schedule("b1", 30*time.Millisecond, func(ctx context.Context) { calls.Add(1) })
	s.Schedule("b1", 30*time.Millisecond, func(ctx context.Context) { calls.Add(10) })

	assert.Eventually(t, func() bool { return calls.Load() == 10 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(10), calls.Load())
}

func TestScheduler_RecoversPanics(t *testing.T) {
	s := NewScheduler()

	s.Schedule("b1", time.Millisecond, func(ctx context.Context) { panic("boom") })

	done := make(chan struct{})
	s.Schedule("b2", 5*time.Millisecond, func(ctx context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second task did not run")
	}
	s.Stop()
}

func TestScheduler_StopRejectsNewTasks(t *testing.T) {
	s := NewScheduler()
	var ran atomic.Bool
	s.Schedule("b1", time.Hour, func(ctx context.Context) { ran.Store(true) })

	s.Stop()

	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.Schedule("b2", time.Millisecond, func(ctx context.Context) {}))
	assert.False(t, ran.Load())
}
