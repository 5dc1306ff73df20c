package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	scheduler := NewScheduler()
	var ok, failed atomic.Int32
	scheduler.AddJob("ok", time.Hour, func(ctx context.Context) error {
		ok.Add(1)
		return nil
	})
	scheduler.AddJob("failing", time.Hour, func(ctx context.Context) error {
		failed.Add(1)
		return errors.New("boom")
	})

	scheduler.RunOnce(context.Background())

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(1), failed.Load())
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	scheduler := NewScheduler()
	var runs atomic.Int32
	scheduler.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	scheduler.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	scheduler.Stop()

	stopped := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	scheduler := NewScheduler()

	assert.NotPanics(t, scheduler.Stop)
}
