package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type prunerStub struct {
	mu      sync.Mutex
	calls   int
	cutoffs []time.Time
	removed int64
	err     error
}

func (s *prunerStub) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.cutoffs = append(s.cutoffs, cutoff)
	return s.removed, s.err
}

func (s *prunerStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestPrune_UsesRetentionWindow(t *testing.T) {
	repo := &prunerStub{removed: 4}
	job := NewLiveLocationRetentionJob(repo, 24*time.Hour, time.Minute)
	fixed := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	job.now = func() time.Time { return fixed }

	job.prune(context.Background())
	require.Equal(t, 1, repo.calls)
	require.Equal(t, fixed.Add(-24*time.Hour), repo.cutoffs[0])
}

func TestPrune_Error(t *testing.T) {
	repo := &prunerStub{err: errors.New("db down")}
	job := NewLiveLocationRetentionJob(repo, time.Hour, time.Minute)

	job.prune(context.Background())
	require.Equal(t, 1, repo.calls)
}

func TestStart_StopAndCancel(t *testing.T) {
	repo := &prunerStub{}
	job := NewLiveLocationRetentionJob(repo, time.Hour, time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool { return repo.callCount() > 0 }, time.Second, time.Millisecond)
	job.Stop()
	job.Stop()
	<-done

	ctx, cancel := context.WithCancel(context.Background())
	job2 := NewLiveLocationRetentionJob(repo, time.Hour, time.Hour)
	done2 := make(chan struct{})
	go func() {
		job2.Start(ctx)
		close(done2)
	}()
	cancel()
	<-done2
}

func TestStart_Disabled(t *testing.T) {
	repo := &prunerStub{}
	job := NewLiveLocationRetentionJob(repo, 0, 0)
	require.False(t, job.Enabled())
	require.Equal(t, 10*time.Minute, job.interval)

	job.Start(context.Background())
	require.Equal(t, 0, repo.calls)
}
