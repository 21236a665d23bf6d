package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

var testDelays = Delays{
	Interval:     time.Hour,
	ShortBackoff: time.Minute,
	LongBackoff:  10 * time.Minute,
}

func TestForError_SuccessfulCycleUsesPollInterval(t *testing.T) {
	assert.Equal(t, time.Hour, testDelays.ForError(nil))
}

func TestForError_NetworkFailureUsesShortBackoff(t *testing.T) {
	err := domain.Classify(domain.KindNetwork, errors.New("connection refused"))
	assert.Equal(t, time.Minute, testDelays.ForError(err))
}

func TestForError_WrappedNetworkFailureUsesShortBackoff(t *testing.T) {
	inner := domain.Classify(domain.KindNetwork, errors.New("timeout"))
	wrapped := errors.Join(errors.New("fetch playlist ext-1"), inner)
	assert.Equal(t, time.Minute, testDelays.ForError(wrapped))
}

func TestForError_AnythingElseUsesLongBackoff(t *testing.T) {
	assert.Equal(t, 10*time.Minute, testDelays.ForError(errors.New("disk full")))
	assert.Equal(t, 10*time.Minute,
		testDelays.ForError(domain.Classify(domain.KindUnclassified, errors.New("bad payload"))))
}

type fakeChecker struct {
	calls   int
	results []error
	done    chan struct{}
}

func (f *fakeChecker) CheckForUpdates(ctx context.Context) (*domain.CycleStats, error) {
	var err error
	if f.calls < len(f.results) {
		err = f.results[f.calls]
	}
	f.calls++
	if f.calls == len(f.results) {
		close(f.done)
	}
	return &domain.CycleStats{}, err
}

func TestStart_KeepsRunningThroughFailures(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	checker := &fakeChecker{
		results: []error{
			nil,
			domain.Classify(domain.KindNetwork, errors.New("connection refused")),
			errors.New("something else"),
		},
		done: make(chan struct{}),
	}

	delays := Delays{Interval: time.Millisecond, ShortBackoff: time.Millisecond, LongBackoff: time.Millisecond}
	sched := NewScheduler(checker, delays, logger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- sched.Start(ctx)
	}()

	select {
	case <-checker.done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not keep cycling through failures")
	}
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}

	assert.GreaterOrEqual(t, checker.calls, 3)
}
