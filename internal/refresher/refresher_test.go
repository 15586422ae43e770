package refresher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"scoreboard-service/internal/aggregate"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/testutil"
)

type countingService struct {
	calls atomic.Int64
	err   error
}

func (s *countingService) Refresh(ctx context.Context) (domaingames.View, error) {
	s.calls.Add(1)
	if s.err != nil {
		return domaingames.View{}, s.err
	}
	return domaingames.View{}, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestStartRunsBootRefresh(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	svc := &countingService{}
	r := New(svc, logger, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop(context.Background())

	waitFor(t, func() bool { return svc.calls.Load() == 1 })

	status := r.Status()
	if status.LastSuccess.IsZero() {
		t.Fatalf("boot refresh should record a success")
	}
	if !status.IsReady() {
		t.Fatalf("refresher should be ready after the boot refresh")
	}
}

func TestStartWithIntervalKeepsRefreshing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	svc := &countingService{}
	r := New(svc, logger, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop(context.Background())

	waitFor(t, func() bool { return svc.calls.Load() >= 3 })
}

func TestFailuresTrackStatus(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	svc := &countingService{err: errors.New("upstream down")}
	r := New(svc, logger, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop(context.Background())

	waitFor(t, func() bool { return r.Status().ConsecutiveFailures == 1 })

	status := r.Status()
	if status.LastError != "upstream down" {
		t.Fatalf("last error = %q", status.LastError)
	}
	if status.IsReady() {
		t.Fatalf("refresher with no success yet should not be ready")
	}
}

func TestInFlightRefreshIsSkipNotFailure(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	svc := &countingService{err: aggregate.ErrRunInFlight}
	r := New(svc, logger, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop(context.Background())

	waitFor(t, func() bool { return svc.calls.Load() == 1 })

	if got := r.Status().ConsecutiveFailures; got != 0 {
		t.Fatalf("in-flight skip counted as failure: %d", got)
	}
}

func TestStatusIsReady(t *testing.T) {
	if (Status{}).IsReady() {
		t.Fatalf("zero status should not be ready")
	}
	if !(Status{LastSuccess: time.Now()}).IsReady() {
		t.Fatalf("recent success should be ready")
	}
	if (Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}).IsReady() {
		t.Fatalf("three consecutive failures should flip readiness")
	}
}

func TestStopDuringStartup(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()

	// Stop immediately after Start, repeatedly, so shutdown overlaps the
	// interval loop coming up.
	for i := 0; i < 25; i++ {
		r := New(&countingService{}, logger, time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		r.Start(ctx)
		if err := r.Stop(context.Background()); err != nil {
			t.Fatalf("Stop: %v", err)
		}
		cancel()
	}
}

func TestStopIsIdempotent(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	r := New(&countingService{}, logger, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}
