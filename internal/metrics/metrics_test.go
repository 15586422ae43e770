package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordFeedFetch(t *testing.T) {
	r := NewRecorder()

	r.RecordFeedFetch("espn", 12, 150*time.Millisecond, nil)
	r.RecordFeedFetch("espn", 0, 80*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("espn")
	if snap.Fetches != 2 {
		t.Fatalf("fetches = %d", snap.Fetches)
	}
	if snap.Errors != 1 {
		t.Fatalf("errors = %d", snap.Errors)
	}
	// A failed fetch keeps the last successful game count.
	if snap.LastGameCount != 12 {
		t.Fatalf("last game count = %d", snap.LastGameCount)
	}
	if snap.LastFetchLatency != 80*time.Millisecond {
		t.Fatalf("last latency = %v", snap.LastFetchLatency)
	}
}

func TestSnapshotUnknownSource(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("never-seen"); snap.Fetches != 0 || snap.Errors != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordFeedFetch("espn", 1, time.Millisecond, nil)
	r.RecordAggregationRun(1, time.Millisecond, nil)
	r.RecordHTTPRequest("GET", "/scoreboard", 200, time.Millisecond)
	if got := r.FeedFetches("espn"); got != 0 {
		t.Fatalf("nil recorder fetches = %d", got)
	}
}

func TestSourcesAreIndependent(t *testing.T) {
	r := NewRecorder()
	r.RecordFeedFetch("espn", 3, time.Millisecond, nil)
	r.RecordFeedFetch("plaintext", 0, time.Millisecond, errors.New("down"))

	if r.FeedErrors("espn") != 0 {
		t.Fatalf("espn errors = %d", r.FeedErrors("espn"))
	}
	if r.FeedErrors("plaintext") != 1 {
		t.Fatalf("plaintext errors = %d", r.FeedErrors("plaintext"))
	}
}
