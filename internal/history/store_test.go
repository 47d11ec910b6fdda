package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/scripter/internal/executor"
	scerr "github.com/msto63/scripter/pkg/core/errors"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(Config{Path: filepath.Join(t.TempDir(), "history.db")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRun(id string, started time.Time, status string) *Run {
	return &Run{
		ID:         id,
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Script:     "demo.script",
		Backend:    "dryrun",
		DryRun:     true,
		Status:     status,
		Statements: 4,
		Executed:   4,
	}
}

func TestStore_RecordAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	started := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	run := testRun("run-1", started, executor.StatusFailed)
	run.Executed = 2
	run.FailedLine = 3
	run.Error = "line 3: unable to click left button"

	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := store.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != executor.StatusFailed || got.FailedLine != 3 || got.Executed != 2 {
		t.Errorf("Get() = %+v", got)
	}
	if got.Error != run.Error {
		t.Errorf("Error = %q, want %q", got.Error, run.Error)
	}
	if !got.DryRun {
		t.Error("DryRun not persisted")
	}
	if got.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() = %v", got.Elapsed())
	}
}

func TestStore_GetMissing(t *testing.T) {
	_, err := newTestStore(t).Get(context.Background(), "nope")
	if !scerr.HasCode(err, scerr.CodeHistoryError) {
		t.Errorf("expected HISTORY_ERROR, got %v", err)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		status := executor.StatusCompleted
		if id == "b" {
			status = executor.StatusFailed
		}
		if err := store.Record(ctx, testRun(id, base.Add(time.Duration(i)*time.Minute), status)); err != nil {
			t.Fatalf("Record(%s) error = %v", id, err)
		}
	}

	runs, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 3 || runs[0].ID != "c" || runs[2].ID != "a" {
		t.Errorf("unexpected order: %v", ids(runs))
	}

	failed, err := store.List(ctx, Filter{Status: executor.StatusFailed})
	if err != nil {
		t.Fatalf("List(failed) error = %v", err)
	}
	if len(failed) != 1 || failed[0].ID != "b" {
		t.Errorf("failed runs = %v", ids(failed))
	}

	limited, _ := store.List(ctx, Filter{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("limit ignored: %v", ids(limited))
	}
}

func TestStore_Prune(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		if err := store.Record(ctx, testRun(id, base.Add(time.Duration(i)*time.Hour), executor.StatusCompleted)); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	deleted, err := store.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}

	runs, _ := store.List(ctx, Filter{})
	if len(runs) != 2 || runs[0].ID != "e" || runs[1].ID != "d" {
		t.Errorf("remaining = %v", ids(runs))
	}

	if n, _ := store.Prune(ctx, 0); n != 0 {
		t.Errorf("Prune(0) deleted %d", n)
	}
}

func TestFromResult(t *testing.T) {
	started := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	res := &executor.RunResult{
		RunID:      "r1",
		Source:     "demo.script",
		Backend:    "robotgo",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		Status:     executor.StatusFailed,
		Total:      5,
		Steps: []executor.StepResult{
			{Line: 1, Status: executor.StatusCompleted},
			{Line: 4, Status: executor.StatusFailed, Err: errors.New("boom")},
		},
		Err: errors.New("line 4: boom"),
	}

	run := FromResult(res)
	if run.FailedLine != 4 || run.Executed != 1 || run.Statements != 5 {
		t.Errorf("FromResult() = %+v", run)
	}
	if run.Error != "line 4: boom" {
		t.Errorf("Error = %q", run.Error)
	}
}

func ids(runs []*Run) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.ID
	}
	return out
}
