package pipeline

import (
	"testing"
	"time"

	"github.com/specdex/specdex/internal/report"
)

func TestJob_StatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued, CreatedAt: time.Now()}

	job.SetStatus(StatusExtracting, "extracting pages")
	snap := job.Snapshot()
	if snap.Status != StatusExtracting {
		t.Errorf("expected status %s, got %s", StatusExtracting, snap.Status)
	}
	if snap.Phase != "extracting pages" {
		t.Errorf("unexpected phase %q", snap.Phase)
	}

	job.SetStatus(StatusFailed, "extraction error")
	job.AddError("unsupported file")
	snap = job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("expected status %s, got %s", StatusFailed, snap.Status)
	}
	if len(snap.Progress.Errors) != 1 || snap.Progress.Errors[0] != "unsupported file" {
		t.Errorf("unexpected errors %v", snap.Progress.Errors)
	}
}

func TestJob_SetResultPopulatesProgress(t *testing.T) {
	job := &Job{ID: "j1"}
	res := &Result{
		Report: &report.CoverageReport{
			ValidationStatus: report.StatusPass,
			PageCoverage:     report.PageCoverage{CoveragePercentage: 97.5},
		},
	}
	job.SetResult(res)

	snap := job.Snapshot()
	if snap.Progress.CoveragePercentage != 97.5 {
		t.Errorf("expected coverage 97.5, got %v", snap.Progress.CoveragePercentage)
	}
	if snap.Progress.ValidationStatus != report.StatusPass {
		t.Errorf("expected status PASS, got %q", snap.Progress.ValidationStatus)
	}
	if job.Result() != res {
		t.Error("expected stored result to round-trip")
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "j1"}
	if errs := job.Snapshot().Progress.Errors; errs == nil {
		t.Error("snapshot errors should be an empty slice, not nil")
	}
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-time.Minute)}
	store.Put(fresh)
	store.Put(stale)

	if store.Get("fresh") != fresh {
		t.Fatal("expected to get back the fresh job")
	}
	if store.Get("missing") != nil {
		t.Fatal("expected nil for unknown job id")
	}

	store.Cleanup()
	if store.Get("stale") != nil {
		t.Error("expected stale job to be evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}
