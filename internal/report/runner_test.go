package report

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testRunner() *Runner {
	return NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const (
	goodWorkoutsJSON = `[{"Title":"Ride","Image":"https://a.amazonaws.com/i.jpg","Workout_URL":"https://raw.githubusercontent.com/x/r.json"}]`
	goodVideosJSON   = `[{"Title":"V","Subtitle":"","Image":"https://a.amazonaws.com/i.jpg","Video":"https://a.amazonaws.com/v.mp4"}]`
	goodDetailsJSON  = `[
	  {"Time": 5, "Activity": "Warm-up", "Resistance": 5, "Cadence": 80, "Stroke instruction": "", "Elapsed Time": 5},
	  {"Time": 5, "Activity": "Cool-down", "Resistance": 3, "Cadence": 50, "Stroke instruction": "", "Elapsed Time": 10}
	]`
)

// TestValidateFileLoadFailure verifies a missing file becomes an invalid
// summary instead of aborting the run.
func TestValidateFileLoadFailure(t *testing.T) {
	s := testRunner().ValidateFile(filepath.Join(t.TempDir(), "nope.json"), KindWorkouts, ValidatorFor(KindWorkouts))
	if s.Valid() {
		t.Fatal("expected missing file to produce an invalid summary")
	}
	if len(s.Errors) != 1 {
		t.Errorf("got %d errors, want 1: %v", len(s.Errors), s.Errors)
	}
}

// TestRunAllValid verifies a fully valid file set aggregates clean.
func TestRunAllValid(t *testing.T) {
	dir := t.TempDir()
	run := testRunner().Run(
		writeFile(t, dir, "workouts.json", goodWorkoutsJSON),
		writeFile(t, dir, "videos.json", goodVideosJSON),
		[]string{writeFile(t, dir, "ride.json", goodDetailsJSON)},
	)
	if !run.Valid() {
		t.Fatalf("expected valid run, got %d errors", run.TotalErrors())
	}
	if len(run.Files) != 3 {
		t.Errorf("checked %d files, want 3", len(run.Files))
	}
	if run.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("run has no ID")
	}
}

// TestRunAggregation verifies one invalid file flips the run while others
// stay individually valid.
func TestRunAggregation(t *testing.T) {
	dir := t.TempDir()
	run := testRunner().Run(
		writeFile(t, dir, "workouts.json", `[{"Title":""}]`),
		writeFile(t, dir, "videos.json", goodVideosJSON),
		nil,
	)
	if run.Valid() {
		t.Fatal("expected invalid run")
	}
	if run.InvalidFiles() != 1 {
		t.Errorf("InvalidFiles = %d, want 1", run.InvalidFiles())
	}
}

// TestInferKind verifies the file-name heuristics used by explicit path
// runs.
func TestInferKind(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"data/workouts.json", KindWorkouts},
		{"data/videos.json", KindVideos},
		{"data/Videos.JSON", KindVideos},
		{"data/ride_30min.json", KindWorkoutDetails},
	}
	for _, tt := range tests {
		if got := InferKind(tt.path); got != tt.want {
			t.Errorf("InferKind(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

// TestRender verifies the report carries the verdict, per-file rows, and the
// itemized messages.
func TestRender(t *testing.T) {
	dir := t.TempDir()
	run := testRunner().Run(
		writeFile(t, dir, "workouts.json", `[{"Title":""}]`),
		writeFile(t, dir, "videos.json", goodVideosJSON),
		nil,
	)
	out := Render(run)
	if !strings.Contains(out, "FAIL") {
		t.Error("report does not carry the FAIL verdict")
	}
	if !strings.Contains(out, "workouts.json") {
		t.Error("report does not list the checked files")
	}
	if !strings.Contains(out, "error:") {
		t.Error("report does not itemize errors")
	}
}
