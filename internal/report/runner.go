// Package report orchestrates loading and validating a set of data files and
// renders the outcome. All problems across all files are collected before
// anything is reported; the process exit decision is the caller's.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shane9b3/cycling/internal/loader"
	"github.com/shane9b3/cycling/internal/validate"
)

// File kinds understood by the runner.
const (
	KindWorkouts       = "workouts"
	KindVideos         = "videos"
	KindWorkoutDetails = "workout-details"
)

// ValidatorFunc is an accumulating validator for one decoded document.
type ValidatorFunc func(any) validate.Result

// FileSummary is the outcome for one checked file.
type FileSummary struct {
	Path     string   `json:"path"`
	Kind     string   `json:"kind"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether the file passed.
func (s FileSummary) Valid() bool {
	return len(s.Errors) == 0
}

// RunSummary aggregates one validation run over a file set.
type RunSummary struct {
	ID        uuid.UUID     `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Files     []FileSummary `json:"files"`
}

// Valid reports whether every checked file passed.
func (r RunSummary) Valid() bool {
	return r.InvalidFiles() == 0
}

// InvalidFiles counts files with at least one error.
func (r RunSummary) InvalidFiles() int {
	var n int
	for _, f := range r.Files {
		if !f.Valid() {
			n++
		}
	}
	return n
}

// TotalErrors counts errors across all files.
func (r RunSummary) TotalErrors() int {
	var n int
	for _, f := range r.Files {
		n += len(f.Errors)
	}
	return n
}

// TotalWarnings counts warnings across all files.
func (r RunSummary) TotalWarnings() int {
	var n int
	for _, f := range r.Files {
		n += len(f.Warnings)
	}
	return n
}

// Runner validates data files.
type Runner struct {
	log *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{log: log}
}

// ValidateFile loads one file's raw JSON and runs the given validator over
// it. A load failure does not abort the run; it becomes a single-error
// invalid summary so the report still covers every file.
func (r *Runner) ValidateFile(path, kind string, fn ValidatorFunc) FileSummary {
	summary := FileSummary{Path: path, Kind: kind}

	raw, err := loader.LoadJSONFile(path)
	if err != nil {
		r.log.Warn("load failed", "path", path, "error", err)
		summary.Errors = append(summary.Errors, err.Error())
		return summary
	}

	res := fn(raw)
	summary.Errors = res.Errors
	summary.Warnings = res.Warnings

	r.log.Info("file checked",
		"path", path,
		"kind", kind,
		"valid", res.Valid(),
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
	)
	return summary
}

// Run checks the standard file set: a workouts file, a videos file, and any
// number of workout-details timelines.
func (r *Runner) Run(workoutsPath, videosPath string, detailPaths []string) RunSummary {
	run := RunSummary{ID: uuid.New(), StartedAt: time.Now().UTC()}

	run.Files = append(run.Files,
		r.ValidateFile(workoutsPath, KindWorkouts, validate.ValidateWorkoutsList))
	run.Files = append(run.Files,
		r.ValidateFile(videosPath, KindVideos, validate.ValidateVideosList))
	for _, p := range detailPaths {
		run.Files = append(run.Files,
			r.ValidateFile(p, KindWorkoutDetails, validate.ValidateWorkoutDetails))
	}
	return run
}

// RunPaths checks an explicit file list, inferring each file's kind from its
// name: "video" in the base name means videos, "workout" followed by ".json"
// alone means workouts, anything else is treated as a segment timeline.
func (r *Runner) RunPaths(paths []string) RunSummary {
	run := RunSummary{ID: uuid.New(), StartedAt: time.Now().UTC()}
	for _, p := range paths {
		kind := InferKind(p)
		run.Files = append(run.Files, r.ValidateFile(p, kind, ValidatorFor(kind)))
	}
	return run
}

// ValidatorFor maps a file kind to its accumulating validator.
func ValidatorFor(kind string) ValidatorFunc {
	switch kind {
	case KindWorkouts:
		return validate.ValidateWorkoutsList
	case KindVideos:
		return validate.ValidateVideosList
	default:
		return validate.ValidateWorkoutDetails
	}
}

// String renders a RunSummary identifier for logs.
func (r RunSummary) String() string {
	return fmt.Sprintf("run %s (%d files)", r.ID, len(r.Files))
}
