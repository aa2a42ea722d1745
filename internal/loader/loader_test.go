package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shane9b3/cycling/internal/validate"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const goodDetailsJSON = `[
  {"Time": 5, "Activity": "Warm-up", "Resistance": 5, "Cadence": 80, "Stroke instruction": "", "Elapsed Time": 5},
  {"Time": 10, "Activity": "Seated Climb", "Resistance": 12, "Cadence": 60, "Stroke instruction": "steady", "Elapsed Time": 15},
  {"Time": 5, "Activity": "Cool-down", "Resistance": 3, "Cadence": 50, "Stroke instruction": "", "Elapsed Time": 20}
]`

// TestLoadJSONFileFailures covers the hard file-level failure modes: missing
// path, directory, blank content, malformed JSON.
func TestLoadJSONFileFailures(t *testing.T) {
	if _, err := LoadJSONFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected missing file to fail")
	}
	if _, err := LoadJSONFile(t.TempDir()); err == nil {
		t.Error("expected directory to fail")
	}
	if _, err := LoadJSONFile(writeFile(t, "blank.json", "   \n")); err == nil {
		t.Error("expected blank file to fail")
	}
	if _, err := LoadJSONFile(writeFile(t, "bad.json", "{nope")); err == nil {
		t.Error("expected malformed JSON to fail")
	}

	_, err := LoadJSONFile(writeFile(t, "bad2.json", "[1,"))
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
}

// TestLoadWorkoutsMissingField verifies the error names the offending index
// and field, per the fail-fast contract.
func TestLoadWorkoutsMissingField(t *testing.T) {
	path := writeFile(t, "workouts.json", `[{"Title":"A"}]`)
	_, err := LoadWorkouts(path)
	if err == nil {
		t.Fatal("expected missing fields to fail")
	}

	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if lerr.Index != 0 {
		t.Errorf("Index = %d, want 0", lerr.Index)
	}
	if lerr.Field != "Image" {
		t.Errorf("Field = %q, want Image", lerr.Field)
	}
}

// TestLoadWorkoutsGood verifies typed records come back intact.
func TestLoadWorkoutsGood(t *testing.T) {
	path := writeFile(t, "workouts.json",
		`[{"Title":"Ride","Image":"https://a.amazonaws.com/i.jpg","Workout_URL":"https://raw.githubusercontent.com/x/r.json"}]`)
	workouts, err := LoadWorkouts(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 1 || workouts[0].Title != "Ride" {
		t.Errorf("unexpected result: %+v", workouts)
	}
	if workouts[0].WorkoutURL != "https://raw.githubusercontent.com/x/r.json" {
		t.Errorf("Workout_URL not mapped: %+v", workouts[0])
	}
}

// TestLoadVideosMistyped verifies a mistyped field fails the whole call.
func TestLoadVideosMistyped(t *testing.T) {
	path := writeFile(t, "videos.json",
		`[{"Title":"V","Subtitle":7,"Image":"https://a.amazonaws.com/i.jpg","Video":"https://a.amazonaws.com/v.mp4"}]`)
	_, err := LoadVideos(path)
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if lerr.Field != "Subtitle" {
		t.Errorf("Field = %q, want Subtitle", lerr.Field)
	}
}

// TestLoadWorkoutDetails verifies the structural pass: the space-bearing JSON
// keys decode, and the laxer load-time bounds apply.
func TestLoadWorkoutDetails(t *testing.T) {
	details, err := LoadWorkoutDetails(writeFile(t, "ride.json", goodDetailsJSON))
	if err != nil {
		t.Fatal(err)
	}
	if len(details) != 3 {
		t.Fatalf("got %d segments, want 3", len(details))
	}
	if details[1].StrokeInstruction != "steady" {
		t.Errorf("Stroke instruction not mapped: %+v", details[1])
	}
	if details[2].ElapsedTime != 20 {
		t.Errorf("Elapsed Time not mapped: %+v", details[2])
	}
}

// TestLoadWorkoutDetailsStructuralFailures covers empty array, non-positive
// time, and the [0,20]/[0,150] load-time bounds. Resistance 0 passes here
// even though the semantic validator would reject it; the two range tables
// are independent.
func TestLoadWorkoutDetailsStructuralFailures(t *testing.T) {
	if _, err := LoadWorkoutDetails(writeFile(t, "empty.json", "[]")); err == nil {
		t.Error("expected empty timeline to fail")
	}

	seg := `[{"Time": %s, "Activity": "Warm-up", "Resistance": %s, "Cadence": %s, "Stroke instruction": "", "Elapsed Time": 5}]`
	cases := []struct {
		name    string
		time    string
		res     string
		cad     string
		wantErr bool
	}{
		{"zero time", "0", "5", "80", true},
		{"negative time", "-1", "5", "80", true},
		{"resistance 21", "5", "21", "80", true},
		{"resistance 0 allowed", "5", "0", "80", false},
		{"cadence 151", "5", "5", "151", true},
		{"cadence 0 allowed", "5", "5", "0", false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			content := fmt.Sprintf(seg, tt.time, tt.res, tt.cad)
			_, err := LoadWorkoutDetails(writeFile(t, "seg.json", content))
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadThenValidateRoundTrip verifies a well-formed file loads and the
// loaded typed structure validates clean.
func TestLoadThenValidateRoundTrip(t *testing.T) {
	details, err := LoadWorkoutDetails(writeFile(t, "ride.json", goodDetailsJSON))
	if err != nil {
		t.Fatal(err)
	}
	res := validate.ValidateWorkoutDetails(details)
	if !res.Valid() {
		t.Errorf("loaded timeline failed validation: %v", res.Errors)
	}
}
