package validate

import (
	"strings"
	"testing"

	"github.com/shane9b3/cycling/internal/models"
)

func goodWorkout() map[string]any {
	return map[string]any{
		"Title":       "30 Minute Ride",
		"Image":       "https://bucket.s3.amazonaws.com/ride.jpg",
		"Workout_URL": "https://raw.githubusercontent.com/x/y/ride.json",
	}
}

// TestValidateWorkoutGood verifies a well-formed workout passes clean.
func TestValidateWorkoutGood(t *testing.T) {
	res := ValidateWorkout(goodWorkout())
	if !res.Valid() {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

// TestValidateWorkoutProblems covers the per-field failure modes, each
// attributed to the field it came from.
func TestValidateWorkoutProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		wantIn string
	}{
		{"empty title", func(w map[string]any) { w["Title"] = " " }, "Title"},
		{"title not a string", func(w map[string]any) { w["Title"] = 7.0 }, "Title"},
		{"missing image", func(w map[string]any) { delete(w, "Image") }, "Image"},
		{"image off-domain", func(w map[string]any) { w["Image"] = "https://example.com/a.jpg" }, "Image"},
		{"workout url off-domain", func(w map[string]any) { w["Workout_URL"] = "https://example.com/a.json" }, "Workout_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := goodWorkout()
			tt.mutate(w)
			res := ValidateWorkout(w)
			if res.Valid() {
				t.Fatal("expected failure")
			}
			if !strings.Contains(strings.Join(res.Errors, "\n"), tt.wantIn) {
				t.Errorf("errors %v do not mention %s", res.Errors, tt.wantIn)
			}
		})
	}
}

// TestValidateWorkoutJSONSuffixWarning verifies a Workout_URL not pointing at
// a .json resource draws a warning but stays valid.
func TestValidateWorkoutJSONSuffixWarning(t *testing.T) {
	w := goodWorkout()
	w["Workout_URL"] = "https://raw.githubusercontent.com/x/y/ride.txt"
	res := ValidateWorkout(w)
	if !res.Valid() {
		t.Fatalf("suffix check must be a warning, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(res.Warnings), res.Warnings)
	}
}

// TestValidateWorkoutNotObject verifies shape problems produce a failed
// result, never a panic.
func TestValidateWorkoutNotObject(t *testing.T) {
	if res := ValidateWorkout("nope"); res.Valid() {
		t.Error("expected non-object to fail")
	}
	if res := ValidateWorkout(nil); res.Valid() {
		t.Error("expected nil to fail")
	}
}

func goodVideo() map[string]any {
	return map[string]any{
		"Title":    "Intro to Climbing",
		"Subtitle": "",
		"Image":    "https://bucket.s3.amazonaws.com/thumb.jpg",
		"Video":    "https://media.amazonaws.com/intro.mp4",
	}
}

// TestValidateVideoGood verifies an empty subtitle is fine and a recognized
// video extension draws no warning.
func TestValidateVideoGood(t *testing.T) {
	res := ValidateVideo(goodVideo())
	if !res.Valid() {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

// TestValidateVideoExtensionWarning verifies an unrecognized video suffix is
// advisory only, and extension matching is case-insensitive.
func TestValidateVideoExtensionWarning(t *testing.T) {
	v := goodVideo()
	v["Video"] = "https://media.amazonaws.com/intro.mkv"
	res := ValidateVideo(v)
	if !res.Valid() {
		t.Fatalf("extension check must be a warning, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(res.Warnings), res.Warnings)
	}

	v["Video"] = "https://media.amazonaws.com/INTRO.MP4"
	if res := ValidateVideo(v); len(res.Warnings) != 0 {
		t.Errorf("uppercase extension drew warnings: %v", res.Warnings)
	}
}

// TestValidateVideoMissingSubtitle verifies Subtitle must exist even though
// it may be empty.
func TestValidateVideoMissingSubtitle(t *testing.T) {
	v := goodVideo()
	delete(v, "Subtitle")
	if res := ValidateVideo(v); res.Valid() {
		t.Error("expected missing Subtitle to fail")
	}
}

// TestValidateWorkoutsList verifies element messages carry their index and
// validity is the AND across elements.
func TestValidateWorkoutsList(t *testing.T) {
	bad := goodWorkout()
	bad["Title"] = ""
	res := ValidateWorkoutsList([]any{goodWorkout(), bad})
	if res.Valid() {
		t.Fatal("expected list with one bad element to fail")
	}
	if !strings.HasPrefix(res.Errors[0], "workout 1:") {
		t.Errorf("error not attributed to element 1: %q", res.Errors[0])
	}
}

// TestValidateListsShape verifies non-array fails and empty array only warns.
func TestValidateListsShape(t *testing.T) {
	if res := ValidateWorkoutsList("x"); res.Valid() {
		t.Error("expected non-array workouts to fail")
	}
	res := ValidateVideosList([]any{})
	if !res.Valid() {
		t.Errorf("empty array must be a warning, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(res.Warnings), res.Warnings)
	}
}

// TestValidateTypedRecords verifies loaded typed records validate without a
// marshal round trip.
func TestValidateTypedRecords(t *testing.T) {
	w := models.Workout{
		Title:      "30 Minute Ride",
		Image:      "https://bucket.s3.amazonaws.com/ride.jpg",
		WorkoutURL: "https://raw.githubusercontent.com/x/y/ride.json",
	}
	if res := ValidateWorkout(w); !res.Valid() {
		t.Errorf("typed workout failed: %v", res.Errors)
	}

	v := models.Video{
		Title: "Intro",
		Image: "https://bucket.s3.amazonaws.com/thumb.jpg",
		Video: "https://media.amazonaws.com/intro.mp4",
	}
	if res := ValidateVideo(v); !res.Valid() {
		t.Errorf("typed video failed: %v", res.Errors)
	}

	if res := ValidateWorkoutsList([]models.Workout{w}); !res.Valid() {
		t.Errorf("typed workout list failed: %v", res.Errors)
	}
}
