package report

import (
	"path/filepath"
	"strings"
)

// InferKind guesses a file's kind from its base name. The two catalog files
// are named workouts.json and videos.json; everything else in the data set is
// a per-workout segment timeline.
func InferKind(path string) string {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == "workouts.json":
		return KindWorkouts
	case strings.Contains(base, "video"):
		return KindVideos
	default:
		return KindWorkoutDetails
	}
}
