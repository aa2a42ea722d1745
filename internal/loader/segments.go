package loader

import (
	"fmt"

	"github.com/shane9b3/cycling/internal/models"
)

// SegmentAtIndex is bounds-checked random access into a timeline.
func SegmentAtIndex(segments models.WorkoutDetails, index int) (models.WorkoutSegment, error) {
	if index < 0 || index >= len(segments) {
		return models.WorkoutSegment{}, &LoadError{
			Source: "segments",
			Index:  index,
			Reason: fmt.Sprintf("index out of bounds, have %d segments", len(segments)),
		}
	}
	return segments[index], nil
}

// CurrentSegment returns the segment active at elapsedMinutes into the
// workout: the first segment whose cumulative elapsed time has not yet been
// passed. Negative input maps to the first segment. nil means the workout is
// complete (or the timeline is empty). Timelines are tens of entries at most,
// so a linear scan is fine.
func CurrentSegment(segments models.WorkoutDetails, elapsedMinutes float64) *models.WorkoutSegment {
	for i := range segments {
		if segments[i].ElapsedTime >= elapsedMinutes {
			return &segments[i]
		}
	}
	return nil
}
