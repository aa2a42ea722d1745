package validate

import (
	"math"

	"github.com/shane9b3/cycling/internal/models"
)

// Exact JSON keys used by the data files. Two of them contain a literal space.
const (
	keyTime              = "Time"
	keyActivity          = "Activity"
	keyResistance        = "Resistance"
	keyCadence           = "Cadence"
	keyStrokeInstruction = "Stroke instruction"
	keyElapsedTime       = "Elapsed Time"
)

// asObject coerces a value of unknown shape into a field map. Typed records
// are accepted alongside raw decoded JSON so that already-loaded data can be
// re-validated without a marshal round trip.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case models.WorkoutSegment:
		return segmentFields(t), true
	case *models.WorkoutSegment:
		return segmentFields(*t), true
	case models.Workout:
		return map[string]any{
			"Title":       t.Title,
			"Image":       t.Image,
			"Workout_URL": t.WorkoutURL,
		}, true
	case models.Video:
		return map[string]any{
			"Title":    t.Title,
			"Subtitle": t.Subtitle,
			"Image":    t.Image,
			"Video":    t.Video,
		}, true
	}
	return nil, false
}

func segmentFields(s models.WorkoutSegment) map[string]any {
	return map[string]any{
		keyTime:              s.Time,
		keyActivity:          s.Activity,
		keyResistance:        s.Resistance,
		keyCadence:           s.Cadence,
		keyStrokeInstruction: s.StrokeInstruction,
		keyElapsedTime:       s.ElapsedTime,
	}
}

// asSlice coerces a value into an element slice, accepting raw decoded arrays
// and the typed timeline/list forms.
func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case models.WorkoutDetails:
		return segmentSlice(t), true
	case []models.WorkoutSegment:
		return segmentSlice(t), true
	case []models.Workout:
		out := make([]any, len(t))
		for i, w := range t {
			out[i] = w
		}
		return out, true
	case []models.Video:
		out := make([]any, len(t))
		for i, vid := range t {
			out[i] = vid
		}
		return out, true
	}
	return nil, false
}

func segmentSlice(segments []models.WorkoutSegment) []any {
	out := make([]any, len(segments))
	for i, s := range segments {
		out[i] = s
	}
	return out
}

// asNumber accepts the numeric kinds a JSON decode or a typed record can
// carry.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
