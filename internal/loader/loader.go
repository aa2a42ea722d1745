package loader

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/shane9b3/cycling/internal/models"
)

// Structural bounds applied at load time. Deliberately laxer than the
// validate package's semantic ranges; the two tables stay separate so neither
// can silently change what the other accepts.
var (
	resistanceBounds = [2]float64{0, 20}
	cadenceBounds    = [2]float64{0, 150}
)

// LoadJSONFile reads a JSON document from disk and decodes it without any
// semantic checks. Relative paths resolve against the working directory.
func LoadJSONFile(path string) (any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, loadErr(path, "cannot resolve path", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, loadErr(abs, "file does not exist", err)
	}
	if !info.Mode().IsRegular() {
		return nil, loadErr(abs, "not a regular file", nil)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, loadErr(abs, "cannot read file", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, loadErr(abs, "file is empty", nil)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, loadErr(abs, "invalid JSON", err)
	}
	return v, nil
}

// LoadWorkouts reads a workouts file into typed records, failing on the first
// missing or mistyped required field.
func LoadWorkouts(path string) ([]models.Workout, error) {
	items, err := loadArray(path)
	if err != nil {
		return nil, err
	}

	workouts := make([]models.Workout, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &LoadError{Source: path, Index: i, Reason: "element is not an object"}
		}
		w := models.Workout{}
		if w.Title, err = requireString(path, i, obj, "Title"); err != nil {
			return nil, err
		}
		if w.Image, err = requireString(path, i, obj, "Image"); err != nil {
			return nil, err
		}
		if w.WorkoutURL, err = requireString(path, i, obj, "Workout_URL"); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// LoadVideos reads a videos file into typed records.
func LoadVideos(path string) ([]models.Video, error) {
	items, err := loadArray(path)
	if err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &LoadError{Source: path, Index: i, Reason: "element is not an object"}
		}
		v := models.Video{}
		if v.Title, err = requireString(path, i, obj, "Title"); err != nil {
			return nil, err
		}
		if v.Subtitle, err = requireString(path, i, obj, "Subtitle"); err != nil {
			return nil, err
		}
		if v.Image, err = requireString(path, i, obj, "Image"); err != nil {
			return nil, err
		}
		if v.Video, err = requireString(path, i, obj, "Video"); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// LoadWorkoutDetails reads a segment-timeline file into typed records. On top
// of field presence and types it rejects non-positive segment durations and
// resistance/cadence values outside the structural bounds.
func LoadWorkoutDetails(path string) (models.WorkoutDetails, error) {
	items, err := loadArray(path)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, loadErr(path, "workout details has no segments", nil)
	}

	details := make(models.WorkoutDetails, 0, len(items))
	for i, item := range items {
		seg, err := decodeSegment(path, i, item)
		if err != nil {
			return nil, err
		}
		if seg.Resistance < resistanceBounds[0] || seg.Resistance > resistanceBounds[1] {
			return nil, fieldErr(path, i, "Resistance", "value out of range")
		}
		if seg.Cadence < cadenceBounds[0] || seg.Cadence > cadenceBounds[1] {
			return nil, fieldErr(path, i, "Cadence", "value out of range")
		}
		details = append(details, seg)
	}
	return details, nil
}

func loadArray(path string) ([]any, error) {
	v, err := LoadJSONFile(path)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, loadErr(path, "document is not a JSON array", nil)
	}
	return items, nil
}

// decodeSegment coerces one raw timeline element, shared by the local and
// remote paths. Range checks beyond Time > 0 belong to the callers.
func decodeSegment(source string, i int, item any) (models.WorkoutSegment, error) {
	var seg models.WorkoutSegment

	obj, ok := item.(map[string]any)
	if !ok {
		return seg, &LoadError{Source: source, Index: i, Reason: "element is not an object"}
	}

	var err error
	if seg.Time, err = requireNumber(source, i, obj, "Time"); err != nil {
		return seg, err
	}
	if seg.Time <= 0 {
		return seg, fieldErr(source, i, "Time", "must be greater than zero")
	}
	if seg.Activity, err = requireString(source, i, obj, "Activity"); err != nil {
		return seg, err
	}
	if seg.Resistance, err = requireNumber(source, i, obj, "Resistance"); err != nil {
		return seg, err
	}
	if seg.Cadence, err = requireNumber(source, i, obj, "Cadence"); err != nil {
		return seg, err
	}
	if seg.StrokeInstruction, err = requireString(source, i, obj, "Stroke instruction"); err != nil {
		return seg, err
	}
	if seg.ElapsedTime, err = requireNumber(source, i, obj, "Elapsed Time"); err != nil {
		return seg, err
	}
	return seg, nil
}

func requireString(source string, i int, obj map[string]any, field string) (string, error) {
	v, ok := obj[field]
	if !ok {
		return "", fieldErr(source, i, field, "required field is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", fieldErr(source, i, field, "value is not a string")
	}
	return s, nil
}

func requireNumber(source string, i int, obj map[string]any, field string) (float64, error) {
	v, ok := obj[field]
	if !ok {
		return 0, fieldErr(source, i, field, "required field is missing")
	}
	n, ok := v.(float64)
	if !ok {
		return 0, fieldErr(source, i, field, "value is not a number")
	}
	return n, nil
}
