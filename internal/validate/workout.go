package validate

import (
	"strconv"
	"strings"
)

// Domain allow-lists for the URL fields. Matching is exact or any-subdomain
// (see hostAllowed).
var (
	imageDomains      = []string{"amazonaws.com", "github.com", "githubusercontent.com"}
	workoutURLDomains = []string{"github.com", "githubusercontent.com", "raw.githubusercontent.com"}
	videoDomains      = []string{"amazonaws.com"}
)

// videoExtensions are the recognized video file suffixes; anything else on a
// Video URL draws a warning.
var videoExtensions = []string{".mp4", ".webm", ".mov", ".avi"}

// ValidateWorkout checks one workout record of unknown shape: Title must be a
// non-empty string and both URL fields must pass ValidateURL against their
// domain allow-lists. A Workout_URL that does not point at a .json resource
// draws a warning.
func ValidateWorkout(v any) Result {
	var res Result

	obj, ok := asObject(v)
	if !ok {
		res.AddError("workout is not an object")
		return res
	}

	res.Merge("Title", checkNonEmptyString(obj["Title"]))

	if img, ok := obj["Image"].(string); ok {
		res.Merge("Image", ValidateURL(img, imageDomains))
	} else {
		res.AddError("Image: missing or not a string")
	}

	if wu, ok := obj["Workout_URL"].(string); ok {
		res.Merge("Workout_URL", ValidateURL(wu, workoutURLDomains))
		if !strings.HasSuffix(strings.ToLower(wu), ".json") {
			res.AddWarning("Workout_URL: %q does not end in .json", wu)
		}
	} else {
		res.AddError("Workout_URL: missing or not a string")
	}

	return res
}

// ValidateVideo checks one video record of unknown shape. Subtitle only needs
// to be a string; it may be empty.
func ValidateVideo(v any) Result {
	var res Result

	obj, ok := asObject(v)
	if !ok {
		res.AddError("video is not an object")
		return res
	}

	res.Merge("Title", checkNonEmptyString(obj["Title"]))

	if _, ok := obj["Subtitle"].(string); !ok {
		res.AddError("Subtitle: missing or not a string")
	}

	if img, ok := obj["Image"].(string); ok {
		res.Merge("Image", ValidateURL(img, imageDomains))
	} else {
		res.AddError("Image: missing or not a string")
	}

	if vid, ok := obj["Video"].(string); ok {
		res.Merge("Video", ValidateURL(vid, videoDomains))
		if !hasVideoExtension(vid) {
			res.AddWarning("Video: %q does not have a recognized video extension %v", vid, videoExtensions)
		}
	} else {
		res.AddError("Video: missing or not a string")
	}

	return res
}

// ValidateWorkoutsList validates every element of a workouts array,
// prefixing each element's messages with its index. An empty array is a
// warning, not a failure.
func ValidateWorkoutsList(v any) Result {
	return validateList(v, "workouts", ValidateWorkout)
}

// ValidateVideosList is ValidateWorkoutsList for video records.
func ValidateVideosList(v any) Result {
	return validateList(v, "videos", ValidateVideo)
}

func validateList(v any, what string, each func(any) Result) Result {
	var res Result

	items, ok := asSlice(v)
	if !ok {
		res.AddError("%s is not an array", what)
		return res
	}
	if len(items) == 0 {
		res.AddWarning("%s array is empty", what)
		return res
	}

	for i, item := range items {
		res.Merge(indexPrefix(what, i), each(item))
	}
	return res
}

func indexPrefix(what string, i int) string {
	return strings.TrimSuffix(what, "s") + " " + strconv.Itoa(i)
}

func checkNonEmptyString(v any) Result {
	var res Result
	s, ok := v.(string)
	if !ok {
		res.AddError("missing or not a string")
		return res
	}
	if strings.TrimSpace(s) == "" {
		res.AddError("must not be empty")
	}
	return res
}

func hasVideoExtension(u string) bool {
	lower := strings.ToLower(u)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
