package validate

import (
	"strconv"
	"strings"
)

// Numeric bounds applied to segments. These are intentionally stricter than
// the loader's structural bounds; the two tables are kept separate so that
// tightening one never silently changes what the other accepts.
var (
	SegmentTimeMin    = 1.0
	SegmentTimeWarn   = 60.0
	ResistanceRange   = [2]float64{1, 20}
	CadenceRange      = [2]float64{30, 150}
	ElapsedWarnLimit  = 120.0
	FirstActivityWant = "Warm-up"
	LastActivityWant  = "Cool-down"
)

// RecognizedActivities lists the activity names seen in the published data.
// "Satnding Jog" is a long-standing typo in the data set and stays on the
// list so existing files keep validating; do not correct it here.
var RecognizedActivities = []string{
	"Warm-up",
	"Cycling",
	"Seated Flat",
	"Standing Flat",
	"Seated Climb",
	"Standing Climb",
	"Standing Jog",
	"Satnding Jog",
	"Sprint",
	"Jumps",
	"Recovery",
	"Free Ride",
	"Cool-down",
}

// ValidateSegment checks one timeline segment. previousElapsed is the running
// sum of all prior segments' Time values; a segment's own "Elapsed Time" must
// equal previousElapsed plus its Time exactly. The consistency check only
// runs when Time itself is a usable number, so a broken Time does not produce
// a second, misleading elapsed-time error.
func ValidateSegment(v any, index int, previousElapsed float64) Result {
	var res Result

	obj, ok := asObject(v)
	if !ok {
		res.AddError("segment %d is not an object", index)
		return res
	}

	segTime, timeValid := asNumber(obj[keyTime])
	if !timeValid || !isFinite(segTime) {
		timeValid = false
		res.AddError("Time: missing or not a finite number")
	} else {
		if segTime < SegmentTimeMin {
			res.AddError("Time: %v is below the minimum of %v minutes", segTime, SegmentTimeMin)
		}
		if segTime > SegmentTimeWarn {
			res.AddWarning("Time: %v minutes is unusually long for a single segment", segTime)
		}
	}

	if activity, ok := obj[keyActivity].(string); !ok || strings.TrimSpace(activity) == "" {
		res.AddError("Activity: missing or empty")
	} else if !recognizedActivity(activity) {
		res.AddWarning("Activity: %q is not a recognized activity", activity)
	}

	checkRange(&res, keyResistance, obj[keyResistance], ResistanceRange)
	checkRange(&res, keyCadence, obj[keyCadence], CadenceRange)

	if _, ok := obj[keyStrokeInstruction].(string); !ok {
		res.AddError("Stroke instruction: missing or not a string")
	}

	elapsed, ok := asNumber(obj[keyElapsedTime])
	switch {
	case !ok || !isFinite(elapsed):
		res.AddError("Elapsed Time: missing or not a finite number")
	case elapsed < 0:
		res.AddError("Elapsed Time: %v must not be negative", elapsed)
	default:
		if elapsed > ElapsedWarnLimit {
			res.AddWarning("Elapsed Time: %v minutes exceeds the typical total workout duration", elapsed)
		}
		if timeValid && elapsed != previousElapsed+segTime {
			res.AddError("Elapsed Time: %v does not match the running total, expected %v",
				elapsed, previousElapsed+segTime)
		}
	}

	return res
}

// ValidateWorkoutDetails validates a whole segment timeline. The running
// elapsed-time total threaded into each segment comes from the segments' own
// Time values, never from their possibly-wrong "Elapsed Time" fields, so one
// corrupted segment cannot cascade failures onto self-consistent successors.
func ValidateWorkoutDetails(v any) Result {
	var res Result

	segments, ok := asSlice(v)
	if !ok {
		res.AddError("workout details is not an array")
		return res
	}
	if len(segments) == 0 {
		res.AddError("workout details has no segments")
		return res
	}

	var running float64
	for i, seg := range segments {
		res.Merge("segment "+strconv.Itoa(i), ValidateSegment(seg, i, running))
		if obj, ok := asObject(seg); ok {
			if t, ok := asNumber(obj[keyTime]); ok && isFinite(t) {
				running += t
			}
		}
	}

	if act := segmentActivity(segments[0]); act != FirstActivityWant {
		res.AddWarning("first segment activity is %q, expected %q", act, FirstActivityWant)
	}
	if act := segmentActivity(segments[len(segments)-1]); act != LastActivityWant {
		res.AddWarning("last segment activity is %q, expected %q", act, LastActivityWant)
	}

	return res
}

func segmentActivity(v any) string {
	obj, ok := asObject(v)
	if !ok {
		return ""
	}
	act, _ := obj[keyActivity].(string)
	return act
}

func recognizedActivity(name string) bool {
	for _, a := range RecognizedActivities {
		if a == name {
			return true
		}
	}
	return false
}

func checkRange(res *Result, field string, v any, bounds [2]float64) {
	n, ok := asNumber(v)
	if !ok || !isFinite(n) {
		res.AddError("%s: missing or not a finite number", field)
		return
	}
	if n < bounds[0] || n > bounds[1] {
		res.AddError("%s: %v is outside the allowed range [%v, %v]", field, n, bounds[0], bounds[1])
	}
}
