// Package models defines the record types shared by the loader and the
// validators. JSON field names match the data files exactly, including the
// two keys that contain a literal space.
package models

// Workout is a named cycling workout with a reference image and a pointer to
// its segment timeline, which lives in a separate resource.
type Workout struct {
	Title      string `json:"Title"`
	Image      string `json:"Image"`
	WorkoutURL string `json:"Workout_URL"`
}

// Video is an instructional or class video.
type Video struct {
	Title    string `json:"Title"`
	Subtitle string `json:"Subtitle"`
	Image    string `json:"Image"`
	Video    string `json:"Video"`
}

// WorkoutSegment is one timed block of a workout. Time is the segment's own
// duration in minutes; ElapsedTime is the cumulative minutes from the start
// of the workout through the end of this segment.
type WorkoutSegment struct {
	Time              float64 `json:"Time"`
	Activity          string  `json:"Activity"`
	Resistance        float64 `json:"Resistance"`
	Cadence           float64 `json:"Cadence"`
	StrokeInstruction string  `json:"Stroke instruction"`
	ElapsedTime       float64 `json:"Elapsed Time"`
}

// WorkoutDetails is one workout's full segment timeline, in order.
type WorkoutDetails []WorkoutSegment

// TotalTime returns the sum of all segment durations in minutes.
func (d WorkoutDetails) TotalTime() float64 {
	var total float64
	for _, s := range d {
		total += s.Time
	}
	return total
}

// Duration returns the timeline's final cumulative elapsed time, or 0 for an
// empty timeline. For consistent data this equals TotalTime.
func (d WorkoutDetails) Duration() float64 {
	if len(d) == 0 {
		return 0
	}
	return d[len(d)-1].ElapsedTime
}
