// Package loader turns raw workout data files and remote resources into typed
// records. Unlike the validate package it fails fast: the first structural
// problem aborts the whole load with a typed error carrying enough context to
// diagnose without re-running.
package loader

import "fmt"

// LoadError reports a file, JSON, or record-shape problem. Index and Field
// identify the offending element when the problem is inside an array; Index
// is -1 otherwise.
type LoadError struct {
	Source string // file path or URL
	Index  int
	Field  string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := "load " + e.Source + ": "
	if e.Index >= 0 {
		msg += fmt.Sprintf("element %d: ", e.Index)
	}
	if e.Field != "" {
		msg += "field " + e.Field + ": "
	}
	msg += e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErr(source, reason string, err error) *LoadError {
	return &LoadError{Source: source, Index: -1, Reason: reason, Err: err}
}

func fieldErr(source string, index int, field, reason string) *LoadError {
	return &LoadError{Source: source, Index: index, Field: field, Reason: reason}
}

// NetworkError reports a transport or HTTP failure. Status is the HTTP status
// code when one was received, 0 otherwise.
type NetworkError struct {
	URL    string
	Status int
	Reason string
	Err    error
}

func (e *NetworkError) Error() string {
	msg := "fetch " + e.URL + ": " + e.Reason
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
