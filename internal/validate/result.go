// Package validate performs semantic checks over already-parsed but untyped
// workout data. Validators never fail hard on bad content: every problem found
// is accumulated into a Result so one pass reports everything. The loader
// package owns the fail-fast counterpart of these checks.
package validate

import "fmt"

// Result is an aggregable validation report. Errors are hard failures;
// warnings are advisories that never affect validity.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether the checked value passed, i.e. no errors were
// recorded. Warnings do not count.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// AddError records a hard failure.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// AddWarning records a soft advisory.
func (r *Result) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge folds a child result into r, prefixing every child message with the
// given source context (a field name, a segment index). The parent is valid
// iff all merged children are valid.
func (r *Result) Merge(prefix string, child Result) {
	for _, e := range child.Errors {
		r.Errors = append(r.Errors, prefix+": "+e)
	}
	for _, w := range child.Warnings {
		r.Warnings = append(r.Warnings, prefix+": "+w)
	}
}
