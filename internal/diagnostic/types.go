package diagnostic

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
)

// Diagnostics holds all diagnostic information produced for one
// declaration file.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Decl identifies the declaration this relates to (e.g. "maps.primes").
	Decl string
	// Line is the declaration file line, or 0 when unknown.
	Line int
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, decl string, line int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Decl:     decl,
		Line:     line,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, decl string, line int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Decl:     decl,
		Line:     line,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, decl string, line int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Decl:     decl,
		Line:     line,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// The result matches the kind of every contained diagnostic under errors.Is.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	if len(d.Errors) == 1 {
		return d.Errors[0].Err()
	}

	var merr *multierror.Error
	for _, e := range d.Errors {
		merr = multierror.Append(merr, e.Err())
	}

	return merr
}

// Err converts the diagnostic into an error wrapping its kind.
func (d Diagnostic) Err() error {
	kind := Kind(d.Code)
	if kind == nil {
		return errors.New(d.String())
	}

	return errors.Wrap(kind, d.String())
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if d.Decl != "" {
		prefix = append(prefix, d.Decl)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
