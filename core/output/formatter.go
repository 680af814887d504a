// Package output renders evaluation reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"kitcheck/core/evaluator"
	"kitcheck/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the two-line result summary
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report
	Render(w io.Writer, report evaluator.Report) error
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry with the standard formatters
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(TextFormatter{})
	r.Register(JSONFormatter{})
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.Newf(errors.TypeConfig, "unknown output format: %s", format)
	}
	return f, nil
}

// TextFormatter writes the two-line result summary
type TextFormatter struct{}

// Format returns the format type
func (TextFormatter) Format() Format { return FormatText }

// Render writes exactly two lines: the maximum score and the best
// kit identifier (or the no-build sentinel)
func (TextFormatter) Render(w io.Writer, report evaluator.Report) error {
	if _, err := fmt.Fprintf(w, "Maximum Score: %d\n", report.MaxScore); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Best Build: %s\n", report.BestKit)
	return err
}

// JSONFormatter writes the full report including per-kit verdicts
type JSONFormatter struct{}

// Format returns the format type
func (JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as indented JSON
func (JSONFormatter) Render(w io.Writer, report evaluator.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
