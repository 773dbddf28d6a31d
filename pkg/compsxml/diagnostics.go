package compsxml

import (
	"fmt"
	"strings"
)

// Diagnostic is a recoverable problem found while parsing.
type Diagnostic struct {
	Message string
	IsError bool
	Line    int
	Column  int
}

// String renders the diagnostic as "line:col: severity: message".
func (d Diagnostic) String() string {
	severity := "warning"
	if d.IsError {
		severity = "error"
	}
	if d.Line > 0 {
		return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", severity, d.Message)
}

// Diagnostics is the ordered list of problems reported by one parse.
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic is an error.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.IsError {
			return true
		}
	}
	return false
}

// Warnings returns the non-error diagnostics, in order.
func (ds Diagnostics) Warnings() Diagnostics {
	return ds.filter(false)
}

// Errors returns the error diagnostics, in order.
func (ds Diagnostics) Errors() Diagnostics {
	return ds.filter(true)
}

func (ds Diagnostics) filter(isError bool) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.IsError == isError {
			out = append(out, d)
		}
	}
	return out
}

// String returns one diagnostic per line.
func (ds Diagnostics) String() string {
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	return b.String()
}
