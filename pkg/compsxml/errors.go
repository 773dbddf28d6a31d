package compsxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/j-mracek/libcomps/pkg/comps"
)

// ParseError reports input that could not be read as a comps document.
// It matches comps.ErrParse with errors.Is().
type ParseError struct {
	Source  string // File path or other input name; may be empty
	Line    int    // Line number (0 if unknown)
	Column  int    // Column number (0 if unknown)
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *ParseError) Error() string {
	source := e.Source
	if source == "" {
		source = "<input>"
	}

	location := source
	if e.Line > 0 {
		if e.Column > 0 {
			location = fmt.Sprintf("%s (line %d, col %d)", source, e.Line, e.Column)
		} else {
			location = fmt.Sprintf("%s (line %d)", source, e.Line)
		}
	}

	msg := fmt.Sprintf("comps parse error in %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is(err, comps.ErrParse) succeed.
func (e *ParseError) Unwrap() error {
	return comps.ErrParse
}

const syntaxHint = "Check that all XML tags are properly closed and attributes are quoted.\n" +
	"A comps document has the form <comps><group>...</group>...</comps>."

// wrapXMLError converts tokenizer errors to ParseError with line numbers.
func wrapXMLError(err error, source string, line, column int) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{
			Source:  source,
			Line:    syntaxErr.Line,
			Column:  column,
			Message: syntaxErr.Msg,
			Hint:    syntaxHint,
		}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{
			Source:  source,
			Line:    line,
			Column:  column,
			Message: "unexpected end of document",
			Hint:    "The input looks truncated. Check that the file was written completely.",
		}
	}
	return &ParseError{
		Source:  source,
		Line:    line,
		Column:  column,
		Message: err.Error(),
		Hint:    syntaxHint,
	}
}
