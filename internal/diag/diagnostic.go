package diag

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Category groups diagnostics by the subsystem that raised them.
type Category string

const (
	CategoryCompile    Category = "compile"
	CategoryRuntime    Category = "runtime"
	CategoryHydration  Category = "hydration"
	CategoryProtocol   Category = "protocol"
	CategoryValidation Category = "validation"
)

// Location is a source position, used by the transformer to point at the
// dialect construct that produced a diagnostic.
type Location struct {
	File   string
	Line   int
	Column int
}

// String formats the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Diagnostic is a structured error with a registered code, a category, an
// optional source location, and optional remediation hints.
type Diagnostic struct {
	Code     string
	Category Category
	Message  string
	Detail   string
	Location *Location
	Context  []string

	Suggestion string
	Example    string
	DocURL     string

	Wrapped error
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Code != "" {
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return d.Message
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (d *Diagnostic) Unwrap() error {
	return d.Wrapped
}

// WithLocation attaches a source location and its surrounding lines.
func (d *Diagnostic) WithLocation(file string, line, column int) *Diagnostic {
	d.Location = &Location{File: file, Line: line, Column: column}
	d.Context = readContextLines(file, line, 5)
	return d
}

// WithSuggestion attaches a fix hint.
func (d *Diagnostic) WithSuggestion(s string) *Diagnostic {
	d.Suggestion = s
	return d
}

// WithExample attaches an example of the correct form.
func (d *Diagnostic) WithExample(ex string) *Diagnostic {
	d.Example = ex
	return d
}

// WithDetail attaches a longer explanation.
func (d *Diagnostic) WithDetail(detail string) *Diagnostic {
	d.Detail = detail
	return d
}

// Wrap attaches the underlying cause.
func (d *Diagnostic) Wrap(err error) *Diagnostic {
	d.Wrapped = err
	return d
}

func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New builds a Diagnostic from a registered code.
func New(code string) *Diagnostic {
	tmpl, ok := registry[code]
	if !ok {
		return &Diagnostic{Code: code, Message: "unregistered diagnostic code"}
	}
	return &Diagnostic{
		Code:     code,
		Category: tmpl.Category,
		Message:  tmpl.Message,
		Detail:   tmpl.Detail,
		DocURL:   tmpl.DocURL,
	}
}

// Newf builds an ad hoc Diagnostic with no registered code.
func Newf(category Category, format string, args ...any) *Diagnostic {
	return &Diagnostic{Category: category, Message: fmt.Sprintf(format, args...)}
}

// FromError wraps a plain error in a Diagnostic built from code, or
// returns it unchanged if it already is one.
func FromError(err error, code string) *Diagnostic {
	if err == nil {
		return nil
	}
	if d, ok := err.(*Diagnostic); ok {
		return d
	}
	return New(code).Wrap(err)
}

// FormatCompact renders a single-line "file:line: CODE: message" form.
func (d *Diagnostic) FormatCompact() string {
	var b strings.Builder
	if d.Location != nil {
		b.WriteString(d.Location.String())
		b.WriteString(": ")
	}
	if d.Code != "" {
		b.WriteString(d.Code)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	return b.String()
}
