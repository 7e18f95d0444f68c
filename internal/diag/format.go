package diag

import (
	"fmt"
	"os"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

var colorEnabled = true

// DisableColors turns off ANSI color output, for non-terminal sinks.
func DisableColors() { colorEnabled = false }

// EnableColors turns on ANSI color output.
func EnableColors() { colorEnabled = true }

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string   { return color(colorRed, text) }
func blue(text string) string  { return color(colorBlue, text) }
func cyan(text string) string  { return color(colorCyan, text) }
func white(text string) string { return color(colorWhite, text) }
func gray(text string) string  { return color(colorGray, text) }
func bold(text string) string  { return color(colorBold, text) }

// Format renders a multi-line, human-oriented diagnostic report with
// source context, suggestion, example, and doc link.
func (d *Diagnostic) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if d.Code != "" {
		b.WriteString(red(bold("ERROR ")))
		b.WriteString(white(bold(d.Code + ": ")))
		b.WriteString(white(d.Message))
	} else {
		b.WriteString(red(bold("ERROR: ")))
		b.WriteString(white(d.Message))
	}
	b.WriteString("\n\n")

	if d.Location != nil {
		b.WriteString("  ")
		b.WriteString(cyan(d.Location.String()))
		b.WriteString("\n\n")

		if len(d.Context) > 0 {
			startLine := d.Location.Line - len(d.Context)/2
			for i, line := range d.Context {
				lineNum := startLine + i
				if lineNum == d.Location.Line {
					b.WriteString("  ")
					b.WriteString(red("→ "))
					b.WriteString(fmt.Sprintf("%4d", lineNum))
					b.WriteString(gray(" │ "))
					b.WriteString(line)
					b.WriteString("\n")

					if d.Location.Column > 0 {
						b.WriteString("       ")
						b.WriteString(gray("│ "))
						b.WriteString(strings.Repeat(" ", d.Location.Column-1))
						b.WriteString(red("^"))
						b.WriteString("\n")
					}
				} else {
					b.WriteString("    ")
					b.WriteString(fmt.Sprintf("%4d", lineNum))
					b.WriteString(gray(" │ "))
					b.WriteString(line)
					b.WriteString("\n")
				}
			}
			b.WriteString("\n")
		}
	}

	if d.Detail != "" {
		for _, line := range wrapText(d.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if d.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(cyan("Hint: "))
		b.WriteString(d.Suggestion)
		b.WriteString("\n\n")
	}

	if d.Example != "" {
		b.WriteString("  ")
		b.WriteString(cyan("Example:"))
		b.WriteString("\n")
		for _, line := range strings.Split(d.Example, "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if d.DocURL != "" {
		b.WriteString("  ")
		b.WriteString(gray("Learn more: "))
		b.WriteString(blue(d.DocURL))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatJSON renders the diagnostic as a single-line JSON object, used by
// cmd/fenestrac's --json output mode.
func (d *Diagnostic) FormatJSON() string {
	var b strings.Builder
	b.WriteString("{")

	if d.Code != "" {
		b.WriteString(fmt.Sprintf(`"code":%q,`, d.Code))
	}
	b.WriteString(fmt.Sprintf(`"category":%q,`, d.Category))
	b.WriteString(fmt.Sprintf(`"message":%q`, d.Message))

	if d.Detail != "" {
		b.WriteString(fmt.Sprintf(`,"detail":%q`, d.Detail))
	}
	if d.Location != nil {
		b.WriteString(fmt.Sprintf(`,"location":{"file":%q,"line":%d,"column":%d}`,
			d.Location.File, d.Location.Line, d.Location.Column))
	}
	if d.Suggestion != "" {
		b.WriteString(fmt.Sprintf(`,"suggestion":%q`, d.Suggestion))
	}
	if d.DocURL != "" {
		b.WriteString(fmt.Sprintf(`,"docUrl":%q`, d.DocURL))
	}

	b.WriteString("}")
	return b.String()
}

func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	var current strings.Builder

	for _, word := range words {
		if current.Len()+len(word)+1 > width {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// Print writes a formatted diagnostic to stderr.
func Print(err error) {
	if d, ok := err.(*Diagnostic); ok {
		fmt.Fprint(os.Stderr, d.Format())
	} else {
		fmt.Fprintf(os.Stderr, "\n%sERROR:%s %s\n\n", colorRed+colorBold, colorReset, err.Error())
	}
}
