package render

import "strings"

// htmlEntities are the characters escapeHTML and escapeAttr both rewrite:
// the five entities that matter for escaping text that lands inside HTML
// content versus inside a quoted attribute value.
var htmlEntities = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

// attrEntities extends htmlEntities with whitespace characters that could
// otherwise break out of a quoted attribute value once normalized by an
// HTML parser.
var attrEntities = map[rune]string{
	'\n': "&#10;",
	'\r': "&#13;",
	'\t': "&#9;",
}

func escapeWith(s string, tables ...map[rune]string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		escaped := false
		for _, table := range tables {
			if rep, ok := table[r]; ok {
				buf.WriteString(rep)
				escaped = true
				break
			}
		}
		if !escaped {
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeHTML escapes text for safe inclusion in HTML content.
// It converts special characters to their HTML entity equivalents
// to prevent XSS attacks.
func escapeHTML(s string) string {
	return escapeWith(s, htmlEntities)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	return escapeWith(s, htmlEntities, attrEntities)
}
