// Package frontmatter renders and parses YAML front matter blocks.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const delim = "---"

// Field is a single front matter entry. A mapping is an ordered slice of
// fields; rendering preserves slice order.
type Field struct {
	Key   string
	Value any
}

// Render produces a front matter block: an opening delimiter line, one
// "key: value" line per field in order, and a closing delimiter line.
// Booleans render as the literal tokens true/false, everything else via its
// natural string form.
func Render(fields []Field) string {
	var b strings.Builder
	b.WriteString(delim)
	b.WriteByte('\n')
	for _, f := range fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(renderValue(f.Value))
		b.WriteByte('\n')
	}
	b.WriteString(delim)
	b.WriteByte('\n')
	return b.String()
}

func renderValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Present reports whether content already begins with a front matter
// delimiter once leading whitespace is stripped.
func Present(content []byte) bool {
	trimmed := bytes.TrimLeftFunc(content, unicode.IsSpace)
	return bytes.HasPrefix(trimmed, []byte(delim))
}

// Result holds the parsed parts of a Markdown document.
type Result struct {
	Frontmatter map[string]any
	Body        string
	Title       string
}

// Parse separates a YAML front matter block (between leading --- delimiters)
// from the Markdown body. Documents without front matter, or whose block is
// not valid YAML, come back with a nil Frontmatter and the full content as
// body.
func Parse(data []byte) *Result {
	fm, body := split(data)
	return &Result{
		Frontmatter: fm,
		Body:        body,
		Title:       deriveTitle(fm, body),
	}
}

func split(data []byte) (map[string]any, string) {
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data)
	}

	// Find end delimiter.
	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return nil, string(data)
	}

	yamlBlock := rest[:idx]
	// Body starts after the closing delimiter line.
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]any
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		return nil, string(data)
	}

	return fm, body
}

// deriveTitle returns the front matter "title" if present, otherwise the
// first H1 heading, otherwise empty string.
func deriveTitle(fm map[string]any, body string) string {
	if fm != nil {
		if t, ok := fm["title"]; ok {
			if s, ok := t.(string); ok && s != "" {
				return s
			}
		}
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
