package model

import "strings"

// Doc renders the Go comment block of a generated function, or "" when there
// is nothing to say.
func Doc(summary, description string, deprecated bool) string {
	var paragraphs []string
	if s := strings.TrimSpace(summary); s != "" {
		paragraphs = append(paragraphs, s)
	}
	if d := strings.TrimSpace(description); d != "" && d != strings.TrimSpace(summary) {
		paragraphs = append(paragraphs, d)
	}
	if deprecated {
		paragraphs = append(paragraphs, "Deprecated: this operation is deprecated.")
	}
	if len(paragraphs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("//\n")
		}
		for _, line := range strings.Split(p, "\n") {
			line = strings.TrimRight(line, " \t")
			if line == "" {
				b.WriteString("//\n")
				continue
			}
			b.WriteString("// ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
