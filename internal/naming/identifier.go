package naming

import (
	"strings"
	"unicode"
)

// goReservedWords contains Go keywords that cannot be used as identifiers.
// Predeclared identifiers such as "error" or "string" may be shadowed and are not listed.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// IsReservedWord reports whether name is a Go keyword.
func IsReservedWord(name string) bool {
	return goReservedWords[name]
}

// EscapeReservedWord appends an underscore to name when it is a Go keyword.
func EscapeReservedWord(name string) string {
	if goReservedWords[name] {
		return name + "_"
	}
	return name
}

// Sanitize turns s into a syntactically valid identifier.
// Runes other than letters, digits and underscores are dropped, a leading digit
// is prefixed with an underscore and keywords are escaped. Case is preserved.
// Sanitize is idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
//
// Example: "list-pets" -> "listpets"
// Example: "2fa" -> "_2fa"
// Example: "type" -> "type_"
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		return ""
	}
	if unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return EscapeReservedWord(name)
}
