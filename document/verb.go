package document

import "strings"

// Verb is an HTTP method token in lower case.
type Verb string

// HTTP method tokens recognized in path items.
const (
	VerbGet     Verb = "get"
	VerbPut     Verb = "put"
	VerbPost    Verb = "post"
	VerbPatch   Verb = "patch"
	VerbDelete  Verb = "delete"
	VerbHead    Verb = "head"
	VerbOptions Verb = "options"
	VerbTrace   Verb = "trace"
)

// Verbs lists every recognized method token.
var Verbs = []Verb{VerbGet, VerbPut, VerbPost, VerbPatch, VerbDelete, VerbHead, VerbOptions, VerbTrace}

// ParseVerb returns the Verb for s, ignoring case.
func ParseVerb(s string) (Verb, bool) {
	v := Verb(strings.ToLower(s))
	for _, known := range Verbs {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// IsVerb reports whether s is an HTTP method token.
// Path-item keys such as "parameters", "summary" or "x-*" extensions are not verbs.
func IsVerb(s string) bool {
	_, ok := ParseVerb(s)
	return ok
}

// String returns the token.
func (v Verb) String() string {
	return string(v)
}
