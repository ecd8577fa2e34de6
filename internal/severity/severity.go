// Package severity provides the severity levels attached to synthesis issues.
//
// Issues never abort a run; fatal problems are reported as errors from the
// oaserrors package instead. The levels are ordered from least to most severe:
// Info < Warning.
package severity

// Severity indicates how much attention a synthesis issue deserves.
type Severity int

const (
	// SeverityInfo marks a processing choice that may help when debugging
	// (for example an operation removed by a tag filter).
	SeverityInfo Severity = iota

	// SeverityWarning marks output that was legally skipped but may surprise the user,
	// such as an operation whose request content types were all filtered away.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as words
// in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
