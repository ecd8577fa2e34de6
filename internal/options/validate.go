// Package options provides shared utilities for option validation across packages.
package options

import "github.com/froggy1014/orval/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the configuration entry the sources belong to; sources reports
// whether each alternative is set. Returns a *oaserrors.ConfigError if zero or
// more than one source is specified.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: option, Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: option, Message: multiSourceMsg}
	}

	return nil
}
