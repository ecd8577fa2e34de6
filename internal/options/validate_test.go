package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/froggy1014/orval/oaserrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantMsg string
	}{
		{"exactly one", []bool{false, true}, ""},
		{"none", []bool{false, false}, "no input"},
		{"several", []bool{true, true}, "too many inputs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("input", "no input", "too many inputs", tt.sources...)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))

			var cfgErr *oaserrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "input", cfgErr.Option)
			assert.Equal(t, tt.wantMsg, cfgErr.Message)
		})
	}
}
