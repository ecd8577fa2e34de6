package verbs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debug("debug", "key", "value")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
		l.With("key", "value").Info("with")
	})
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler))

	l.With("operationId", "createPet").Warn("operation dropped", "declared", 2)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="operation dropped"`)
	assert.Contains(t, out, "operationId=createPet")
	assert.Contains(t, out, "declared=2")
}

func TestNewSlogAdapterNil(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil))
}
