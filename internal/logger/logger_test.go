package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default", opts: Options{}, wantDebug: false, wantInfo: true},
		{name: "verbose", opts: Options{Verbose: true}, wantDebug: true, wantInfo: true},
		{name: "quiet", opts: Options{Quiet: true}, wantDebug: false, wantInfo: false},
		{name: "quiet wins over verbose", opts: Options{Quiet: true, Verbose: true}, wantDebug: false, wantInfo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Out = &buf

			log := New(tt.opts)
			log.Debugw("debug line")
			log.Infow("info line")
			_ = log.Sync()

			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "debug line"))
			assert.Equal(t, tt.wantInfo, strings.Contains(buf.String(), "info line"))
		})
	}
}

func TestNewConsoleHasNoTimestamp(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Out: &buf})
	log.Infow("loaded", FieldCount, 5)
	_ = log.Sync()

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "INFO"), "got %q", line)
	assert.Contains(t, line, `"count": 5`)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{JSON: true, Verbose: true, Out: &buf})
	log.Debugw("filter", FieldStep, "search", FieldBefore, 10, FieldAfter, 3)
	_ = log.Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "filter", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "search", entry[FieldStep])
	assert.EqualValues(t, 10, entry[FieldBefore])
	assert.EqualValues(t, 3, entry[FieldAfter])
}
