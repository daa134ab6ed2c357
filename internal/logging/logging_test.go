package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "json")
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("manager", "test").Msg("attached")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "attached", entry["message"])
	require.Equal(t, "test", entry["manager"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "console")
	require.NoError(t, err)
	l.Debug().Msg("swept")
	require.Contains(t, buf.String(), "swept")
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "json")
	require.Error(t, err)
	_, err = New(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	Set(l)
	t.Cleanup(func() { Set(zerolog.Nop()) })
	L().Debug().Msg("through the shared logger")
	require.Contains(t, buf.String(), "through the shared logger")
}
