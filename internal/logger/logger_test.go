// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormats(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "empty means text", format: ""},
		{name: "text", format: "text"},
		{name: "console alias", format: "console"},
		{name: "json", format: "JSON"},
		{name: "unknown", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(Config{Format: tt.format, Output: &bytes.Buffer{}})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{
		"":        "INFO",
		"debug":   "DEBUG",
		"INFO":    "INFO",
		"warning": "WARN",
		"warn":    "WARN",
		"error":   "ERROR",
	} {
		lvl, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, lvl.String(), in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept", "size", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "kept", rec["msg"])
	require.Equal(t, "WARN", rec["level"])
	require.EqualValues(t, 4, rec["size"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Format: "json", Output: &buf})
	require.NoError(t, err)

	ctx := WithRunID(NewContext(context.Background(), l.With("component", "bench")), "01ABC")
	require.Equal(t, "01ABC", RunID(ctx))

	L(ctx).Info("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "bench", rec["component"])
	require.Equal(t, "01ABC", rec["run_id"])
}

func TestContextLoggerWithoutRunID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Format: "json", Output: &buf})
	require.NoError(t, err)

	L(NewContext(context.Background(), l)).Info("plain")
	require.NotContains(t, buf.String(), "run_id")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Same(t, Default(), FromContext(context.Background()))
	require.Same(t, Default(), FromContext(NewContext(context.Background(), nil)))
	require.Empty(t, RunID(context.Background()))
}

// ctxHandler records the context passed to Handle.
type ctxHandler struct {
	slog.Handler
	got *context.Context
}

func (h ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	*h.got = ctx
	return h.Handler.Handle(ctx, r)
}

func TestWithContextReachesHandler(t *testing.T) {
	var got context.Context
	base := &slogLogger{
		logger: slog.New(ctxHandler{Handler: slog.NewTextHandler(io.Discard, nil), got: &got}),
		ctx:    context.Background(),
	}

	ctx := WithRunID(context.Background(), "01XYZ")
	base.WithContext(ctx).Info("bound")
	require.Equal(t, "01XYZ", RunID(got))

	base.Info("unbound")
	require.Empty(t, RunID(got))
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	d := Discard()
	SetDefault(d)
	require.Same(t, d, Default())
}
