package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logOne(t *testing.T, attrs ...any) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(NewRedactingHandler(slog.NewJSONHandler(&buf, nil)))
	logger.Info("test message", attrs...)

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestRedactingHandler(t *testing.T) {
	t.Run("sensitive keys are redacted", func(t *testing.T) {
		got := logOne(t,
			slog.String("password", "hunter2"),
			slog.String("session_id", "p5go_abcdef"),
			slog.String("user", "admin"),
		)
		assert.Equal(t, "[REDACTED]", got["password"])
		assert.Equal(t, "[REDACTED]", got["session_id"])
		assert.Equal(t, "admin", got["user"])
	})

	t.Run("case insensitive matching", func(t *testing.T) {
		got := logOne(t,
			slog.String("UserPassword", "hunter2"),
			slog.String("SESSION", "p5go_abcdef"),
		)
		assert.Equal(t, "[REDACTED]", got["UserPassword"])
		assert.Equal(t, "[REDACTED]", got["SESSION"])
	})

	t.Run("connection strings are masked by value", func(t *testing.T) {
		got := logOne(t,
			slog.String("uri", "awsock:/admin:hunter2:p5go_ab@10.0.0.5:9001"),
		)
		assert.Equal(t, "awsock:/[REDACTED]@10.0.0.5:9001", got["uri"])
	})

	t.Run("nested groups are redacted", func(t *testing.T) {
		got := logOne(t, slog.Group("connection",
			slog.String("password", "hunter2"),
			slog.String("host", "10.0.0.5"),
		))
		group, ok := got["connection"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "[REDACTED]", group["password"])
		assert.Equal(t, "10.0.0.5", group["host"])
	})
}

func TestRedactURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "full connection string",
			uri:  "awsock:/admin:secret:sess@p5.example.com:9001",
			want: "awsock:/[REDACTED]@p5.example.com:9001",
		},
		{
			name: "password containing at sign",
			uri:  "awsock:/admin:p@ss:sess@p5.example.com:9001",
			want: "awsock:/[REDACTED]@p5.example.com:9001",
		},
		{
			name: "not a connection string",
			uri:  "https://example.com",
			want: "https://example.com",
		},
		{
			name: "malformed without host",
			uri:  "awsock:/admin:secret:sess",
			want: "awsock:/admin:secret:sess",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactURI(tt.uri))
		})
	}
}
