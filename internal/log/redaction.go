// Package log provides slog helpers shared by the p5 tooling: an attribute
// redactor that keeps P5 credentials and session identifiers out of log
// output, and a size-rotated log file writer.
package log

import (
	"context"
	"log/slog"
	"strings"
)

// sensitiveKeys lists attribute keys whose values are redacted. Matching
// is case-insensitive and by substring, so user_password and SessionID are
// caught too.
var sensitiveKeys = []string{
	"password",
	"pass",
	"secret",
	"token",
	"session",
	"cred",
}

// RedactingHandler wraps a slog.Handler and blanks sensitive attribute
// values before they reach it. The awsock connection string embeds the
// account password, so URI-valued attributes are rewritten rather than
// dropped.
type RedactingHandler struct {
	next slog.Handler
}

// NewRedactingHandler wraps next.
func NewRedactingHandler(next slog.Handler) *RedactingHandler {
	return &RedactingHandler{next: next}
}

// Enabled implements slog.Handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	var attrs []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, redactAttr(a))
		return true
	})

	clean := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	clean.AddAttrs(attrs...)
	return h.next.Handle(ctx, clean)
}

// WithAttrs implements slog.Handler.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactingHandler{next: h.next.WithAttrs(redacted)}
}

// WithGroup implements slog.Handler.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name)}
}

func redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		members := make([]any, len(group))
		for i, attr := range group {
			members[i] = redactAttr(attr)
		}
		return slog.Group(a.Key, members...)
	}

	key := strings.ToLower(a.Key)
	for _, sens := range sensitiveKeys {
		if strings.Contains(key, sens) {
			return slog.String(a.Key, "[REDACTED]")
		}
	}

	// Connection strings carry the password inline; mask just the
	// credential segment so the target stays readable.
	if a.Value.Kind() == slog.KindString {
		if v := a.Value.String(); strings.HasPrefix(v, "awsock:/") {
			return slog.String(a.Key, RedactURI(v))
		}
	}

	return a
}

// RedactURI masks the user:password:session segment of an awsock
// connection string, keeping the scheme and the host:port target.
// Strings without the awsock shape are returned unchanged.
func RedactURI(uri string) string {
	rest, ok := strings.CutPrefix(uri, "awsock:/")
	if !ok {
		return uri
	}
	at := strings.LastIndexByte(rest, '@')
	if at < 0 {
		return uri
	}
	return "awsock:/[REDACTED]@" + rest[at+1:]
}
