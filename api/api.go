package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// resolve returns conn, or the ambient connection when conn is nil.
func resolve(conn *nsdchat.Connection) (*nsdchat.Connection, error) {
	if conn != nil {
		return conn, nil
	}
	return nsdchat.Ambient()
}

// scalar runs a command and collapses the reply into one value.
func scalar(ctx context.Context, conn *nsdchat.Connection, args ...any) (string, error) {
	conn, err := resolve(conn)
	if err != nil {
		return "", err
	}
	tokens, err := conn.Call(ctx, args...)
	if err != nil {
		return "", err
	}
	return nsdchat.SingleValue(tokens), nil
}

// resources runs a command and returns the reply as handles, sentinels
// filtered.
func resources(ctx context.Context, conn *nsdchat.Connection, args ...any) ([]nsdchat.Resource, error) {
	conn, err := resolve(conn)
	if err != nil {
		return nil, err
	}
	tokens, err := conn.Call(ctx, args...)
	if err != nil {
		return nil, err
	}
	return nsdchat.Resources(tokens, conn), nil
}

// wrap converts generic handles into a typed slice.
func wrap[T any](rs []nsdchat.Resource, mk func(nsdchat.Resource) T) []T {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		out = append(out, mk(r))
	}
	return out
}
