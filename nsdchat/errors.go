package nsdchat

import (
	"errors"
	"fmt"
)

// Sentinel errors for connection resolution.
var (
	// ErrNoConnection indicates that an ambient connection was requested
	// before any Connection had been constructed.
	ErrNoConnection = errors.New("nsdchat: no connection has been established yet, create a Connection first")
)

// ServerError is returned by Call when the nsdchat binary exits non-zero
// without producing any output. Reason holds the explanation retrieved with
// the geterror command, which the P5 server keeps for the most recent
// failed command of the session.
type ServerError struct {
	// Command is the space-joined token list that failed.
	Command string

	// Reason is the server's explanation, empty if geterror itself failed.
	Reason string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("nsdchat: command %q failed", e.Command)
	}
	return fmt.Sprintf("nsdchat: command %q failed: %s", e.Command, e.Reason)
}
