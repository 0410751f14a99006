package nsdchat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	// portOffset is added to the configured P5 base port to reach the CLI
	// listener (config/lexxsrv.<port> serves the web GUI, <port>+1001 the
	// awsock CLI endpoint).
	portOffset = 1001

	// DefaultTimeout bounds a Call whose context carries no deadline.
	DefaultTimeout = 10 * time.Second

	// probeTimeout bounds the version query issued by Test. Connection
	// problems should surface quickly there.
	probeTimeout = 5 * time.Second

	// lastErrorTimeout bounds the reactive geterror round trip.
	lastErrorTimeout = 5 * time.Second
)

// Config holds the settings for a Connection. Zero fields are filled from
// the process-wide defaults (see Defaults and SetDefaults).
type Config struct {
	// User is the P5 account name.
	User string

	// Password is the P5 account password.
	Password string

	// Host is the address of the machine running the P5 server.
	Host string

	// Port is the base port of the P5 server. The CLI port used on the
	// wire is Port+1001, fixed at construction.
	Port int

	// InstallPath is the local P5 installation directory containing
	// bin/nsdchat.
	InstallPath string

	// SessionID tags every command of this connection so the server can
	// correlate them into one CLI session. Generated when empty.
	SessionID string
}

// Option configures a Connection beyond its Config.
type Option func(*Connection)

// WithRunner replaces the subprocess runner, letting tests script nsdchat
// replies.
func WithRunner(r Runner) Option {
	return func(c *Connection) { c.runner = r }
}

// WithRegistry makes the connection join reg instead of the
// DefaultRegistry.
func WithRegistry(reg *Registry) Option {
	return func(c *Connection) { c.registry = reg }
}

// WithLogger sets the logger used for transport diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Connection) { c.logger = l }
}

// Connection holds the session context for talking to one P5 server. All
// fields are fixed at construction: the connection string embeds the
// credentials and is computed exactly once, so rotating credentials means
// creating a new Connection.
type Connection struct {
	user        string
	password    string
	host        string
	port        int
	installPath string
	sessionID   string
	binary      string

	uriOnce sync.Once
	uri     string

	runner   Runner
	registry *Registry
	logger   *slog.Logger
}

// New creates a Connection, filling unset Config fields from the
// process-wide defaults and generating a session identifier if none is
// given. The first Connection constructed against a registry becomes that
// registry's default for ambient resolution.
func New(cfg Config, opts ...Option) *Connection {
	d := CurrentDefaults()
	if cfg.User == "" {
		cfg.User = d.User
	}
	if cfg.Password == "" {
		cfg.Password = d.Password
	}
	if cfg.Host == "" {
		cfg.Host = d.Host
	}
	if cfg.Port == 0 {
		cfg.Port = d.Port
	}
	if cfg.InstallPath == "" {
		cfg.InstallPath = d.InstallPath
	}
	if cfg.SessionID == "" {
		cfg.SessionID = NewSessionID()
	}

	c := &Connection{
		user:        cfg.User,
		password:    cfg.Password,
		host:        cfg.Host,
		port:        cfg.Port,
		installPath: cfg.InstallPath,
		sessionID:   cfg.SessionID,
		binary:      filepath.Join(cfg.InstallPath, "bin", binaryName()),
		runner:      execRunner{},
		registry:    DefaultRegistry,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.registry.adopt(c)
	return c
}

// binaryName returns the platform-specific nsdchat executable name.
func binaryName() string {
	if runtime.GOOS == "windows" {
		return "nsdchat.exe"
	}
	return "nsdchat"
}

// SessionID returns the session identifier tagging this connection's
// commands.
func (c *Connection) SessionID() string { return c.sessionID }

// Binary returns the resolved path of the nsdchat executable.
func (c *Connection) Binary() string { return c.binary }

// Host returns the configured P5 server address.
func (c *Connection) Host() string { return c.host }

// URI returns the awsock connection string passed to nsdchat with -s. It
// is computed on first use and cached for the lifetime of the Connection.
func (c *Connection) URI() string {
	c.uriOnce.Do(func() {
		c.uri = fmt.Sprintf("awsock:/%s:%s:%s@%s:%d",
			c.user, c.password, c.sessionID, c.host, c.port+portOffset)
	})
	return c.uri
}

// Call performs one synchronous round trip: it spawns nsdchat with the
// flattened command tokens and returns the reply split on single spaces.
// If ctx carries no deadline, DefaultTimeout applies.
//
// Failure surfaces in two distinct ways. A spawn failure or an expired
// timeout is returned as an error matching the underlying cause
// (errors.Is(err, context.DeadlineExceeded) for timeouts). A command the
// server rejected — nsdchat exiting non-zero with nothing on stdout — is
// returned as a *ServerError carrying the explanation fetched with
// geterror. Replies with a non-zero exit code but non-empty stdout are
// successes; some commands forward unusual exit codes on valid output.
func (c *Connection) Call(ctx context.Context, args ...any) ([]string, error) {
	tokens := Flatten(args...)

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	argv := append([]string{"-s", c.URI(), "-c"}, tokens...)
	stdout, _, exitCode, err := c.runner.Run(ctx, c.binary, argv)
	if err != nil {
		return nil, err
	}

	out := strings.TrimSpace(decodeOutput(stdout))
	if exitCode != 0 && out == "" {
		command := strings.Join(tokens, " ")
		reason := c.fetchLastError(ctx)
		c.logger.Error("P5 command failed",
			"command", command, "exit_code", exitCode, "reason", reason)
		return nil, &ServerError{Command: command, Reason: reason}
	}

	c.registry.markUsed(c)
	return strings.Split(out, " "), nil
}

// LastError retrieves the server's explanation for the most recent failed
// command of this session by issuing the geterror command. Callers holding
// an unexpectedly empty result can use it to learn why.
func (c *Connection) LastError(ctx context.Context) (string, error) {
	argv := []string{"-s", c.URI(), "-c", "geterror"}
	stdout, _, exitCode, err := c.runner.Run(ctx, c.binary, argv)
	if err != nil {
		return "", err
	}
	if exitCode != 0 {
		c.logger.Error("nsdchat geterror exited non-zero", "exit_code", exitCode)
		return "", fmt.Errorf("nsdchat: geterror exited with code %d", exitCode)
	}
	return strings.TrimSpace(decodeOutput(stdout)), nil
}

// fetchLastError is the reactive variant used on the soft-failure path.
// It runs on a fresh deadline detached from the (possibly consumed) call
// context and reduces any failure to an empty reason.
func (c *Connection) fetchLastError(ctx context.Context) string {
	lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lastErrorTimeout)
	defer cancel()
	reason, err := c.LastError(lctx)
	if err != nil {
		return ""
	}
	return reason
}

// Test probes the server with a short timeout and reports whether it is
// reachable and runs at least minVersion (compared against the reply of
// srvinfo lexxvers). An unreachable server surfaces as an error; nsdchat
// blocks until its own connect timeout when the port is filtered, so a
// deadline error here usually means a network or firewall problem.
func (c *Connection) Test(ctx context.Context, minVersion string) (bool, error) {
	tctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	tokens, err := c.Call(tctx, "srvinfo", "lexxvers")
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Error("could not connect to the P5 server, "+
				"review the connection and firewall settings",
				"host", c.host, "port", c.port+portOffset)
		}
		return false, err
	}
	return SingleValue(tokens) >= minVersion, nil
}

// Exec runs a raw command through the ambient connection of the
// DefaultRegistry.
func Exec(ctx context.Context, args ...any) ([]string, error) {
	conn, err := Ambient()
	if err != nil {
		return nil, err
	}
	return conn.Call(ctx, args...)
}

// decodeOutput interprets nsdchat output as UTF-8, falling back to
// Windows-1252 for the legacy single-byte output older servers produce.
func decodeOutput(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}
