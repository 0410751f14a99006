// Command p5ctl issues raw nsdchat commands against an Archiware P5
// server.
//
// Password can be provided via:
//   - --pass flag (least secure, visible in process list)
//   - P5_PASSWORD environment variable (recommended)
//   - stdin prompt (if neither flag nor env var is set)
//
// Usage:
//
//	p5ctl [flags] <token>...
//
// Examples:
//
//	# List jobs
//	export P5_PASSWORD='secret'
//	p5ctl --host p5server --user admin Job names
//
//	# Query a volume label
//	p5ctl --host p5server --user admin Volume vol001 label
//
//	# Probe reachability and minimum version
//	p5ctl --host p5server --user admin --test --min-version 7.0
//
//	# Load connection defaults from a TOML file
//	p5ctl --config ~/.p5ctl.toml Job running
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	p5log "github.com/awtools/go-p5/internal/log"
	"github.com/awtools/go-p5/nsdchat"
)

func main() {
	host := flag.String("host", "", "P5 server address (default from config)")
	port := flag.Int("port", 0, "P5 base port; the CLI talks to port+1001 (default from config)")
	user := flag.String("user", "", "P5 account name (default from config)")
	pass := flag.String("pass", "", "P5 account password (use P5_PASSWORD env var instead)")
	installPath := flag.String("path", "", "P5 installation directory containing bin/nsdchat")
	session := flag.String("session", "", "session identifier (default: fresh per invocation)")
	configFile := flag.String("config", "", "TOML file with connection defaults")
	timeout := flag.Duration("timeout", nsdchat.DefaultTimeout, "per-command timeout")
	test := flag.Bool("test", false, "probe the server instead of running a command")
	minVersion := flag.String("min-version", "", "minimum server version for --test")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "write logs to this file (rotated) instead of stderr")
	flag.Parse()

	logger, closeLog, err := setupLogging(*logLevel, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "p5ctl:", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if *configFile != "" {
		if _, err := nsdchat.LoadDefaults(*configFile); err != nil {
			fmt.Fprintln(os.Stderr, "p5ctl:", err)
			os.Exit(1)
		}
	}

	if err := run(*host, *port, *user, *pass, *installPath, *session,
		*timeout, *test, *minVersion, flag.Args(), logger); err != nil {
		fmt.Fprintln(os.Stderr, "p5ctl:", err)
		os.Exit(1)
	}
}

func run(host string, port int, user, pass, installPath, session string,
	timeout time.Duration, test bool, minVersion string, tokens []string,
	logger *slog.Logger) error {

	if !test && len(tokens) == 0 {
		return errors.New("no command given, run with --help for usage")
	}

	password, err := resolvePassword(pass)
	if err != nil {
		return err
	}

	if session == "" {
		// One logical session per invocation keeps geterror replies
		// scoped to the commands this run issued.
		session = "p5ctl-" + uuid.NewString()
	}

	conn := nsdchat.New(nsdchat.Config{
		User:        user,
		Password:    password,
		Host:        host,
		Port:        port,
		InstallPath: installPath,
		SessionID:   session,
	}, nsdchat.WithLogger(logger))

	logger.Debug("connecting", "uri", p5log.RedactURI(conn.URI()), "binary", conn.Binary())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if test {
		ok, err := conn.Test(ctx, minVersion)
		if err != nil {
			return fmt.Errorf("server probe failed: %w", err)
		}
		if !ok {
			return fmt.Errorf("server version below %s", minVersion)
		}
		fmt.Println("ok")
		return nil
	}

	args := make([]any, len(tokens))
	for i, tok := range tokens {
		args[i] = tok
	}
	reply, err := conn.Call(ctx, args...)
	if err != nil {
		var serverErr *nsdchat.ServerError
		if errors.As(err, &serverErr) && serverErr.Reason != "" {
			return fmt.Errorf("server rejected %q: %s", serverErr.Command, serverErr.Reason)
		}
		return err
	}

	fmt.Println(strings.Join(reply, " "))
	return nil
}

// resolvePassword applies the flag > environment > prompt chain.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("P5_PASSWORD"); env != "" {
		return env, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Non-interactive invocation without a password falls back to
		// the configured default.
		return "", nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

// setupLogging builds the redacting logger, optionally backed by a
// rotated file.
func setupLogging(level, file string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("unknown log level %q", level)
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if file != "" {
		rf, err := p5log.NewRotatingFile(file, 5*1024*1024, 3)
		if err != nil {
			return nil, nil, err
		}
		w = rf
		closeLog = func() { _ = rf.Close() }
	}

	handler := p5log.NewRedactingHandler(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	return slog.New(handler), closeLog, nil
}
