package nsdchat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Runner executes one invocation of the nsdchat binary. It exists as an
// interface so tests can script replies without a P5 installation;
// production code uses the exec-backed implementation.
type Runner interface {
	// Run spawns bin with args, waits for it to exit and returns the
	// captured stdout and stderr together with the exit code. A non-zero
	// exit code is not an error at this level. Run returns an error only
	// when the process could not be spawned or ctx expired before the
	// process finished; in the latter case the error matches ctx.Err()
	// via errors.Is.
	Run(ctx context.Context, bin string, args []string) (stdout, stderr []byte, exitCode int, err error)
}

// execRunner runs the binary as a subprocess.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, bin string, args []string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()

	// A deadline or cancellation kills the process; report the context
	// error rather than the resulting "signal: killed".
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, nil, 0, fmt.Errorf("nsdchat: %s timed out: %w", bin, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return outBuf.Bytes(), errBuf.Bytes(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return nil, nil, 0, fmt.Errorf("nsdchat: spawn %s: %w", bin, err)
	}
	return outBuf.Bytes(), errBuf.Bytes(), 0, nil
}
