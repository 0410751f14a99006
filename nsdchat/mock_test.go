package nsdchat

import (
	"context"
	"sync"
)

// mockRunner implements Runner for testing. Each Run call is recorded;
// replies are scripted through runFn or the default fields.
type mockRunner struct {
	mu    sync.Mutex
	calls [][]string

	runFn func(ctx context.Context, bin string, args []string) ([]byte, []byte, int, error)

	stdout   []byte
	stderr   []byte
	exitCode int
	err      error
}

func (m *mockRunner) Run(ctx context.Context, bin string, args []string) ([]byte, []byte, int, error) {
	m.mu.Lock()
	recorded := append([]string{bin}, args...)
	m.calls = append(m.calls, recorded)
	m.mu.Unlock()

	if m.runFn != nil {
		return m.runFn(ctx, bin, args)
	}
	return m.stdout, m.stderr, m.exitCode, m.err
}

// callCount returns how many times Run was invoked.
func (m *mockRunner) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// call returns the argv of the i-th recorded invocation.
func (m *mockRunner) call(i int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[i]
}

// testConn builds a Connection wired to a private registry and the given
// runner, with fixed credentials so URIs are predictable.
func testConn(r Runner) (*Connection, *Registry) {
	reg := NewRegistry()
	conn := New(Config{
		User:        "admin",
		Password:    "secret",
		Host:        "p5.example.com",
		Port:        8000,
		InstallPath: "/usr/local/aw",
		SessionID:   "sess1",
	}, WithRunner(r), WithRegistry(reg))
	return conn, reg
}
