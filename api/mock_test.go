package api

import (
	"context"
	"sync"

	"github.com/awtools/go-p5/nsdchat"
)

// mockRunner implements nsdchat.Runner for testing, recording every argv
// and replying with a scripted stdout.
type mockRunner struct {
	mu     sync.Mutex
	calls  [][]string
	stdout []byte

	runFn func(ctx context.Context, bin string, args []string) ([]byte, []byte, int, error)
}

func (m *mockRunner) Run(ctx context.Context, bin string, args []string) ([]byte, []byte, int, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string{bin}, args...))
	m.mu.Unlock()

	if m.runFn != nil {
		return m.runFn(ctx, bin, args)
	}
	return m.stdout, nil, 0, nil
}

// tokens returns the command tokens (everything after -c) of the i-th
// recorded invocation.
func (m *mockRunner) tokens(i int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	argv := m.calls[i]
	for j, a := range argv {
		if a == "-c" {
			return argv[j+1:]
		}
	}
	return nil
}

// testConn builds a Connection wired to a private registry and the given
// mock runner.
func testConn(m *mockRunner) *nsdchat.Connection {
	return nsdchat.New(nsdchat.Config{
		User:        "admin",
		Password:    "secret",
		Host:        "p5.example.com",
		Port:        8000,
		InstallPath: "/usr/local/aw",
		SessionID:   "sess1",
	}, nsdchat.WithRunner(m), nsdchat.WithRegistry(nsdchat.NewRegistry()))
}
