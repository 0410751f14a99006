package nsdchat

import "sync"

// Registry tracks the connections available for ambient resolution, i.e.
// for call sites that do not pass an explicit *Connection. It holds the
// default connection (the first one constructed against this registry) and
// the connection most recently used for a successful call.
//
// A single package-level DefaultRegistry serves the common one-connection
// script; programs juggling several servers or sessions should create their
// own Registry per logical context, or pass connections explicitly
// everywhere and ignore ambient resolution entirely.
type Registry struct {
	mu         sync.Mutex
	def        *Connection
	last       *Connection
	preferLast bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// DefaultRegistry is the registry new Connections join unless constructed
// with WithRegistry.
var DefaultRegistry = NewRegistry()

// SetPreferLast selects which connection Resolve returns: when enabled and
// some call has succeeded, the most recently used connection wins over the
// default. Enable this only for single-threaded scripts whose subroutines
// open their own sessions.
func (r *Registry) SetPreferLast(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferLast = v
}

// Default returns the registry's default connection, or nil if none has
// been constructed yet.
func (r *Registry) Default() *Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.def
}

// Last returns the connection of the most recent successful call, or nil.
func (r *Registry) Last() *Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Resolve returns the ambient connection according to the prefer-last
// policy. It fails with ErrNoConnection if no Connection has ever been
// constructed against this registry.
func (r *Registry) Resolve() (*Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.preferLast && r.last != nil {
		return r.last, nil
	}
	if r.def != nil {
		return r.def, nil
	}
	return nil, ErrNoConnection
}

// adopt records c as the default connection if none is set yet.
func (r *Registry) adopt(c *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.def == nil {
		r.def = c
	}
}

// markUsed records c as the most recently used connection.
func (r *Registry) markUsed(c *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = c
}

// PreferLastConnection toggles the prefer-last policy on the
// DefaultRegistry.
func PreferLastConnection(v bool) { DefaultRegistry.SetPreferLast(v) }

// Ambient resolves the ambient connection from the DefaultRegistry.
func Ambient() (*Connection, error) { return DefaultRegistry.Resolve() }
