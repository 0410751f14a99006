package nsdchat

// Resource is a lightweight handle for a server-side P5 entity: a name
// plus the connection it was observed on. It carries no lifecycle of its
// own; destroying the underlying entity, where supported at all, is an
// explicit server-side operation exposed by the typed wrappers.
type Resource struct {
	name string
	conn *Connection
}

// NewResource binds a resource name to a connection.
func NewResource(name string, conn *Connection) Resource {
	return Resource{name: name, conn: conn}
}

// Name returns the server-side resource name.
func (r Resource) Name() string { return r.name }

// Connection returns the connection the resource is bound to.
func (r Resource) Connection() *Connection { return r.conn }

// String returns the resource name.
func (r Resource) String() string { return r.name }

// Equal reports whether two handles refer to the same entity over the
// same connection.
func (r Resource) Equal(other Resource) bool {
	return r.name == other.name && r.conn == other.conn
}

// Is reports whether the handle refers to the given bare name, regardless
// of connection.
func (r Resource) Is(name string) bool { return r.name == name }
