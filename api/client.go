package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// Client is a handle for a P5 client resource: a computer running the P5
// client software that the server can archive, back up, restore and
// synchronize. The CLI offers read access only; clients are configured
// through the P5 web GUI.
type Client struct {
	nsdchat.Resource
}

// NewClient binds a client name to a connection (nil for ambient).
func NewClient(name string, conn *nsdchat.Connection) (Client, error) {
	conn, err := resolve(conn)
	if err != nil {
		return Client{}, err
	}
	return Client{nsdchat.NewResource(name, conn)}, nil
}

// ClientNames lists all configured client resources.
func ClientNames(ctx context.Context, conn *nsdchat.Connection) ([]Client, error) {
	rs, err := resources(ctx, conn, "Client", "names")
	if err != nil {
		return nil, err
	}
	return wrap(rs, func(r nsdchat.Resource) Client { return Client{r} }), nil
}

// Describe returns the human-readable client description.
func (c Client) Describe(ctx context.Context) (string, error) {
	return scalar(ctx, c.Connection(), "Client", c.Name(), "describe")
}

// Hostname returns the host name or IP address of the client.
func (c Client) Hostname(ctx context.Context) (string, error) {
	return scalar(ctx, c.Connection(), "Client", c.Name(), "hostname")
}

// IsThin returns "1" if the client is of type Workstation, "0" for type
// Server.
func (c Client) IsThin(ctx context.Context) (string, error) {
	return scalar(ctx, c.Connection(), "Client", c.Name(), "isthin")
}

// Port returns the configured TCP port of the client.
func (c Client) Port(ctx context.Context) (string, error) {
	return scalar(ctx, c.Connection(), "Client", c.Name(), "port")
}

// Ping tests the connection to the client and returns the server's verdict
// as a code: "1" ping OK, "-1" network problem, "-2" wrong user name or
// password, "-3" client disabled, "-4" wrong client version. The timeout
// is in seconds; zero keeps the server default of 600.
func (c Client) Ping(ctx context.Context, timeout int) (string, error) {
	return scalar(ctx, c.Connection(), "Client", c.Name(), "ping", timeout)
}
