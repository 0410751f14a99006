package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// ServerInfo groups the srvinfo queries describing the P5 server a
// connection points at.
type ServerInfo struct {
	conn *nsdchat.Connection
}

// Srvinfo returns the server information surface for conn (nil for the
// ambient connection; resolution errors surface on the first query).
func Srvinfo(conn *nsdchat.Connection) ServerInfo {
	return ServerInfo{conn: conn}
}

// BuildStamp returns the build time-stamp of the P5 release.
func (s ServerInfo) BuildStamp(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "buildstamp")
}

// Address returns the IP address of the P5 host in dot notation.
func (s ServerInfo) Address(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "address")
}

// HostID returns the host ID of the P5 host as shown in the about box.
func (s ServerInfo) HostID(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "hostid")
}

// Hostname returns the host name of the P5 host.
func (s ServerInfo) Hostname(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "hostname")
}

// LexxVersion returns the P5 application version as an X.Y.Z number.
func (s ServerInfo) LexxVersion(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "lexxvers")
}

// Platform returns the OS platform of the P5 host: linux, solaris,
// windows or macosx.
func (s ServerInfo) Platform(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "platform")
}

// Port returns the TCP port of the P5 server.
func (s ServerInfo) Port(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "port")
}

// Server returns the name of the P5 server process, currently always
// lexxsrv.
func (s ServerInfo) Server(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "server")
}

// Uptime returns the seconds since the P5 server was started.
func (s ServerInfo) Uptime(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "uptime")
}

// Version returns the application server version as an X.Y number.
func (s ServerInfo) Version(ctx context.Context) (string, error) {
	return scalar(ctx, s.conn, "srvinfo", "version")
}
