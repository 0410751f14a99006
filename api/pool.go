package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// Pool is a handle for a media pool grouping volumes for archive or
// backup use.
type Pool struct {
	nsdchat.Resource
}

// NewPool binds a pool name to a connection (nil for ambient).
func NewPool(name string, conn *nsdchat.Connection) (Pool, error) {
	conn, err := resolve(conn)
	if err != nil {
		return Pool{}, err
	}
	return Pool{nsdchat.NewResource(name, conn)}, nil
}

// PoolNames lists all configured media pools.
func PoolNames(ctx context.Context, conn *nsdchat.Connection) ([]Pool, error) {
	rs, err := resources(ctx, conn, "Pool", "names")
	if err != nil {
		return nil, err
	}
	return wrap(rs, func(r nsdchat.Resource) Pool { return Pool{r} }), nil
}

// PoolCreate creates a media pool. Options are passed as alternating
// "<option> <value>" tokens; supported options are usage (Archive or
// Backup), mediatype (TAPE or DISK) and blocksize. Without options the
// pool is created for Archive on TAPE. The name may not contain blanks or
// special characters; creating an existing pool is a server-side error.
func PoolCreate(ctx context.Context, conn *nsdchat.Connection, name string, options ...string) (Pool, error) {
	conn, err := resolve(conn)
	if err != nil {
		return Pool{}, err
	}
	created, err := scalar(ctx, conn, "Pool", "create", name, options)
	if err != nil {
		return Pool{}, err
	}
	return Pool{nsdchat.NewResource(created, conn)}, nil
}

// Enabled returns "1" if the pool is enabled, "0" otherwise.
func (p Pool) Enabled(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "Pool", p.Name(), "enabled")
}

// Disabled returns "1" if the pool is disabled, "0" otherwise.
func (p Pool) Disabled(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "Pool", p.Name(), "disabled")
}

// DriveCount returns the drives per stream the pool may use, or sets it
// when count is non-zero.
func (p Pool) DriveCount(ctx context.Context, count int) (string, error) {
	return scalar(ctx, p.Connection(), "Pool", p.Name(), "drivecount", count)
}

// MediaType returns the media type of the pool.
func (p Pool) MediaType(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "Pool", p.Name(), "mediatype")
}

// TotalSize returns the total capacity of the pool in kilobytes.
func (p Pool) TotalSize(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "Pool", p.Name(), "totalsize")
}

// Usage returns what the pool is used for (Archive or Backup).
func (p Pool) Usage(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "Pool", p.Name(), "usage")
}

// UsedSize returns the used size of the pool in kilobytes.
func (p Pool) UsedSize(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "Pool", p.Name(), "usedsize")
}

// Volumes lists the volumes belonging to the pool.
func (p Pool) Volumes(ctx context.Context) ([]Volume, error) {
	rs, err := resources(ctx, p.Connection(), "Pool", p.Name(), "volumes")
	if err != nil {
		return nil, err
	}
	return wrap(rs, func(r nsdchat.Resource) Volume { return Volume{r} }), nil
}
