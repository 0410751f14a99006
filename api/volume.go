package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// Volume is a handle for a media volume (tape or disk) registered in the
// P5 media database.
type Volume struct {
	nsdchat.Resource
}

// NewVolume binds a volume name to a connection (nil for ambient).
func NewVolume(name string, conn *nsdchat.Connection) (Volume, error) {
	conn, err := resolve(conn)
	if err != nil {
		return Volume{}, err
	}
	return Volume{nsdchat.NewResource(name, conn)}, nil
}

// VolumeNames lists all registered volumes.
func VolumeNames(ctx context.Context, conn *nsdchat.Connection) ([]Volume, error) {
	rs, err := resources(ctx, conn, "Volume", "names")
	if err != nil {
		return nil, err
	}
	return wrap(rs, func(r nsdchat.Resource) Volume { return Volume{r} }), nil
}

// Barcode returns the barcode of the volume, if any.
func (v Volume) Barcode(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "barcode")
}

// CopyOf returns the name of the volume this volume is a clone of.
func (v Volume) CopyOf(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "copyof")
}

// DateExpires returns the expiration date of the volume.
func (v Volume) DateExpires(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "dateexpires")
}

// DateUsed returns the date of last use.
func (v Volume) DateUsed(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "dateused")
}

// Enable enables the volume for further operations.
func (v Volume) Enable(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "enable")
}

// Disable excludes the volume from further operations.
func (v Volume) Disable(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "disable")
}

// Enabled returns "1" if the volume is enabled, "0" otherwise.
func (v Volume) Enabled(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "enabled")
}

// Disabled returns "1" if the volume is disabled, "0" otherwise.
func (v Volume) Disabled(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "disabled")
}

// IsOnline reports whether the volume is currently accessible by a device.
func (v Volume) IsOnline(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "isonline")
}

// Jobs lists the ids of the jobs that accessed the volume.
func (v Volume) Jobs(ctx context.Context) ([]Job, error) {
	rs, err := resources(ctx, v.Connection(), "Volume", v.Name(), "jobs")
	if err != nil {
		return nil, err
	}
	return wrapJobs(rs), nil
}

// Label returns the volume label, or sets it when value is non-empty.
func (v Volume) Label(ctx context.Context, value string) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "label", value)
}

// Location returns the off-site location, or sets it when value is
// non-empty.
func (v Volume) Location(ctx context.Context, value string) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "location", value)
}

// MediaType returns the media type of the volume.
func (v Volume) MediaType(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "mediatype")
}

// MaxSize returns the capacity of the volume in kilobytes.
func (v Volume) MaxSize(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "maxsize")
}

// Mode returns the access mode of the volume, or sets it when value is
// non-empty.
func (v Volume) Mode(ctx context.Context, value string) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "mode", value)
}

// State returns the volume state, or sets it when value is non-empty.
func (v Volume) State(ctx context.Context, value string) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "state", value)
}

// TotalSize returns the total size written to the volume in kilobytes.
func (v Volume) TotalSize(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "totalsize")
}

// Usage returns what the volume is used for (Archive or Backup).
func (v Volume) Usage(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "usage")
}

// UseCount returns how many times the volume has been used.
func (v Volume) UseCount(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "usecount")
}

// UsedSize returns the used size of the volume in kilobytes.
func (v Volume) UsedSize(ctx context.Context) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "usedsize")
}

// Inventory writes the list of files contained on this archive volume into
// outputFile on a client ("client:absolute_path", client defaulting to
// localhost) and returns the written "<client>:<output file>". Options
// name additional per-file attributes to emit, such as ppath: or size:;
// entries without a physical path yield the "<empty>" sentinel in the
// generated file. Archive volumes only.
func (v Volume) Inventory(ctx context.Context, outputFile string, options []string) (string, error) {
	return scalar(ctx, v.Connection(), "Volume", v.Name(), "inventory", outputFile, options)
}
