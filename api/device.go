package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// Device is a handle for a tape device: a single drive, a drive inside a
// jukebox or a drive in a virtual jukebox.
type Device struct {
	nsdchat.Resource
}

// NewDevice binds a device name to a connection (nil for ambient).
func NewDevice(name string, conn *nsdchat.Connection) (Device, error) {
	conn, err := resolve(conn)
	if err != nil {
		return Device{}, err
	}
	return Device{nsdchat.NewResource(name, conn)}, nil
}

// DeviceNames lists all single tape device resources.
func DeviceNames(ctx context.Context, conn *nsdchat.Connection) ([]Device, error) {
	rs, err := resources(ctx, conn, "Device", "names")
	if err != nil {
		return nil, err
	}
	return wrap(rs, func(r nsdchat.Resource) Device { return Device{r} }), nil
}

// Cleaning returns the device cleaning flag as "1" or "0".
func (d Device) Cleaning(ctx context.Context) (string, error) {
	return scalar(ctx, d.Connection(), "Device", d.Name(), "cleaning")
}

// SetCleaning sets the device cleaning flag.
func (d Device) SetCleaning(ctx context.Context, on bool) (string, error) {
	value := "0"
	if on {
		value = "1"
	}
	return scalar(ctx, d.Connection(), "Device", d.Name(), "cleaning", value)
}

// Inventory performs a mount inventory for the device, updating the
// internal volume database, and returns the currently loaded volume.
func (d Device) Inventory(ctx context.Context) (Volume, error) {
	name, err := scalar(ctx, d.Connection(), "Device", d.Name(), "inventory")
	if err != nil {
		return Volume{}, err
	}
	return Volume{nsdchat.NewResource(name, d.Connection())}, nil
}
