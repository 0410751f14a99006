package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// LicenseResource is a handle for an installed license component. The
// returned names are internal building blocks that combine into product
// licenses; the set summarizes installed license resources rather than
// enumerating exact license counts.
type LicenseResource struct {
	nsdchat.Resource
}

// LicenseResources lists the names of all License resources.
func LicenseResources(ctx context.Context, conn *nsdchat.Connection) ([]LicenseResource, error) {
	rs, err := resources(ctx, conn, "License", "resources")
	if err != nil {
		return nil, err
	}
	return wrap(rs, func(r nsdchat.Resource) LicenseResource { return LicenseResource{r} }), nil
}

// Free returns the number of free licenses for the resource: "-1" for
// unlimited (including trial and uncountable licenses), "0" for none, or
// a positive count.
func (l LicenseResource) Free(ctx context.Context) (string, error) {
	return scalar(ctx, l.Connection(), "License", l.Name(), "free")
}
