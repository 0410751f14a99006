package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// ArchivePlan is a handle for an archive plan: the P5 configuration
// object tying directories to be archived to a media pool and a schedule.
type ArchivePlan struct {
	nsdchat.Resource
}

// NewArchivePlan binds a plan name to a connection (nil for ambient).
func NewArchivePlan(name string, conn *nsdchat.Connection) (ArchivePlan, error) {
	conn, err := resolve(conn)
	if err != nil {
		return ArchivePlan{}, err
	}
	return ArchivePlan{nsdchat.NewResource(name, conn)}, nil
}

// ArchivePlanNames lists all configured archive plans.
func ArchivePlanNames(ctx context.Context, conn *nsdchat.Connection) ([]ArchivePlan, error) {
	rs, err := resources(ctx, conn, "ArchivePlan", "names")
	if err != nil {
		return nil, err
	}
	return wrap(rs, func(r nsdchat.Resource) ArchivePlan { return ArchivePlan{r} }), nil
}

// Describe returns the human-readable plan description.
func (p ArchivePlan) Describe(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "describe")
}

// Enabled returns "1" if the plan is enabled, "0" otherwise.
func (p ArchivePlan) Enabled(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "enabled")
}

// Disabled returns "1" if the plan is disabled, "0" otherwise.
func (p ArchivePlan) Disabled(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "disabled")
}

// IncrLevel returns the incremental level of the plan.
func (p ArchivePlan) IncrLevel(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "incrlevel")
}

// Autostart returns the autostart setting of the plan.
func (p ArchivePlan) Autostart(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "autostart")
}

// Enable puts the plan back under scheduler control.
func (p ArchivePlan) Enable(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "enable")
}

// Disable takes the plan out of scheduler control.
func (p ArchivePlan) Disable(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "disable")
}

// Cancel cancels the running plan.
func (p ArchivePlan) Cancel(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "cancel")
}

// Pool returns the media pool associated with the plan, or associates the
// named pool when value is non-empty. A plan without a pool reports the
// "<empty>" sentinel; associating a pool not set up for archive operation
// is a server-side error.
func (p ArchivePlan) Pool(ctx context.Context, value string) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "pool", value)
}

// Run runs the plan immediately, optionally with a delete pass on the
// target directories, and returns the archive job.
func (p ArchivePlan) Run(ctx context.Context, deletePass bool) (Job, error) {
	deleteOption := ""
	if deletePass {
		// Passed as one token; nsdchat splits it server-side.
		deleteOption = "-delete -1"
	}
	return p.jobFrom(ctx, "ArchivePlan", p.Name(), "run", deleteOption)
}

// Stop removes the plan from the scheduler and returns "1" on success,
// "0" if the plan was not removed or is running.
func (p ArchivePlan) Stop(ctx context.Context) (string, error) {
	return scalar(ctx, p.Connection(), "ArchivePlan", p.Name(), "stop")
}

// Submit submits the plan for execution and returns the archive job. With
// now set, the plan's configured execution times are overridden and the
// next planned archive event starts immediately.
func (p ArchivePlan) Submit(ctx context.Context, now bool) (Job, error) {
	nowOption := ""
	if now {
		nowOption = "now"
	}
	return p.jobFrom(ctx, "ArchivePlan", p.Name(), "submit", nowOption)
}

// Verify re-runs the post-archive tasks (verify, clip generation and
// deletion) for files archived from client by the given job, returning
// the verify job.
func (p ArchivePlan) Verify(ctx context.Context, client Client, job Job) (Job, error) {
	return p.jobFrom(ctx, "ArchivePlan", p.Name(), "verify", client.Name(), job.Name())
}

func (p ArchivePlan) jobFrom(ctx context.Context, args ...any) (Job, error) {
	id, err := scalar(ctx, p.Connection(), args...)
	if err != nil {
		return Job{}, err
	}
	return Job{nsdchat.NewResource(id, p.Connection())}, nil
}
