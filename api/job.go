package api

import (
	"context"

	"github.com/awtools/go-p5/nsdchat"
)

// Job is a handle for a job tracked by the P5 server. Jobs are created
// server-side, for instance when a plan is submitted; information about
// them is held indefinitely and can be queried at any time.
type Job struct {
	nsdchat.Resource
}

// NewJob binds a job id to a connection (nil for ambient).
func NewJob(name string, conn *nsdchat.Connection) (Job, error) {
	conn, err := resolve(conn)
	if err != nil {
		return Job{}, err
	}
	return Job{nsdchat.NewResource(name, conn)}, nil
}

func wrapJobs(rs []nsdchat.Resource) []Job {
	return wrap(rs, func(r nsdchat.Resource) Job { return Job{r} })
}

// JobNames lists all currently scheduled or running jobs.
func JobNames(ctx context.Context, conn *nsdchat.Connection) ([]Job, error) {
	rs, err := resources(ctx, conn, "Job", "names")
	if err != nil {
		return nil, err
	}
	return wrapJobs(rs), nil
}

// JobsPending lists the jobs scheduled for execution but not yet running.
func JobsPending(ctx context.Context, conn *nsdchat.Connection) ([]Job, error) {
	rs, err := resources(ctx, conn, "Job", "pending")
	if err != nil {
		return nil, err
	}
	return wrapJobs(rs), nil
}

// JobsRunning lists the jobs currently being executed.
func JobsRunning(ctx context.Context, conn *nsdchat.Connection) ([]Job, error) {
	rs, err := resources(ctx, conn, "Job", "running")
	if err != nil {
		return nil, err
	}
	return wrapJobs(rs), nil
}

// JobsCompleted lists the jobs completed within the last lastDays days;
// zero means today.
func JobsCompleted(ctx context.Context, conn *nsdchat.Connection, lastDays int) ([]Job, error) {
	rs, err := resources(ctx, conn, "Job", "completed", lastDays)
	if err != nil {
		return nil, err
	}
	return wrapJobs(rs), nil
}

// JobsFailed lists the jobs that failed within the last lastDays days;
// zero means today.
func JobsFailed(ctx context.Context, conn *nsdchat.Connection, lastDays int) ([]Job, error) {
	rs, err := resources(ctx, conn, "Job", "failed", lastDays)
	if err != nil {
		return nil, err
	}
	return wrapJobs(rs), nil
}

// JobsWarning lists the jobs that completed with warnings within the last
// lastDays days; zero means today.
func JobsWarning(ctx context.Context, conn *nsdchat.Connection, lastDays int) ([]Job, error) {
	rs, err := resources(ctx, conn, "Job", "warning", lastDays)
	if err != nil {
		return nil, err
	}
	return wrapJobs(rs), nil
}

// Completion returns the completion code of a completed job: success,
// exception (parts of a parallel job failed) or failure.
func (j Job) Completion(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "completion")
}

// Describe returns the job description as shown in the P5 job monitor.
func (j Job) Describe(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "describe")
}

// Label returns the label of the job.
func (j Job) Label(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "label")
}

// Protocol returns the job protocol, optionally restricted to a single
// archive entry (empty for the whole protocol).
func (j Job) Protocol(ctx context.Context, archiveEntry string) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "protocol", archiveEntry)
}

// Report returns the job report text.
func (j Job) Report(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "report")
}

// ResourceGroup returns the resource group the job belongs to.
func (j Job) ResourceGroup(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "resourcegroup")
}

// ResourceName returns the name of the resource that spawned the job.
func (j Job) ResourceName(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "resourcename")
}

// Status returns the current job status.
func (j Job) Status(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "status")
}

// RunAt returns the scheduled execution time of the job.
func (j Job) RunAt(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "runat")
}

// Cancel cancels the scheduled job.
func (j Job) Cancel(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "cancel")
}

// Stop stops the running job.
func (j Job) Stop(ctx context.Context) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "stop")
}

// Inventory writes the list of files saved by the job into outputFile on a
// client ("client:absolute_path", client defaulting to localhost) and
// returns the written "<client>:<output file>". Options name additional
// per-file attributes to emit, such as size: or btime:.
func (j Job) Inventory(ctx context.Context, outputFile string, options []string) (string, error) {
	return scalar(ctx, j.Connection(), "Job", j.Name(), "inventory", outputFile, options)
}
