// Package api exposes the P5 resource surface as typed wrappers over the
// nsdchat transport: srvinfo queries, Client, Job, Volume, Pool,
// ArchivePlan, Device and License.
//
// Every function and method maps one-to-one onto a CLI command; no state is
// kept on the client side. Operations come in two shapes chosen by their
// signature: scalar queries return a collapsed string, list queries return
// typed handles with the protocol's "<empty>" and "unknown" sentinels
// already filtered out.
//
// All entry points accept an explicit *nsdchat.Connection; passing nil
// resolves the ambient connection of nsdchat.DefaultRegistry, which fails
// with nsdchat.ErrNoConnection if no connection was ever created.
package api
