// Package nsdchat implements the transport and session core for talking to
// an Archiware P5 server through its nsdchat command line client.
//
// A Connection bundles credentials, the server address and a session
// identifier into an awsock connection string. Call spawns the nsdchat
// binary once per request, feeds it the connection string and the command
// tokens, and splits the reply into tokens. Most server-side failures come
// back as an empty reply; Call turns those into a *ServerError whose Reason
// is fetched with the geterror command.
//
// Connections register themselves with a Registry so that call sites in the
// api package may omit the connection argument in single-connection
// scripts. Multi-connection programs should pass connections explicitly or
// use their own Registry.
package nsdchat
