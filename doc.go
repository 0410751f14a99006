// Package p5 provides Go bindings for the Archiware P5 command line
// interface ("nsdchat").
//
// Every operation is executed by spawning the nsdchat executable that ships
// with a P5 installation and handing it a session-tagged connection string
// plus a flat list of command tokens. The P5 server does all the real work;
// this module is the client-side glue that builds commands, runs the binary
// and parses its whitespace-delimited replies.
//
// # Architecture
//
// The library is organized into layers:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  cmd/p5ctl     Command line front end                   │
//	├─────────────────────────────────────────────────────────┤
//	│  api/          Typed resource wrappers (Job, Volume,…)  │
//	├─────────────────────────────────────────────────────────┤
//	│  nsdchat/      Connection, session and subprocess       │
//	│                transport                                │
//	├─────────────────────────────────────────────────────────┤
//	│  nsdchat (binary)  External P5 control client           │
//	└─────────────────────────────────────────────────────────┘
//
// # Quick Start
//
//	conn := nsdchat.New(nsdchat.Config{
//	    User:     "admin",
//	    Password: "secret",
//	    Host:     "p5server.example.com",
//	})
//	ok, err := conn.Test(ctx, "7.0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	jobs, err := api.JobNames(ctx, conn)
package p5
