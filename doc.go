// Package scribe is a writing assistant built on a remote block-memory agent
// server.
//
// The server (reached through the letta subpackage) owns agent memory, model
// routing, and tool execution. This package layers the writing workflow on
// top: create an agent whose persona and skills live in named memory blocks,
// then drive it through outline generation, content expansion, polishing,
// style adjustment, and topic research.
//
// # Quick Start
//
//	a := scribe.New(scribe.WithBaseURL("http://localhost:8283"))
//	if _, err := a.CreateAgent(ctx, "writer", ""); err != nil {
//	    log.Fatal(err)
//	}
//	outline, err := a.GenerateOutline(ctx, "The latest trends in AI", scribe.StructureBusiness)
//
// # Sub-packages
//
//   - [github.com/scribekit/scribe/letta] is the REST client for the agent server.
//   - [github.com/scribekit/scribe/transcript] records each operation's prompt/response pair.
package scribe
