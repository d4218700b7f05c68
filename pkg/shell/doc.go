// Package shell runs the parse pipeline on behalf of a user.
//
// Evaluate lexes and parses one submitted line and returns either the AST
// dump or a presentation error; it never panics and never ends a session.
// RunPlain is a line-oriented loop over any reader and writer, used when no
// terminal UI is wanted. CheckFile parses every non-empty line of a file as
// an independent statement, concurrently, and reports results in line order.
package shell
