// Package cli provides the interactive unielect command-line client.
//
// It wires configuration, the local session store and the gRPC client into
// a REPL. Staff log in with email and password; the access token is kept in
// a SQLite file so the next run starts logged in until the token expires.
// Voters need no account: "vote" asks for the credential they received and
// walks them through the ballot.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
