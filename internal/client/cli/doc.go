// Package cli provides the interactive attendance command-line client.
//
// It wires configuration, the gRPC API client and an interactive REPL.
// Typical flow: prompt for an access token when none is configured, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Start / rotate / end a check-in session and show the active one
//   - Redeem a scanned QR payload for a roll number
//   - Query attendance by day or month
//   - Watch a session or the owner dashboard channel live
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
