// Package cli provides the interactive heartrisk command-line client.
//
// It wires configuration, the local SQLite store, the remote scorer and an
// interactive REPL. Typical flow: register or log in, run assessments, and
// browse the history of earlier results.
//
// Commands:
//   - register / login / logout
//   - profile: show the age and sex used for scoring
//   - assess: fill in the assessment form and show the result
//   - history: earlier assessments, most recent first
//   - delete-account: remove the account and its history
//
// Errors never terminate the REPL; they are printed as short user messages
// (see common.UserMessage). The REPL is started via App.Run(ctx), which blocks
// until the user exits.
package cli
