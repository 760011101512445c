// Package cli provides the interactive carbonnft command-line client.
//
// The REPL is a thin view over services.Orchestrator: it prompts for a
// wallet name and for bookings, shows the generated preview, mints it, and
// browses the wallet's collection. All state lives in the orchestrator.
//
// Start it with App.Run(ctx), which blocks until the user exits or input ends.
// See runREPL for the command list.
package cli
