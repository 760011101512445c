// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
// The package provides:
//  1. The ContentGenerator contract: given a booking, produce a description
//     and an image reference.
//  2. GenAIGenerator, the Gemini API implementation. The text and image
//     calls run concurrently (errgroup) and are joined; the image comes back
//     as an inline data URI.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every generation failure is reported as one error matching
// common.ErrGeneration whose message is GenerationFailedMessage; the cause
// stays reachable through errors.Is for logging. Construction without an API
// key fails with ErrNoAPIKey.
//
// There is no retry and no internal timeout: callers bound Generate through
// the context if they want to.
package client
