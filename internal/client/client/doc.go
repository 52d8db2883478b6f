// Package client contains the data source the loan-desk dashboard reads from.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): pipeline,
//     borrower detail, broker info, onboarding workflow, and ApplyAction for
//     workflow commands.
//  2. MockClient, an in-process implementation backed by canned data. Every
//     call waits a configurable latency to simulate the network and honours
//     context cancellation.
//  3. Fixture loading (LoadFixture, DefaultFixture): canned data is kept as
//     YAML, embedded in the binary, and validated when loaded so malformed
//     data never reaches the state stores.
//
// # Bucket membership
//
// MockClient owns the pipeline. ApplyAction moves borrowers between buckets,
// and callers re-fetch the pipeline afterwards rather than reconciling it
// locally.
//
// # Error Handling
//
// Sentinel errors, matched with errors.Is: ErrNotFound, ErrInvalidData,
// ErrInvalidTransition, ErrUnknownAction. Context errors are returned as is.
package client
