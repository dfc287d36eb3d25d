// Package client contains the outward-facing building blocks of the
// heartrisk CLI.
//
// # Overview
//
// The package provides:
//  1. Local persistence bootstrap (InitDatabase, RunMigrations): opens the
//     SQLite file through sqlx and applies the embedded goose migrations.
//  2. The Scorer contract and its XML-over-HTTP implementation (HTTPScorer),
//     which POSTs a HeartRiskRequest document and reads back <RiskScore>.
//
// # Error Handling
//
// Transport failures, non-2xx replies and unreadable bodies are reported as
// ErrUnavailable. A reply without a parsable <RiskScore> is not an error; the
// score is 0.
package client
