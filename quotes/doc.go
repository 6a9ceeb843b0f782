// Package quotes generates motivational quotes with a hosted model, stores
// them in dynamodb, and serves one at random.
//
// Records are append-only: the Generator is the only writer and the Reader
// never mutates what it scans.
package quotes
