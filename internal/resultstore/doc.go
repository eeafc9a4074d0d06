// Package resultstore provides the sinks that search runs are recorded into.
//
// # Purpose
//
// A search hands every finished run to its Recorders from worker goroutines.
// The stores here implement search.Recorder and make those runs available
// afterwards:
//
//   - Memory: an ephemeral, thread-safe store for a single process. It uses
//     sync.Map because workers write to independent keys (one per start)
//     and nothing reads until the search is over.
//   - SQLite: a persistent store backed by modernc.org/sqlite, so results of
//     several searches over time can be kept and compared. Every search gets
//     its own run id.
package resultstore
