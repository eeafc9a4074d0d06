// Package search finds the starting beam that energizes the most cells.
//
// # How It Works
//
// Every start is an independent simulation over the same read-only
// layout.Grid, so the search fans the starts out to a fixed pool of workers.
// Each worker runs its own beam.Simulator trace with a fresh energy.Field and
// worklist, writes the count into the slot reserved for that start, and
// hands the run to any configured Recorders. The maximum is computed once,
// after every worker has finished, so the only point where workers meet is
// the final merge.
//
// The search never stops early: all starts are evaluated, and the result
// lists every run in input order. The first failing run cancels the
// remaining work and its error is returned.
package search
