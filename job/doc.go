// Package job defines the durable job record (Detail), its flat
// string-keyed data map, the append-only summary of status updates, and
// the persistence contract (Store) that backends implement.
//
// The data map is the single source of truth for a job's resumable state.
// Everything the execution context tracks (step, status, messages,
// awaiting flag, end date) lives in it as strings, so that any durable
// string-keyed mapping can carry it. Values are written verbatim and
// validated on read; a truncated or corrupted write is caught the next
// time the value is used, not silently repaired.
package job
