// Package scheduler defines the collaborator contracts between a job
// engine and the owning scheduler: the Manager the completion controller
// calls to unschedule jobs and flush job data, and the Firing event a
// context is constructed from.
//
// Local is an in-process reference Manager backed by a job.Store. It
// exists so the contracts have a concrete, testable implementation; it
// does not compute firing times and does not coordinate across processes.
package scheduler
