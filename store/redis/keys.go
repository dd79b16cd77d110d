package redis

// Reserved hash fields carrying record metadata alongside the job's own
// data map entries. The data map never uses these names: its well-known
// keys are all "job_"-prefixed, and double underscores mark ours.
const (
	fieldCluster   = "__cluster"
	fieldGroup     = "__group"
	fieldName      = "__name"
	fieldCreatedAt = "__created_at"
	fieldSummary   = "__summary"
)

// jobKey returns the Hash key for one job record.
func (s *Store) jobKey(jobID string) string {
	return s.prefix + ":job:" + jobID
}

// jobIDsKey returns the Set key tracking all job identities.
func (s *Store) jobIDsKey() string {
	return s.prefix + ":jobs"
}
