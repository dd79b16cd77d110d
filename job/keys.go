package job

// Well-known keys in the persisted job data map.
const (
	// KeyStep holds the current resumption step as a decimal string.
	// Absent means the job has not started.
	KeyStep = "job_step"

	// KeyStatus holds the persisted name of the job status.
	KeyStatus = "job_status"

	// KeyStatusMessage holds the free-text diagnostic, optionally
	// prefixed by a formatted failure trace.
	KeyStatusMessage = "job_status_message"

	// KeyAwaitingAction holds "true" while the job is paused pending an
	// external actor. Absent reads as false.
	KeyAwaitingAction = "job_awaiting_action"

	// KeyEndDate holds the formatted end timestamp. Set only by the
	// completion controller.
	KeyEndDate = "job_end_date"

	// KeyCreatedDate holds the formatted creation timestamp.
	KeyCreatedDate = "job_created_date"

	// KeyOwner holds the identity of the engine that scheduled the job.
	KeyOwner = "job_owner"
)
