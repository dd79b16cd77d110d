package job

import (
	"time"

	"github.com/xraph/stride/id"
)

// Detail is the durable record for one scheduled job: its identity, the
// flat data map carrying resumable state, and the append-only summary.
// The record outlives any single firing; execution contexts are
// stateless facades over it.
type Detail struct {
	ID        id.JobID
	Data      *DataMap
	Summary   *Summary
	CreatedAt time.Time
}

// NewDetail creates an empty Detail for the given identity.
func NewDetail(jobID id.JobID) *Detail {
	return &Detail{
		ID:        jobID,
		Data:      NewDataMap(),
		Summary:   NewSummary(),
		CreatedAt: time.Now().UTC(),
	}
}

// SetEndDate records the end timestamp in the data map using the given
// layout. Set only by the completion controller.
func (d *Detail) SetEndDate(t time.Time, layout string) {
	d.Data.Set(KeyEndDate, t.Format(layout))
}

// EndDate returns the recorded end timestamp, if any. The second return
// value is false when no end date has been recorded or the stored value
// does not parse with the given layout.
func (d *Detail) EndDate(layout string) (time.Time, bool) {
	raw, ok := d.Data.Get(KeyEndDate)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clone returns a deep copy of the detail. Stores clone on both read and
// write so callers never alias the persisted record.
func (d *Detail) Clone() *Detail {
	return &Detail{
		ID:        d.ID,
		Data:      d.Data.Clone(),
		Summary:   d.Summary.Clone(),
		CreatedAt: d.CreatedAt,
	}
}
