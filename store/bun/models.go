package bunstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
)

type detailModel struct {
	bun.BaseModel `bun:"table:stride_jobs"`

	ID        string    `bun:"id,pk"`
	Cluster   string    `bun:"cluster,notnull"`
	JobGroup  string    `bun:"job_group,notnull"`
	JobName   string    `bun:"job_name,notnull"`
	Data      []byte    `bun:"data,notnull,type:jsonb"`
	Summary   []byte    `bun:"summary,notnull,type:jsonb"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func toDetailModel(d *job.Detail) (*detailModel, error) {
	data, err := json.Marshal(d.Data.Values())
	if err != nil {
		return nil, fmt.Errorf("marshal data map: %w", err)
	}
	summary, err := json.Marshal(d.Summary)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return &detailModel{
		ID:        d.ID.String(),
		Cluster:   d.ID.Cluster,
		JobGroup:  d.ID.Group,
		JobName:   d.ID.Name,
		Data:      data,
		Summary:   summary,
		CreatedAt: d.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func fromDetailModel(m *detailModel) (*job.Detail, error) {
	var data map[string]string
	if len(m.Data) > 0 {
		if err := json.Unmarshal(m.Data, &data); err != nil {
			return nil, fmt.Errorf("unmarshal data map: %w", err)
		}
	}

	summary := job.NewSummary()
	if len(m.Summary) > 0 {
		if err := json.Unmarshal(m.Summary, summary); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
	}

	return &job.Detail{
		ID:        id.NewJobID(m.Cluster, m.JobGroup, m.JobName),
		Data:      job.DataMapFrom(data),
		Summary:   summary,
		CreatedAt: m.CreatedAt,
	}, nil
}
