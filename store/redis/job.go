package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
)

// GetDetail retrieves a job detail by identity.
func (s *Store) GetDetail(ctx context.Context, jobID id.JobID) (*job.Detail, error) {
	fields, err := s.client.HGetAll(ctx, s.jobKey(jobID.String())).Result()
	if err != nil {
		return nil, fmt.Errorf("stride/redis: get detail %s: %w", jobID, err)
	}
	if len(fields) == 0 {
		return nil, stride.ErrJobNotFound
	}
	return fieldsToDetail(jobID, fields)
}

// PutDetail persists a job detail, replacing the stored record. The old
// hash is deleted first so keys removed from the data map do not linger.
func (s *Store) PutDetail(ctx context.Context, d *job.Detail) error {
	fields, err := detailToFields(d)
	if err != nil {
		return fmt.Errorf("stride/redis: put detail %s: %w", d.ID, err)
	}

	jID := d.ID.String()
	key := s.jobKey(jID)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.SAdd(ctx, s.jobIDsKey(), jID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("stride/redis: put detail %s: %w", d.ID, err)
	}
	return nil
}

// DeleteDetail removes a job detail by identity.
func (s *Store) DeleteDetail(ctx context.Context, jobID id.JobID) error {
	jID := jobID.String()

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.jobKey(jID))
	pipe.SRem(ctx, s.jobIDsKey(), jID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("stride/redis: delete detail %s: %w", jobID, err)
	}
	return nil
}

// ListDetails returns all persisted job details. Records whose identity
// set entry outlived the hash (concurrent delete) are skipped.
func (s *Store) ListDetails(ctx context.Context) ([]*job.Detail, error) {
	ids, err := s.client.SMembers(ctx, s.jobIDsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("stride/redis: list details: %w", err)
	}

	out := make([]*job.Detail, 0, len(ids))
	for _, raw := range ids {
		jobID, parseErr := id.ParseJobID(raw)
		if parseErr != nil {
			s.logger.Warn("skipping malformed job id", "job_id", raw)
			continue
		}
		d, getErr := s.GetDetail(ctx, jobID)
		if getErr != nil {
			if errors.Is(getErr, stride.ErrJobNotFound) {
				continue
			}
			return nil, getErr
		}
		out = append(out, d)
	}
	return out, nil
}

// detailToFields flattens a Detail into hash fields: the data map entries
// verbatim plus reserved metadata fields.
func detailToFields(d *job.Detail) (map[string]string, error) {
	fields := d.Data.Values()
	fields[fieldCluster] = d.ID.Cluster
	fields[fieldGroup] = d.ID.Group
	fields[fieldName] = d.ID.Name
	fields[fieldCreatedAt] = d.CreatedAt.UTC().Format(time.RFC3339Nano)

	summary, err := json.Marshal(d.Summary)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	fields[fieldSummary] = string(summary)
	return fields, nil
}

// fieldsToDetail rebuilds a Detail from hash fields.
func fieldsToDetail(jobID id.JobID, fields map[string]string) (*job.Detail, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("stride/redis: detail %s: parse created_at: %w", jobID, err)
	}

	summary := job.NewSummary()
	if raw := fields[fieldSummary]; raw != "" {
		if err := json.Unmarshal([]byte(raw), summary); err != nil {
			return nil, fmt.Errorf("stride/redis: detail %s: unmarshal summary: %w", jobID, err)
		}
	}

	data := make(map[string]string, len(fields))
	for k, v := range fields {
		if strings.HasPrefix(k, "__") {
			continue
		}
		data[k] = v
	}

	return &job.Detail{
		ID:        jobID,
		Data:      job.DataMapFrom(data),
		Summary:   summary,
		CreatedAt: createdAt,
	}, nil
}
