package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
)

// GetDetail retrieves a job detail by identity.
func (s *Store) GetDetail(ctx context.Context, jobID id.JobID) (*job.Detail, error) {
	m := new(detailModel)
	err := s.db.NewSelect().Model(m).Where("id = ?", jobID.String()).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, stride.ErrJobNotFound
		}
		return nil, fmt.Errorf("stride/bun: get detail %s: %w", jobID, err)
	}

	d, err := fromDetailModel(m)
	if err != nil {
		return nil, fmt.Errorf("stride/bun: get detail %s: %w", jobID, err)
	}
	return d, nil
}

// PutDetail persists a job detail. Uses ON CONFLICT to upsert so a
// re-fired job overwrites its earlier record (last writer wins).
func (s *Store) PutDetail(ctx context.Context, d *job.Detail) error {
	m, err := toDetailModel(d)
	if err != nil {
		return fmt.Errorf("stride/bun: put detail %s: %w", d.ID, err)
	}

	_, err = s.db.NewInsert().Model(m).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("summary = EXCLUDED.summary").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stride/bun: put detail %s: %w", d.ID, err)
	}
	return nil
}

// DeleteDetail removes a job detail by identity.
func (s *Store) DeleteDetail(ctx context.Context, jobID id.JobID) error {
	_, err := s.db.NewDelete().Model((*detailModel)(nil)).
		Where("id = ?", jobID.String()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stride/bun: delete detail %s: %w", jobID, err)
	}
	return nil
}

// ListDetails returns all persisted job details ordered by identity.
func (s *Store) ListDetails(ctx context.Context) ([]*job.Detail, error) {
	var models []detailModel
	err := s.db.NewSelect().Model(&models).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stride/bun: list details: %w", err)
	}

	out := make([]*job.Detail, 0, len(models))
	for i := range models {
		d, convErr := fromDetailModel(&models[i])
		if convErr != nil {
			return nil, fmt.Errorf("stride/bun: list details: %w", convErr)
		}
		out = append(out, d)
	}
	return out, nil
}
