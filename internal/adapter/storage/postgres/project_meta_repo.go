package postgres

import (
	"context"
	"errors"
	"fmt"

	"mintology-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ProjectMetaRepo implements ports.ProjectMetaRepository. It holds the
// per-project contract/wallet type pair the pricing engine consumes.
type ProjectMetaRepo struct {
	pool Pool
}

// NewProjectMetaRepo creates a new ProjectMetaRepo.
func NewProjectMetaRepo(pool Pool) *ProjectMetaRepo {
	return &ProjectMetaRepo{pool: pool}
}

// Get fetches metadata for a project. An unknown project returns nil
// with no error.
func (r *ProjectMetaRepo) Get(ctx context.Context, projectID string) (*domain.ProjectMeta, error) {
	query := `SELECT project_id, contract_type, wallet_type
		FROM project_meta WHERE project_id = $1`

	m := &domain.ProjectMeta{}
	err := r.pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID, &m.ContractType, &m.WalletType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project meta %q: %w", projectID, err)
	}
	return m, nil
}

// Upsert stores metadata for a project, replacing any previous row.
func (r *ProjectMetaRepo) Upsert(ctx context.Context, m *domain.ProjectMeta) error {
	query := `INSERT INTO project_meta (project_id, contract_type, wallet_type, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (project_id) DO UPDATE
		SET contract_type = EXCLUDED.contract_type,
			wallet_type = EXCLUDED.wallet_type,
			updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, m.ProjectID, m.ContractType, m.WalletType)
	if err != nil {
		return fmt.Errorf("upsert project meta %q: %w", m.ProjectID, err)
	}
	return nil
}
