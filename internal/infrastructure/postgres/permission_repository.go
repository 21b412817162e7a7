package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación del puerto PermissionRepository sobre
// PostgreSQL. El merge se resuelve en un único INSERT ... ON CONFLICT con
// COALESCE por columna, de modo que es atómico por usuario: dos merges
// concurrentes nunca se pisan flags que el otro no tocó.
type PermissionRepo struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository construye el adaptador de persistencia de flags.
func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepo {
	return &PermissionRepo{pool: pool}
}

const permColumns = `can_view_diagrams, can_generate_diagrams, can_view_codebases,
		can_upload_codebases, can_view_security, can_view_devops,
		can_view_query_engine, can_manage_team`

// Get devuelve los flags del usuario, o (nil, nil) si no tiene registro.
func (r *PermissionRepo) Get(ctx context.Context, userID string) (*entity.FeaturePermissions, error) {
	query := `SELECT ` + permColumns + ` FROM user_permissions WHERE user_id = $1`
	var p entity.FeaturePermissions
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.CanViewDiagrams, &p.CanGenerateDiagrams, &p.CanViewCodebases,
		&p.CanUploadCodebases, &p.CanViewSecurity, &p.CanViewDevOps,
		&p.CanViewQueryEngine, &p.CanManageTeam,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permissions: %w", err)
	}
	return &p, nil
}

// Merge aplica el patch en una sola sentencia. Los parámetros nil dejan la
// columna como estaba (COALESCE); si no había fila, los nil arrancan en false
// (default-deny).
func (r *PermissionRepo) Merge(ctx context.Context, userID string, patch entity.FeaturePermissionsPatch) (entity.FeaturePermissions, error) {
	query := `
		INSERT INTO user_permissions (user_id, ` + permColumns + `)
		VALUES ($1,
			COALESCE($2, false), COALESCE($3, false), COALESCE($4, false),
			COALESCE($5, false), COALESCE($6, false), COALESCE($7, false),
			COALESCE($8, false), COALESCE($9, false))
		ON CONFLICT (user_id) DO UPDATE SET
			can_view_diagrams     = COALESCE($2, user_permissions.can_view_diagrams),
			can_generate_diagrams = COALESCE($3, user_permissions.can_generate_diagrams),
			can_view_codebases    = COALESCE($4, user_permissions.can_view_codebases),
			can_upload_codebases  = COALESCE($5, user_permissions.can_upload_codebases),
			can_view_security     = COALESCE($6, user_permissions.can_view_security),
			can_view_devops       = COALESCE($7, user_permissions.can_view_devops),
			can_view_query_engine = COALESCE($8, user_permissions.can_view_query_engine),
			can_manage_team       = COALESCE($9, user_permissions.can_manage_team)
		RETURNING ` + permColumns
	var p entity.FeaturePermissions
	err := r.pool.QueryRow(ctx, query, userID,
		patch.CanViewDiagrams, patch.CanGenerateDiagrams, patch.CanViewCodebases,
		patch.CanUploadCodebases, patch.CanViewSecurity, patch.CanViewDevOps,
		patch.CanViewQueryEngine, patch.CanManageTeam,
	).Scan(
		&p.CanViewDiagrams, &p.CanGenerateDiagrams, &p.CanViewCodebases,
		&p.CanUploadCodebases, &p.CanViewSecurity, &p.CanViewDevOps,
		&p.CanViewQueryEngine, &p.CanManageTeam,
	)
	if err != nil {
		return entity.FeaturePermissions{}, fmt.Errorf("merge permissions: %w", err)
	}
	return p, nil
}
