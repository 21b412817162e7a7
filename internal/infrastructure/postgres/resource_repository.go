package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stacksketch/stacksketch-api/internal/application/ports"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

var (
	_ repository.ResourceRepository = (*ResourceRepo)(nil)
	_ ports.PersonalResourceLister  = (*ResourceRepo)(nil)
)

// ResourceRepo implementación del puerto ResourceRepository sobre PostgreSQL.
// El ACL vive en tres columnas text[]; ApplyACLDelta muta la columna en una
// única sentencia UPDATE, así dos grants concurrentes sobre campos distintos
// del mismo recurso no se pierden.
type ResourceRepo struct {
	pool *pgxpool.Pool
}

// NewResourceRepository construye el adaptador de persistencia de recursos.
func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepo {
	return &ResourceRepo{pool: pool}
}

const resourceColumns = `id, kind, name, description, company_id, created_by,
		created_at, last_modified, can_view, can_edit, can_share,
		diagram_type, content, tech_stack, total_files`

// aclColumn traduce el nombre de campo del dominio a su columna. Devuelve ""
// para campos fuera del ACL (el caller ya valida; esto evita inyección en el
// UPDATE construido por nombre de columna).
func aclColumn(field string) string {
	switch field {
	case entity.ACLFieldView:
		return "can_view"
	case entity.ACLFieldEdit:
		return "can_edit"
	case entity.ACLFieldShare:
		return "can_share"
	default:
		return ""
	}
}

func scanResource(row pgx.Row) (*entity.Resource, error) {
	var r entity.Resource
	var companyID *string
	err := row.Scan(
		&r.ID, &r.Kind, &r.Name, &r.Description, &companyID, &r.CreatedBy,
		&r.CreatedAt, &r.LastModified,
		&r.Permissions.CanView, &r.Permissions.CanEdit, &r.Permissions.CanShare,
		&r.DiagramType, &r.Content, &r.TechStack, &r.TotalFiles,
	)
	if err != nil {
		return nil, err
	}
	if companyID != nil {
		r.CompanyID = *companyID
	}
	return &r, nil
}

// Create persiste un nuevo recurso; asigna ID si viene vacío.
func (r *ResourceRepo) Create(ctx context.Context, resource *entity.Resource) error {
	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}
	query := `
		INSERT INTO resources (` + resourceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		resource.ID, resource.Kind, resource.Name, resource.Description,
		nullableCompany(resource.CompanyID), resource.CreatedBy,
		resource.CreatedAt, resource.LastModified,
		resource.Permissions.CanView, resource.Permissions.CanEdit, resource.Permissions.CanShare,
		resource.DiagramType, resource.Content, resource.TechStack, resource.TotalFiles,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

// GetByID obtiene un recurso por ID, o (nil, nil) si no existe.
func (r *ResourceRepo) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	res, err := scanResource(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource by id: %w", err)
	}
	return res, nil
}

// ListByCompany lista los recursos del kind de la empresa en orden de creación.
func (r *ResourceRepo) ListByCompany(ctx context.Context, companyID, kind string) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources
		WHERE company_id = $1 AND kind = $2 ORDER BY created_at ASC`
	return r.queryList(ctx, query, companyID, kind)
}

// ListPersonal lista los recursos personales (sin empresa) creados por el
// usuario. Implementa el puerto PersonalResourceLister.
func (r *ResourceRepo) ListPersonal(ctx context.Context, userID, kind string) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources
		WHERE company_id IS NULL AND created_by = $1 AND kind = $2 ORDER BY created_at ASC`
	return r.queryList(ctx, query, userID, kind)
}

func (r *ResourceRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Resource, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()
	var list []*entity.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// ReplacePermissions reemplaza el ACL completo sin validar invariantes.
func (r *ResourceRepo) ReplacePermissions(ctx context.Context, id string, acl entity.ResourcePermissions) error {
	query := `
		UPDATE resources
		SET can_view = $2, can_edit = $3, can_share = $4, last_modified = now()
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, acl.CanView, acl.CanEdit, acl.CanShare)
	if err != nil {
		return fmt.Errorf("replace permissions: %w", err)
	}
	return nil
}

// ApplyACLDelta agrega o quita userID de la columna del campo en una sola
// sentencia (idempotente: array_append solo si no estaba). Devuelve el
// recurso actualizado, o (nil, nil) si no existe.
func (r *ResourceRepo) ApplyACLDelta(ctx context.Context, id, field, userID string, grant bool) (*entity.Resource, error) {
	col := aclColumn(field)
	if col == "" {
		return nil, fmt.Errorf("campo de ACL desconocido: %q", field)
	}
	query := fmt.Sprintf(`
		UPDATE resources
		SET %[1]s = CASE
			WHEN $3 THEN (CASE WHEN $2 = ANY(%[1]s) THEN %[1]s ELSE array_append(%[1]s, $2) END)
			ELSE array_remove(%[1]s, $2)
		END,
		last_modified = now()
		WHERE id = $1
		RETURNING `+resourceColumns, col)
	res, err := scanResource(r.pool.QueryRow(ctx, query, id, userID, grant))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("apply acl delta: %w", err)
	}
	return res, nil
}
