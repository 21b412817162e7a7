package entity

import (
	"slices"
	"time"
)

// Kinds de recursos compartibles.
const (
	KindDiagram  = "diagram"
	KindCodebase = "codebase"
)

// Campos del ACL sobre los que se puede conceder/revocar acceso.
const (
	ACLFieldView  = "canView"
	ACLFieldEdit  = "canEdit"
	ACLFieldShare = "canShare"
)

// ValidKind informa si el kind es uno de los soportados.
func ValidKind(kind string) bool {
	return kind == KindDiagram || kind == KindCodebase
}

// ValidACLField informa si el campo pertenece al ACL.
func ValidACLField(field string) bool {
	return field == ACLFieldView || field == ACLFieldEdit || field == ACLFieldShare
}

// ResourcePermissions es el ACL de un recurso: listas de IDs de usuario
// con derecho de ver, editar y re-compartir.
type ResourcePermissions struct {
	CanView  []string
	CanEdit  []string
	CanShare []string
}

// Clone devuelve una copia profunda del ACL (los slices no se comparten).
func (p ResourcePermissions) Clone() ResourcePermissions {
	return ResourcePermissions{
		CanView:  slices.Clone(p.CanView),
		CanEdit:  slices.Clone(p.CanEdit),
		CanShare: slices.Clone(p.CanShare),
	}
}

// FieldSet devuelve un puntero a la lista del campo indicado, o nil si el
// campo no existe.
func (p *ResourcePermissions) FieldSet(field string) *[]string {
	switch field {
	case ACLFieldView:
		return &p.CanView
	case ACLFieldEdit:
		return &p.CanEdit
	case ACLFieldShare:
		return &p.CanShare
	default:
		return nil
	}
}

// Apply agrega o quita userID del campo indicado. Es idempotente: aplicar dos
// veces la misma operación deja el mismo conjunto, sin duplicados.
func (p *ResourcePermissions) Apply(field, userID string, grant bool) {
	set := p.FieldSet(field)
	if set == nil {
		return
	}
	has := slices.Contains(*set, userID)
	switch {
	case grant && !has:
		*set = append(*set, userID)
	case !grant && has:
		*set = slices.DeleteFunc(*set, func(id string) bool { return id == userID })
	}
}

// Resource es un recurso enterprise compartible (diagrama o codebase),
// acotado a una empresa y con ACL propio. El payload (contenido del diagrama,
// metadatos del codebase) es opaco para el control de acceso.
type Resource struct {
	ID           string
	Kind         string // diagram, codebase
	Name         string
	Description  string
	CompanyID    string
	CreatedBy    string
	CreatedAt    time.Time
	LastModified time.Time
	Permissions  ResourcePermissions

	// Payload de diagrama
	DiagramType string // Sequence Diagram, Component Diagram, ...
	Content     string // fuente mermaid generada

	// Payload de codebase
	TechStack  []string
	TotalFiles int
}
