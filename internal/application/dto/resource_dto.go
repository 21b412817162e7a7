package dto

import "time"

// CreateResourceRequest entrada para crear un diagrama o codebase.
// Para diagramas, si Content está vacío y Prompt no, el contenido se genera
// con el puerto de IA.
type CreateResourceRequest struct {
	Kind        string   `json:"kind" validate:"required,oneof=diagram codebase"`
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	DiagramType string   `json:"diagram_type" validate:"omitempty,max=100"`
	Content     string   `json:"content"`
	Prompt      string   `json:"prompt"`
	TechStack   []string `json:"tech_stack"`
	TotalFiles  int      `json:"total_files" validate:"min=0"`
}

// ACLResponse listas de IDs de usuario con cada derecho.
type ACLResponse struct {
	CanView  []string `json:"can_view"`
	CanEdit  []string `json:"can_edit"`
	CanShare []string `json:"can_share"`
}

// ResourceResponse salida de un recurso con su ACL.
type ResourceResponse struct {
	ID           string      `json:"id"`
	Kind         string      `json:"kind"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	CompanyID    string      `json:"company_id,omitempty"`
	CreatedBy    string      `json:"created_by"`
	CreatedAt    time.Time   `json:"created_at"`
	LastModified time.Time   `json:"last_modified"`
	Permissions  ACLResponse `json:"permissions"`
	DiagramType  string      `json:"diagram_type,omitempty"`
	Content      string      `json:"content,omitempty"`
	TechStack    []string    `json:"tech_stack,omitempty"`
	TotalFiles   int         `json:"total_files,omitempty"`
}

// ResourceListResponse listado de recursos visibles.
type ResourceListResponse struct {
	Items []ResourceResponse `json:"items"`
}

// GrantAccessRequest entrada para conceder o revocar un derecho del ACL.
type GrantAccessRequest struct {
	Field  string `json:"field" validate:"required,oneof=canView canEdit canShare"`
	UserID string `json:"user_id" validate:"required"`
	Grant  bool   `json:"grant"`
}
