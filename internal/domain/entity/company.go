package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// Inmutable después de su creación para el subsistema de control de acceso.
type Company struct {
	ID        string
	Name      string
	Industry  string
	Size      string // startup, smb, enterprise
	CreatedAt time.Time
}
