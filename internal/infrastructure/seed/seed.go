// Package seed implementa el cargador bulk: una hidratación one-shot del
// directorio de tenants, los flags y los recursos desde un documento JSON
// (formato heredado del sample-data del producto). El core no depende del
// formato más allá de "listas de Company / User / Resource".
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Document es el documento de seed completo.
type Document struct {
	Companies []CompanyRecord  `json:"companies"`
	Users     []UserRecord     `json:"users"`
	Resources []ResourceRecord `json:"resources"`
}

// CompanyRecord empresa a hidratar.
type CompanyRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
}

// UserRecord usuario a hidratar. Password viaja en claro en el documento de
// desarrollo y se hashea al cargar. Permissions nil = sin registro de flags
// (caso de los usuarios regular).
type UserRecord struct {
	ID          string           `json:"id"`
	CompanyID   string           `json:"company_id"`
	Email       string           `json:"email"`
	Password    string           `json:"password"`
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	Permissions *PermissionFlags `json:"permissions"`
}

// PermissionFlags flags de features en el documento.
type PermissionFlags struct {
	CanViewDiagrams     bool `json:"canViewDiagrams"`
	CanGenerateDiagrams bool `json:"canGenerateDiagrams"`
	CanViewCodebases    bool `json:"canViewCodebases"`
	CanUploadCodebases  bool `json:"canUploadCodebases"`
	CanViewSecurity     bool `json:"canViewSecurity"`
	CanViewDevOps       bool `json:"canViewDevOps"`
	CanViewQueryEngine  bool `json:"canViewQueryEngine"`
	CanManageTeam       bool `json:"canManageTeam"`
}

// ACLRecord ACL de un recurso en el documento.
type ACLRecord struct {
	CanView  []string `json:"can_view"`
	CanEdit  []string `json:"can_edit"`
	CanShare []string `json:"can_share"`
}

// ResourceRecord recurso a hidratar.
type ResourceRecord struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CompanyID   string    `json:"company_id"`
	CreatedBy   string    `json:"created_by"`
	Permissions ACLRecord `json:"permissions"`
	DiagramType string    `json:"diagram_type"`
	Content     string    `json:"content"`
	TechStack   []string  `json:"tech_stack"`
	TotalFiles  int       `json:"total_files"`
}

// LoadFile lee y parsea el documento de seed.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer seed: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsear seed: %w", err)
	}
	return &doc, nil
}

// Hydrator inserta el documento en los repositorios.
type Hydrator struct {
	companyRepo  repository.CompanyRepository
	userRepo     repository.UserRepository
	permRepo     repository.PermissionRepository
	resourceRepo repository.ResourceRepository
}

// NewHydrator construye el hidratador con los puertos de destino.
func NewHydrator(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	permRepo repository.PermissionRepository,
	resourceRepo repository.ResourceRepository,
) *Hydrator {
	return &Hydrator{
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		permRepo:     permRepo,
		resourceRepo: resourceRepo,
	}
}

func boolPtr(b bool) *bool { return &b }

func toPatch(f *PermissionFlags) entity.FeaturePermissionsPatch {
	return entity.FeaturePermissionsPatch{
		CanViewDiagrams:     boolPtr(f.CanViewDiagrams),
		CanGenerateDiagrams: boolPtr(f.CanGenerateDiagrams),
		CanViewCodebases:    boolPtr(f.CanViewCodebases),
		CanUploadCodebases:  boolPtr(f.CanUploadCodebases),
		CanViewSecurity:     boolPtr(f.CanViewSecurity),
		CanViewDevOps:       boolPtr(f.CanViewDevOps),
		CanViewQueryEngine:  boolPtr(f.CanViewQueryEngine),
		CanManageTeam:       boolPtr(f.CanManageTeam),
	}
}

// Hydrate inserta empresas, usuarios, flags y recursos, en ese orden.
// El caller debe acotar ctx con timeout; ante fallo, lo esperado es que la
// aplicación arranque con el estado vacío/degradado en lugar de caerse.
func (h *Hydrator) Hydrate(ctx context.Context, doc *Document) error {
	for _, c := range doc.Companies {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		err := h.companyRepo.Create(ctx, &entity.Company{
			ID:        c.ID,
			Name:      c.Name,
			Industry:  c.Industry,
			Size:      c.Size,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("seed company %s: %w", c.Name, err)
		}
	}

	for _, u := range doc.Users {
		if u.ID == "" {
			u.ID = uuid.New().String()
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		now := time.Now()
		err = h.userRepo.Create(ctx, &entity.User{
			ID:           u.ID,
			CompanyID:    u.CompanyID,
			Email:        u.Email,
			PasswordHash: string(hash),
			Name:         u.Name,
			Role:         u.Role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		if u.Permissions != nil {
			if _, err := h.permRepo.Merge(ctx, u.ID, toPatch(u.Permissions)); err != nil {
				return fmt.Errorf("seed permissions %s: %w", u.Email, err)
			}
		}
	}

	for _, r := range doc.Resources {
		now := time.Now()
		err := h.resourceRepo.Create(ctx, &entity.Resource{
			ID:           r.ID,
			Kind:         r.Kind,
			Name:         r.Name,
			Description:  r.Description,
			CompanyID:    r.CompanyID,
			CreatedBy:    r.CreatedBy,
			CreatedAt:    now,
			LastModified: now,
			Permissions: entity.ResourcePermissions{
				CanView:  r.Permissions.CanView,
				CanEdit:  r.Permissions.CanEdit,
				CanShare: r.Permissions.CanShare,
			},
			DiagramType: r.DiagramType,
			Content:     r.Content,
			TechStack:   r.TechStack,
			TotalFiles:  r.TotalFiles,
		})
		if err != nil {
			return fmt.Errorf("seed resource %s: %w", r.Name, err)
		}
	}
	return nil
}
