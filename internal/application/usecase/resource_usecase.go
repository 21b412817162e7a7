package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stacksketch/stacksketch-api/internal/application/dto"
	"github.com/stacksketch/stacksketch-api/internal/application/ports"
	"github.com/stacksketch/stacksketch-api/internal/domain"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/domain/repository"
)

// ResourceUseCase crea recursos enterprise (diagramas y codebases).
// La visibilidad y las mutaciones de ACL viven en AccessControlService;
// aquí solo está el ciclo de alta.
type ResourceUseCase struct {
	registry     *PermissionRegistry
	userRepo     repository.UserRepository
	companyRepo  repository.CompanyRepository
	resourceRepo repository.ResourceRepository
	generator    ports.DiagramGenerator // opcional; nil = sin generación IA
}

// NewResourceUseCase construye el caso de uso de recursos.
func NewResourceUseCase(
	registry *PermissionRegistry,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	resourceRepo repository.ResourceRepository,
	generator ports.DiagramGenerator,
) *ResourceUseCase {
	return &ResourceUseCase{
		registry:     registry,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		resourceRepo: resourceRepo,
		generator:    generator,
	}
}

// Create da de alta un recurso a nombre del actor. El recurso hereda la
// empresa del creador (un regular crea recursos personales sin empresa) y
// nace con ACL mínimo: el creador en canView y canEdit, canShare vacío.
//
// Requiere el feature correspondiente al kind (canGenerateDiagrams /
// canUploadCodebases); sin él devuelve ErrForbidden. Para diagramas con
// Prompt y sin Content, el contenido se genera vía el puerto de IA.
func (uc *ResourceUseCase) Create(ctx context.Context, actorID string, in dto.CreateResourceRequest) (*entity.Resource, error) {
	if !entity.ValidKind(in.Kind) || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}

	feature := entity.FeatureGenerateDiagrams
	if in.Kind == entity.KindCodebase {
		feature = entity.FeatureUploadCodebases
	}
	allowed, err := uc.registry.Get(ctx, actorID, feature)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	// Invariante de creación: resource.company_id == creator.company_id.
	if actor.CompanyID != "" {
		company, err := uc.companyRepo.GetByID(ctx, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrUnresolvable
		}
	}

	content := in.Content
	if in.Kind == entity.KindDiagram && content == "" && in.Prompt != "" && uc.generator != nil {
		content, err = uc.generator.GenerateDiagram(ctx, in.DiagramType, in.Prompt)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	res := &entity.Resource{
		ID:           uuid.New().String(),
		Kind:         in.Kind,
		Name:         in.Name,
		Description:  in.Description,
		CompanyID:    actor.CompanyID,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		LastModified: now,
		Permissions: entity.ResourcePermissions{
			CanView:  []string{actor.ID},
			CanEdit:  []string{actor.ID},
			CanShare: []string{},
		},
		DiagramType: in.DiagramType,
		Content:     content,
		TechStack:   in.TechStack,
		TotalFiles:  in.TotalFiles,
	}
	if err := uc.resourceRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}
