package http

import (
	"github.com/stacksketch/stacksketch-api/internal/application/dto"
	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
)

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toResourceResponse(r *entity.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:           r.ID,
		Kind:         r.Kind,
		Name:         r.Name,
		Description:  r.Description,
		CompanyID:    r.CompanyID,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		LastModified: r.LastModified,
		Permissions: dto.ACLResponse{
			CanView:  emptyIfNil(r.Permissions.CanView),
			CanEdit:  emptyIfNil(r.Permissions.CanEdit),
			CanShare: emptyIfNil(r.Permissions.CanShare),
		},
		DiagramType: r.DiagramType,
		Content:     r.Content,
		TechStack:   r.TechStack,
		TotalFiles:  r.TotalFiles,
	}
}

func toPermissionsResponse(p entity.FeaturePermissions) dto.FeaturePermissionsResponse {
	return dto.FeaturePermissionsResponse{
		CanViewDiagrams:     p.CanViewDiagrams,
		CanGenerateDiagrams: p.CanGenerateDiagrams,
		CanViewCodebases:    p.CanViewCodebases,
		CanUploadCodebases:  p.CanUploadCodebases,
		CanViewSecurity:     p.CanViewSecurity,
		CanViewDevOps:       p.CanViewDevOps,
		CanViewQueryEngine:  p.CanViewQueryEngine,
		CanManageTeam:       p.CanManageTeam,
	}
}

func toPatch(in dto.UpdatePermissionsRequest) entity.FeaturePermissionsPatch {
	return entity.FeaturePermissionsPatch{
		CanViewDiagrams:     in.CanViewDiagrams,
		CanGenerateDiagrams: in.CanGenerateDiagrams,
		CanViewCodebases:    in.CanViewCodebases,
		CanUploadCodebases:  in.CanUploadCodebases,
		CanViewSecurity:     in.CanViewSecurity,
		CanViewDevOps:       in.CanViewDevOps,
		CanViewQueryEngine:  in.CanViewQueryEngine,
		CanManageTeam:       in.CanManageTeam,
	}
}

// emptyIfNil garantiza [] en el JSON en lugar de null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
