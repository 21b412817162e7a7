package dto

// FeaturePermissionsResponse mapa completo de flags de features de un usuario.
type FeaturePermissionsResponse struct {
	CanViewDiagrams     bool `json:"canViewDiagrams"`
	CanGenerateDiagrams bool `json:"canGenerateDiagrams"`
	CanViewCodebases    bool `json:"canViewCodebases"`
	CanUploadCodebases  bool `json:"canUploadCodebases"`
	CanViewSecurity     bool `json:"canViewSecurity"`
	CanViewDevOps       bool `json:"canViewDevOps"`
	CanViewQueryEngine  bool `json:"canViewQueryEngine"`
	CanManageTeam       bool `json:"canManageTeam"`
}

// UpdatePermissionsRequest actualización parcial de flags: los campos
// ausentes en el JSON quedan intactos (merge, nunca reemplazo).
type UpdatePermissionsRequest struct {
	CanViewDiagrams     *bool `json:"canViewDiagrams"`
	CanGenerateDiagrams *bool `json:"canGenerateDiagrams"`
	CanViewCodebases    *bool `json:"canViewCodebases"`
	CanUploadCodebases  *bool `json:"canUploadCodebases"`
	CanViewSecurity     *bool `json:"canViewSecurity"`
	CanViewDevOps       *bool `json:"canViewDevOps"`
	CanViewQueryEngine  *bool `json:"canViewQueryEngine"`
	CanManageTeam       *bool `json:"canManageTeam"`
}
