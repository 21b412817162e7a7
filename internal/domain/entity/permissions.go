package entity

// Features disponibles por usuario. El conjunto de claves es fijo y conocido;
// cualquier otro nombre se rechaza (ver FeatureByName).
const (
	FeatureViewDiagrams     = "canViewDiagrams"
	FeatureGenerateDiagrams = "canGenerateDiagrams"
	FeatureViewCodebases    = "canViewCodebases"
	FeatureUploadCodebases  = "canUploadCodebases"
	FeatureViewSecurity     = "canViewSecurity"
	FeatureViewDevOps       = "canViewDevOps"
	FeatureViewQueryEngine  = "canViewQueryEngine"
	FeatureManageTeam       = "canManageTeam"
)

// FeaturePermissions son los flags de capacidades de un usuario enterprise.
// Se muta únicamente vía merge parcial (nunca reemplazo completo).
type FeaturePermissions struct {
	CanViewDiagrams     bool
	CanGenerateDiagrams bool
	CanViewCodebases    bool
	CanUploadCodebases  bool
	CanViewSecurity     bool
	CanViewDevOps       bool
	CanViewQueryEngine  bool
	CanManageTeam       bool
}

// FeaturePermissionsPatch es una actualización parcial: los campos nil
// no se tocan en el merge.
type FeaturePermissionsPatch struct {
	CanViewDiagrams     *bool
	CanGenerateDiagrams *bool
	CanViewCodebases    *bool
	CanUploadCodebases  *bool
	CanViewSecurity     *bool
	CanViewDevOps       *bool
	CanViewQueryEngine  *bool
	CanManageTeam       *bool
}

// Merge aplica el patch sobre p y devuelve el conjunto resultante completo.
func (p FeaturePermissions) Merge(patch FeaturePermissionsPatch) FeaturePermissions {
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.CanViewDiagrams, patch.CanViewDiagrams)
	apply(&p.CanGenerateDiagrams, patch.CanGenerateDiagrams)
	apply(&p.CanViewCodebases, patch.CanViewCodebases)
	apply(&p.CanUploadCodebases, patch.CanUploadCodebases)
	apply(&p.CanViewSecurity, patch.CanViewSecurity)
	apply(&p.CanViewDevOps, patch.CanViewDevOps)
	apply(&p.CanViewQueryEngine, patch.CanViewQueryEngine)
	apply(&p.CanManageTeam, patch.CanManageTeam)
	return p
}

// Get devuelve el valor del feature indicado. El segundo retorno es false
// si el nombre no pertenece al conjunto fijo de features.
func (p FeaturePermissions) Get(feature string) (value, ok bool) {
	switch feature {
	case FeatureViewDiagrams:
		return p.CanViewDiagrams, true
	case FeatureGenerateDiagrams:
		return p.CanGenerateDiagrams, true
	case FeatureViewCodebases:
		return p.CanViewCodebases, true
	case FeatureUploadCodebases:
		return p.CanUploadCodebases, true
	case FeatureViewSecurity:
		return p.CanViewSecurity, true
	case FeatureViewDevOps:
		return p.CanViewDevOps, true
	case FeatureViewQueryEngine:
		return p.CanViewQueryEngine, true
	case FeatureManageTeam:
		return p.CanManageTeam, true
	default:
		return false, false
	}
}

// ValidFeature informa si el nombre pertenece al conjunto fijo de features.
func ValidFeature(feature string) bool {
	_, ok := FeaturePermissions{}.Get(feature)
	return ok
}

// RegularUserDefaults son los flags implícitos de un usuario regular
// (sin registro FeaturePermissions propio). La asimetría viene del producto
// original: los usuarios no-enterprise siempre pueden ver y generar diagramas,
// todo lo demás queda denegado.
func RegularUserDefaults() FeaturePermissions {
	return FeaturePermissions{
		CanViewDiagrams:     true,
		CanGenerateDiagrams: true,
	}
}
