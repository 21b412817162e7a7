package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/infrastructure/memory"
	"github.com/stacksketch/stacksketch-api/internal/infrastructure/seed"
)

const sampleDoc = `{
  "companies": [
    {"id": "co1", "name": "Acme", "industry": "software", "size": "smb"}
  ],
  "users": [
    {
      "id": "boss", "company_id": "co1", "email": "boss@acme.io",
      "password": "employer123", "name": "Boss", "role": "employer",
      "permissions": {
        "canViewDiagrams": true, "canGenerateDiagrams": true,
        "canViewCodebases": true, "canUploadCodebases": true,
        "canViewSecurity": true, "canViewDevOps": true,
        "canViewQueryEngine": true, "canManageTeam": true
      }
    },
    {
      "id": "alex", "company_id": "", "email": "alex@gmail.com",
      "password": "personal123", "name": "Alex", "role": "regular",
      "permissions": null
    }
  ],
  "resources": [
    {
      "id": "d1", "kind": "diagram", "name": "Arquitectura",
      "company_id": "co1", "created_by": "boss",
      "permissions": {"can_view": ["boss"], "can_edit": ["boss"], "can_share": []},
      "diagram_type": "architecture", "content": "graph TD\n A-->B"
    }
  ]
}`

func writeSampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))
	return path
}

func TestLoadFile_ParseaDocumentoCompleto(t *testing.T) {
	doc, err := seed.LoadFile(writeSampleFile(t))
	require.NoError(t, err)
	assert.Len(t, doc.Companies, 1)
	assert.Len(t, doc.Users, 2)
	assert.Len(t, doc.Resources, 1)
	assert.Nil(t, doc.Users[1].Permissions, "el regular no trae registro de flags")
}

func TestLoadFile_ArchivoInexistenteORoto(t *testing.T) {
	_, err := seed.LoadFile("/no/existe.json")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))
	_, err = seed.LoadFile(path)
	assert.Error(t, err)
}

// Hydrate deja el estado utilizable: passwords hasheados, flags aplicados y
// ACLs tal cual el documento.
func TestHydrate_EstadoCompleto(t *testing.T) {
	companies := memory.NewCompanyRepository()
	users := memory.NewUserRepository()
	perms := memory.NewPermissionRepository()
	resources := memory.NewResourceRepository()

	doc, err := seed.LoadFile(writeSampleFile(t))
	require.NoError(t, err)

	h := seed.NewHydrator(companies, users, perms, resources)
	require.NoError(t, h.Hydrate(context.Background(), doc))
	ctx := context.Background()

	company, err := companies.GetByID(ctx, "co1")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme", company.Name)

	boss, err := users.GetByID(ctx, "boss")
	require.NoError(t, err)
	require.NotNil(t, boss)
	assert.NotEqual(t, "employer123", boss.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(boss.PasswordHash), []byte("employer123")))
	assert.Equal(t, "active", boss.Status)

	flags, err := perms.Get(ctx, "boss")
	require.NoError(t, err)
	require.NotNil(t, flags)
	assert.True(t, flags.CanManageTeam)

	flags, err = perms.Get(ctx, "alex")
	require.NoError(t, err)
	assert.Nil(t, flags, "el regular queda sin registro de flags")

	res, err := resources.GetByID(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, entity.KindDiagram, res.Kind)
	assert.Equal(t, []string{"boss"}, res.Permissions.CanView)
	assert.Empty(t, res.Permissions.CanShare)
}
