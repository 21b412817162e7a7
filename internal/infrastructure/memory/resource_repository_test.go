package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacksketch/stacksketch-api/internal/domain/entity"
	"github.com/stacksketch/stacksketch-api/internal/infrastructure/memory"
)

func seedResource(t *testing.T, repo *memory.ResourceRepo) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.Resource{
		ID:        "r1",
		Kind:      entity.KindDiagram,
		Name:      "diagrama",
		CompanyID: "co1",
		CreatedBy: "creator",
		Permissions: entity.ResourcePermissions{
			CanView:  []string{"creator"},
			CanEdit:  []string{"creator"},
			CanShare: []string{},
		},
	}))
}

// ApplyACLDelta es idempotente: repetir el mismo grant o revoke deja el
// conjunto igual, sin duplicados ni errores.
func TestApplyACLDelta_Idempotente(t *testing.T) {
	repo := memory.NewResourceRepository()
	seedResource(t, repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := repo.ApplyACLDelta(ctx, "r1", entity.ACLFieldView, "u2", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"creator", "u2"}, res.Permissions.CanView)
	}

	for i := 0; i < 3; i++ {
		res, err := repo.ApplyACLDelta(ctx, "r1", entity.ACLFieldView, "u2", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"creator"}, res.Permissions.CanView)
	}
}

// Recurso inexistente: (nil, nil), nunca pánico ni error.
func TestApplyACLDelta_RecursoInexistente(t *testing.T) {
	repo := memory.NewResourceRepository()
	res, err := repo.ApplyACLDelta(context.Background(), "ghost", entity.ACLFieldView, "u1", true)
	require.NoError(t, err)
	assert.Nil(t, res)
}

// Mutaciones concurrentes sobre el mismo recurso: todas sobreviven, ninguna
// pisa a otra (el clásico lost-update del read-modify-write).
func TestApplyACLDelta_SinLostUpdatesConcurrentes(t *testing.T) {
	repo := memory.NewResourceRepository()
	seedResource(t, repo)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.ApplyACLDelta(ctx, "r1", entity.ACLFieldView, fmt.Sprintf("user-%02d", i), true)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	res, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, res.Permissions.CanView, n+1, "los %d grants concurrentes y el creador deben estar todos", n)
}

// ReplacePermissions sustituye el ACL completo de una sola vez y guarda una
// copia propia; el slice del caller deja de estar conectado al store.
func TestReplacePermissions_SustituyeACLCompleto(t *testing.T) {
	repo := memory.NewResourceRepository()
	seedResource(t, repo)
	ctx := context.Background()

	acl := entity.ResourcePermissions{
		CanView:  []string{"creator", "u2"},
		CanEdit:  []string{"u2"},
		CanShare: []string{},
	}
	require.NoError(t, repo.ReplacePermissions(ctx, "r1", acl))
	acl.CanView = append(acl.CanView, "intruso")

	res, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"creator", "u2"}, res.Permissions.CanView)
	assert.Equal(t, []string{"u2"}, res.Permissions.CanEdit)
	assert.Empty(t, res.Permissions.CanShare)
}

// Recurso inexistente: no-op silencioso, igual que ApplyACLDelta.
func TestReplacePermissions_RecursoInexistente(t *testing.T) {
	repo := memory.NewResourceRepository()
	err := repo.ReplacePermissions(context.Background(), "ghost", entity.ResourcePermissions{
		CanView: []string{"u1"},
	})
	assert.NoError(t, err)
}

// Los lectores reciben copias: mutar el resultado no altera el store.
func TestGetByID_DevuelveCopiaAislada(t *testing.T) {
	repo := memory.NewResourceRepository()
	seedResource(t, repo)
	ctx := context.Background()

	res, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	res.Permissions.CanView = append(res.Permissions.CanView, "intruso")
	res.Name = "mutado"

	fresh, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"creator"}, fresh.Permissions.CanView)
	assert.Equal(t, "diagrama", fresh.Name)
}

// ListPersonal filtra por creador y kind entre los recursos sin empresa.
func TestListPersonal_FiltraPorCreadorYKind(t *testing.T) {
	repo := memory.NewResourceRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Resource{ID: "p1", Kind: entity.KindDiagram, CreatedBy: "alex"}))
	require.NoError(t, repo.Create(ctx, &entity.Resource{ID: "p2", Kind: entity.KindCodebase, CreatedBy: "alex"}))
	require.NoError(t, repo.Create(ctx, &entity.Resource{ID: "e1", Kind: entity.KindDiagram, CompanyID: "co1", CreatedBy: "alex"}))
	require.NoError(t, repo.Create(ctx, &entity.Resource{ID: "p3", Kind: entity.KindDiagram, CreatedBy: "otra"}))

	list, err := repo.ListPersonal(ctx, "alex", entity.KindDiagram)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID, "solo el diagrama personal propio, nunca el de empresa")
}
