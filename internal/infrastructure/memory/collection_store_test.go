package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/memory"
)

func TestLoad_ClaveInexistenteConservaDefault(t *testing.T) {
	s := memory.NewCollectionStore()
	dest := []entity.Sale{{ID: "default"}}

	found, err := s.Load(context.Background(), "sales", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "default", dest[0].ID)
}

func TestSave_ReemplazaColeccionCompleta(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStore()

	require.NoError(t, s.Save(ctx, "sales", []entity.Sale{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, s.Save(ctx, "sales", []entity.Sale{{ID: "3"}}))

	var got []entity.Sale
	found, err := s.Load(ctx, "sales", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []entity.Sale{{ID: "3"}}, got)
}

func TestLoad_DevuelveCopiaIndependiente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStore()
	orig := []entity.Sale{{ID: "1", Customer: "A"}}
	require.NoError(t, s.Save(ctx, "sales", orig))

	orig[0].Customer = "mutado"

	var got []entity.Sale
	_, err := s.Load(ctx, "sales", &got)
	require.NoError(t, err)
	assert.Equal(t, "A", got[0].Customer)
}
