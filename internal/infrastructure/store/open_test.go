package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/store"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
)

func TestOpen_Memoria(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}
	s, closeFn, err := store.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer closeFn()
	assert.IsType(t, &memory.CollectionStore{}, s)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}
	_, _, err := store.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
