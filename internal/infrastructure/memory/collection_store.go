// Package memory implementa el puerto CollectionStore en memoria del proceso.
// Las colecciones se guardan serializadas en JSON, de modo que cada Load entrega una copia independiente.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
)

var _ repository.CollectionStore = (*CollectionStore)(nil)

// CollectionStore store clave/valor en memoria.
type CollectionStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewCollectionStore construye un store vacío.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{data: make(map[string][]byte)}
}

// Load decodifica la colección en dest. found es false si la clave no existe.
func (s *CollectionStore) Load(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save reemplaza la colección completa bajo key.
func (s *CollectionStore) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}
