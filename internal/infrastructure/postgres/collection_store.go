package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
)

var _ repository.CollectionStore = (*CollectionStore)(nil)

// schema crea la tabla de colecciones y su historial de revisiones.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key        TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	revision   BIGINT NOT NULL DEFAULT 1,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS collection_revisions (
	key      TEXT NOT NULL,
	revision BIGINT NOT NULL,
	payload  JSONB NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (key, revision)
);`

// CollectionStore guarda cada colección como un documento JSONB bajo su clave.
// Cada Save reemplaza el documento y deja la versión anterior en collection_revisions.
type CollectionStore struct {
	db TxBeginner
}

// NewCollectionStore construye el adaptador. Pasar el pool.
func NewCollectionStore(db TxBeginner) *CollectionStore {
	return &CollectionStore{db: db}
}

// EnsureSchema crea las tablas si no existen.
func (s *CollectionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema de colecciones: %w", err)
	}
	return nil
}

// Load decodifica el documento guardado bajo key en dest.
func (s *CollectionStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, `SELECT payload FROM collections WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save reemplaza el documento en una transacción. Si otro proceso tomó la misma
// revisión al mismo tiempo, se reintenta una vez.
func (s *CollectionStore) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	err = s.save(ctx, key, payload)
	if err != nil && isUniqueViolation(err) {
		err = s.save(ctx, key, payload)
	}
	return err
}

func (s *CollectionStore) save(ctx context.Context, key string, payload []byte) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var revision int64
	err = tx.QueryRow(ctx, `
		INSERT INTO collections (key, payload, revision, updated_at)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (key)
		DO UPDATE SET payload = EXCLUDED.payload,
		              revision = collections.revision + 1,
		              updated_at = now()
		RETURNING revision`, key, payload).Scan(&revision)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO collection_revisions (key, revision, payload, saved_at)
		VALUES ($1, $2, $3, now())`, key, revision, payload)
	if err != nil {
		return fmt.Errorf("registrar revisión %s: %w", key, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
