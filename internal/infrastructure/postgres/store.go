package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store es el motor alternativo de persistencia (STORAGE_MODE=postgres):
// cada colección se guarda como un único documento jsonb en la tabla
// collections, conservando la semántica de documento completo del motor
// de archivos. El reemplazo es atómico por ser un UPSERT de una fila.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el almacén y garantiza el esquema.
func NewStore(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("crear tabla collections: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Load decodifica la colección completa en out. Si la colección no existe,
// out queda como secuencia vacía.
func (s *Store) Load(name string, out any) error {
	var doc []byte
	err := s.pool.QueryRow(context.Background(),
		`SELECT document FROM collections WHERE name = $1`, name).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("leer colección %s: %w", name, err)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("decodificar colección %s: %w", name, err)
	}
	return nil
}

// Persist reemplaza la colección completa (UPSERT de una fila).
func (s *Store) Persist(name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar colección %s: %w", name, err)
	}
	_, err = s.pool.Exec(context.Background(), `
		INSERT INTO collections (name, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET document = EXCLUDED.document, updated_at = now()`,
		name, doc)
	if err != nil {
		return fmt.Errorf("escribir colección %s: %w", name, err)
	}
	return nil
}
