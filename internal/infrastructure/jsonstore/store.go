package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persiste cada colección como un único documento JSON legible en
// disco (<dir>/<nombre>.json). No hay actualizaciones parciales: toda
// mutación opera sobre la secuencia completa en memoria y la reescribe.
//
// La escritura es atómica: se escribe a un archivo temporal en el mismo
// directorio y se renombra sobre el definitivo, de modo que un crash a
// mitad de escritura nunca deja una colección corrupta visible.
//
// El Store no sincroniza el acceso concurrente; esa disciplina la impone
// collections.TxRunner por colección.
type Store struct {
	dir string
}

// Open prepara el directorio de datos y devuelve el almacén.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load decodifica la colección completa en out (un puntero a slice),
// preservando el orden de inserción. Si la colección no existe, out queda
// como secuencia vacía.
func (s *Store) Load(name string, out any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("leer colección %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar colección %s: %w", name, err)
	}
	return nil
}

// Persist reemplaza la colección completa de forma atómica
// (temporal + rename).
func (s *Store) Persist(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar colección %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir colección %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar temporal de %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar colección %s: %w", name, err)
	}
	return nil
}
