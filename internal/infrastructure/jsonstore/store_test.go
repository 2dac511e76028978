package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/jsonstore"
)

// Una colección ausente se carga como secuencia vacía, sin error.
func TestLoad_ColeccionAusente(t *testing.T) {
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	var items []*entity.InventoryItem
	require.NoError(t, store.Load("inventory", &items))
	assert.Empty(t, items)
}

// Persistir y recargar devuelve los mismos registros en el mismo orden.
func TestPersistLoad_RoundTrip(t *testing.T) {
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	in := []*entity.Supplier{
		{ID: "1", Name: "Bridgestone Philippines", Contact: "+63 917 111 1111"},
		{ID: "2", Name: "Michelin Philippines", Contact: "+63 917 222 2222"},
		{ID: "3", Name: "Goodyear Philippines", Contact: "+63 917 333 3333"},
	}
	require.NoError(t, store.Persist("suppliers", in))

	var out []*entity.Supplier
	require.NoError(t, store.Load("suppliers", &out))
	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, *in[i], *out[i], "el orden de inserción debe conservarse")
	}

	// Releer y reescribir sin cambios produce un documento equivalente.
	require.NoError(t, store.Persist("suppliers", out))
	var again []*entity.Supplier
	require.NoError(t, store.Load("suppliers", &again))
	assert.Equal(t, out, again)
}

// Persist reemplaza el documento completo mediante temporal + rename:
// después de escribir no deben quedar temporales y el contenido anterior
// desaparece por completo.
func TestPersist_ReemplazoAtomico(t *testing.T) {
	dir := t.TempDir()
	store, err := jsonstore.Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Persist("reorders", []*entity.Reorder{{ID: "reorder_1", Status: entity.ReorderStatusPending}}))
	require.NoError(t, store.Persist("reorders", []*entity.Reorder{{ID: "reorder_2", Status: entity.ReorderStatusOrdered}}))

	var out []*entity.Reorder
	require.NoError(t, store.Load("reorders", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "reorder_2", out[0].ID)

	tmps, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, tmps, "no deben quedar archivos temporales")

	_, err = os.Stat(filepath.Join(dir, "reorders.json"))
	assert.NoError(t, err)
}
