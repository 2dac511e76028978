package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/application/inventory"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/collections"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/jsonstore"
	"github.com/dgarciat/tirestock-api/pkg/logger"
)

func intPtr(n int) *int { return &n }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func newFixture(t *testing.T) (*inventory.UseCase, *collections.InventoryRepo, *collections.TransactionRepo) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	items := collections.NewInventoryRepo(store)
	txns := collections.NewTransactionRepo(store)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := inventory.NewUseCase(collections.NewTxRunner(), items, txns, log)
	return uc, items, txns
}

func validAdd() dto.AddInventoryRequest {
	return dto.AddInventoryRequest{
		Model:       "Turanza T005",
		Size:        "205/55R16",
		Brand:       "Bridgestone",
		WarehouseID: "main",
		Quantity:    intPtr(40),
		Price:       decPtr(decimal.NewFromInt(4500)),
		MinStock:    intPtr(10),
	}
}

func TestAdd_CreaArticuloYRegistraTransaccion(t *testing.T) {
	uc, items, txns := newFixture(t)

	item, err := uc.Add(context.Background(), validAdd())
	require.NoError(t, err)
	assert.Regexp(t, "^inv_", item.ID)
	assert.Equal(t, 40, item.Quantity)
	assert.False(t, item.CreatedAt.IsZero())

	persisted, err := items.List()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, item.ID, persisted[0].ID)

	log, err := txns.List()
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, entity.TxnInventoryAdded, log[0].Type)
	assert.Equal(t, "system", log[0].Actor)
}

func TestAdd_ValidacionDeCampos(t *testing.T) {
	uc, items, _ := newFixture(t)
	ctx := context.Background()

	casos := map[string]func(*dto.AddInventoryRequest){
		"sin modelo":        func(r *dto.AddInventoryRequest) { r.Model = "" },
		"sin bodega":        func(r *dto.AddInventoryRequest) { r.WarehouseID = "" },
		"sin cantidad":      func(r *dto.AddInventoryRequest) { r.Quantity = nil },
		"sin precio":        func(r *dto.AddInventoryRequest) { r.Price = nil },
		"cantidad cero":     func(r *dto.AddInventoryRequest) { r.Quantity = intPtr(0) },
		"cantidad negativa": func(r *dto.AddInventoryRequest) { r.Quantity = intPtr(-5) },
		"precio negativo": func(r *dto.AddInventoryRequest) {
			r.Price = decPtr(decimal.NewFromInt(-1))
		},
		"minStock negativo": func(r *dto.AddInventoryRequest) { r.MinStock = intPtr(-1) },
	}
	for nombre, mutar := range casos {
		t.Run(nombre, func(t *testing.T) {
			req := validAdd()
			mutar(&req)
			_, err := uc.Add(ctx, req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	// Ninguna petición rechazada debe haber escrito nada
	persisted, err := items.List()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestList_CalculaNivelDeStock(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	agregar := func(qty, min int) {
		req := validAdd()
		req.Quantity = intPtr(qty)
		req.MinStock = intPtr(min)
		_, err := uc.Add(ctx, req)
		require.NoError(t, err)
	}
	agregar(5, 5)  // low: igual al mínimo
	agregar(10, 5) // medium: igual a min*2
	agregar(11, 5) // high

	views, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "low", string(views[0].StockLevel))
	assert.Equal(t, "medium", string(views[1].StockLevel))
	assert.Equal(t, "high", string(views[2].StockLevel))
}

func TestUpdate_ParcialYPermiteCantidadCero(t *testing.T) {
	uc, _, txns := newFixture(t)
	ctx := context.Background()

	item, err := uc.Add(ctx, validAdd())
	require.NoError(t, err)

	updated, err := uc.Update(ctx, dto.UpdateInventoryRequest{
		ID:       item.ID,
		Quantity: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, item.Model, updated.Model, "los campos no enviados se conservan")
	require.NotNil(t, updated.UpdatedAt)

	log, err := txns.List()
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, entity.TxnInventoryUpdated, log[1].Type)
}

func TestUpdate_Errores(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	item, err := uc.Add(ctx, validAdd())
	require.NoError(t, err)

	_, err = uc.Update(ctx, dto.UpdateInventoryRequest{ID: "inv_inexistente"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, dto.UpdateInventoryRequest{ID: item.ID, Quantity: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Update(ctx, dto.UpdateInventoryRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDelete_EliminaYConservaElOrden(t *testing.T) {
	uc, items, txns := newFixture(t)
	ctx := context.Background()

	primero, err := uc.Add(ctx, validAdd())
	require.NoError(t, err)
	segundo, err := uc.Add(ctx, validAdd())
	require.NoError(t, err)
	tercero, err := uc.Add(ctx, validAdd())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, segundo.ID))

	persisted, err := items.List()
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.Equal(t, primero.ID, persisted[0].ID)
	assert.Equal(t, tercero.ID, persisted[1].ID)

	assert.ErrorIs(t, uc.Delete(ctx, segundo.ID), domain.ErrNotFound)

	log, err := txns.List()
	require.NoError(t, err)
	assert.Equal(t, entity.TxnInventoryDeleted, log[len(log)-1].Type)
}

func TestConfirm_StockDirectoContraOrden(t *testing.T) {
	uc, _, txns := newFixture(t)
	ctx := context.Background()

	item, err := uc.Confirm(ctx, dto.ConfirmStockRequest{
		OrderID:     "PO-2024-001",
		Model:       "Pilot Sport 4",
		Size:        "225/45R17",
		Brand:       "Michelin",
		WarehouseID: "branch1",
		Quantity:    intPtr(20),
		Price:       decPtr(decimal.NewFromInt(7800)),
	})
	require.NoError(t, err)
	assert.Regexp(t, "^conf_", item.ID)
	assert.Equal(t, "PO-2024-001", item.OrderID)
	assert.Equal(t, "confirmed", item.Status)
	require.NotNil(t, item.ConfirmedAt)

	log, err := txns.List()
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, entity.TxnStockConfirmed, log[0].Type)

	_, err = uc.Confirm(ctx, dto.ConfirmStockRequest{Model: "incompleto"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
