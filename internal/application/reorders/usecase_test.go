package reorders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/application/reorders"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/collections"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/jsonstore"
	"github.com/dgarciat/tirestock-api/pkg/logger"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func newFixture(t *testing.T) (*reorders.UseCase, *collections.TransactionRepo) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	txns := collections.NewTransactionRepo(store)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := reorders.NewUseCase(collections.NewTxRunner(), collections.NewReorderRepo(store), txns, log)
	return uc, txns
}

func validCreate() dto.CreateReorderRequest {
	return dto.CreateReorderRequest{
		ItemID:      "inv_abc123",
		Model:       "Cinturato P7",
		Size:        "215/55R17",
		Brand:       "Pirelli",
		Quantity:    intPtr(30),
		WarehouseID: "branch2",
	}
}

func TestCreate_AplicaValoresPorDefecto(t *testing.T) {
	uc, txns := newFixture(t)

	r, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Regexp(t, "^reorder_", r.ID)
	assert.Equal(t, entity.ReorderStatusPending, r.Status)
	assert.Equal(t, "normal", r.Priority)
	assert.Equal(t, "system", r.CreatedBy)

	log, err := txns.List()
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, entity.TxnReorderCreated, log[0].Type)
}

func TestCreate_RespetaValoresExplicitos(t *testing.T) {
	uc, _ := newFixture(t)

	req := validCreate()
	req.Priority = "urgent"
	req.CreatedBy = "maria"
	req.Notes = "stock crítico en sucursal"

	r, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "urgent", r.Priority)
	assert.Equal(t, "maria", r.CreatedBy)
	assert.Equal(t, "stock crítico en sucursal", r.Notes)
}

func TestCreate_Validacion(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	req := validCreate()
	req.ItemID = ""
	_, err := uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = validCreate()
	req.Quantity = intPtr(0)
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStatus_CualquierTransicionDentroDelEnum(t *testing.T) {
	uc, txns := newFixture(t)
	ctx := context.Background()

	r, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	// received → pending también es legal: solo se valida la pertenencia
	for _, status := range []string{
		entity.ReorderStatusReceived,
		entity.ReorderStatusPending,
		entity.ReorderStatusCancelled,
	} {
		updated, err := uc.UpdateStatus(ctx, dto.UpdateReorderStatusRequest{ID: r.ID, Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		require.NotNil(t, updated.UpdatedAt)
	}

	log, err := txns.List()
	require.NoError(t, err)
	require.Len(t, log, 4)
	assert.Equal(t, entity.TxnReorderStatusUpdated, log[1].Type)
	// La descripción registra el estado anterior y el nuevo
	assert.Contains(t, log[1].Description, entity.ReorderStatusPending)
	assert.Contains(t, log[1].Description, entity.ReorderStatusReceived)
}

func TestUpdateStatus_EstadoInvalidoAntesQueNoEncontrado(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	// Estado fuera del enum responde validación aunque el ID tampoco exista
	_, err := uc.UpdateStatus(ctx, dto.UpdateReorderStatusRequest{ID: "reorder_nope", Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.UpdateStatus(ctx, dto.UpdateReorderStatusRequest{ID: "reorder_nope", Status: entity.ReorderStatusApproved})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_NotasSoloSiVienen(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	req := validCreate()
	req.Notes = "nota original"
	r, err := uc.Create(ctx, req)
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(ctx, dto.UpdateReorderStatusRequest{ID: r.ID, Status: entity.ReorderStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, "nota original", updated.Notes)

	updated, err = uc.UpdateStatus(ctx, dto.UpdateReorderStatusRequest{
		ID:     r.ID,
		Status: entity.ReorderStatusOrdered,
		Notes:  strPtr("pedido enviado al proveedor"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pedido enviado al proveedor", updated.Notes)
}

func TestList_FiltraPorEstado(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	a, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)
	b, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, dto.UpdateReorderStatusRequest{ID: b.ID, Status: entity.ReorderStatusApproved})
	require.NoError(t, err)

	todos, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	pendientes, err := uc.List(ctx, entity.ReorderStatusPending)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, a.ID, pendientes[0].ID)

	_, err = uc.List(ctx, "shipped")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
