package transactions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgarciat/tirestock-api/internal/application/transactions"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/collections"
	"github.com/dgarciat/tirestock-api/internal/infrastructure/jsonstore"
	"github.com/dgarciat/tirestock-api/pkg/logger"
)

func intPtr(n int) *int { return &n }

func newFixture(t *testing.T) (*transactions.UseCase, *collections.TransactionRepo) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	txns := collections.NewTransactionRepo(store)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := transactions.NewUseCase(collections.NewTxRunner(), txns, log)
	return uc, txns
}

func appendAt(t *testing.T, repo *collections.TransactionRepo, desc string, ts time.Time) {
	t.Helper()
	txn := entity.NewTransaction(entity.TxnInventoryAdded, desc, nil, "", ts)
	require.NoError(t, repo.Append(txn))
}

func TestList_OrdenDeInsercion(t *testing.T) {
	uc, repo := newFixture(t)
	now := time.Now()

	appendAt(t, repo, "primera", now.Add(-2*time.Hour))
	appendAt(t, repo, "segunda", now.Add(-time.Hour))
	appendAt(t, repo, "tercera", now)

	log, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "primera", log[0].Description)
	assert.Equal(t, "tercera", log[2].Description)
}

func TestClearOld_PodaSoloLasAntiguas(t *testing.T) {
	uc, repo := newFixture(t)
	now := time.Now()

	appendAt(t, repo, "vieja 1", now.AddDate(0, 0, -40))
	appendAt(t, repo, "vieja 2", now.AddDate(0, 0, -31))
	appendAt(t, repo, "reciente 1", now.AddDate(0, 0, -5))
	appendAt(t, repo, "reciente 2", now)

	result, err := uc.ClearOld(context.Background(), intPtr(30))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 2, result.Remaining)

	// Las supervivientes conservan su orden relativo
	log, err := repo.List()
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "reciente 1", log[0].Description)
	assert.Equal(t, "reciente 2", log[1].Description)
}

func TestClearOld_SinNadaQuePodar(t *testing.T) {
	uc, repo := newFixture(t)

	appendAt(t, repo, "reciente", time.Now())

	result, err := uc.ClearOld(context.Background(), intPtr(30))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, 1, result.Remaining)
}

func TestClearOld_Validacion(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.ClearOld(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.ClearOld(ctx, intPtr(0))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.ClearOld(ctx, intPtr(-7))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
