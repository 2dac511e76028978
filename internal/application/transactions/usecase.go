package transactions

import (
	"context"
	"time"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
	"github.com/dgarciat/tirestock-api/pkg/logger"
)

// UseCase expone el log de auditoría: lectura completa y poda por
// antigüedad. Las entradas nunca se editan individualmente.
type UseCase struct {
	tx   repository.TxRunner
	txns repository.TransactionRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso del log de transacciones.
func NewUseCase(tx repository.TxRunner, txns repository.TransactionRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, txns: txns, log: log}
}

// List devuelve el log completo en orden de inserción (cronológico).
func (uc *UseCase) List(ctx context.Context) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := uc.tx.Run(ctx, func() error {
		var err error
		out, err = uc.txns.List()
		return err
	}, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearOld poda las entradas con más de days días de antigüedad y
// devuelve cuántas se borraron y cuántas quedan.
func (uc *UseCase) ClearOld(ctx context.Context, days *int) (dto.PruneResult, error) {
	if days == nil {
		return dto.PruneResult{}, domain.Validationf("falta el campo requerido: days")
	}
	if *days <= 0 {
		return dto.PruneResult{}, domain.Validationf("days debe ser mayor que cero")
	}

	cutoff := time.Now().AddDate(0, 0, -*days)
	var result dto.PruneResult
	err := uc.tx.Run(ctx, func() error {
		deleted, remaining, err := uc.txns.PruneBefore(cutoff)
		if err != nil {
			return err
		}
		result = dto.PruneResult{Deleted: deleted, Remaining: remaining}
		return nil
	}, repository.CollectionTransactions)
	if err != nil {
		return dto.PruneResult{}, err
	}

	uc.log.Info().Int("deleted", result.Deleted).Int("remaining", result.Remaining).
		Time("cutoff", cutoff).Msg("log de transacciones podado")
	return result, nil
}
