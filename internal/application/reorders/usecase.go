package reorders

import (
	"context"
	"fmt"
	"time"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
	"github.com/dgarciat/tirestock-api/pkg/logger"
)

// UseCase implementa el flujo de reposiciones: solicitudes de reorden
// referenciando artículos de inventario, con cambio de estado libre
// dentro del enum (no hay orden de transiciones).
type UseCase struct {
	tx       repository.TxRunner
	reorders repository.ReorderRepository
	txns     repository.TransactionRepository
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de reposiciones.
func NewUseCase(
	tx repository.TxRunner,
	reorders repository.ReorderRepository,
	txns repository.TransactionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{tx: tx, reorders: reorders, txns: txns, log: log}
}

// List devuelve las reposiciones, filtradas por estado si se indica.
// Un filtro fuera del enum es un error de validación, no un listado vacío.
func (uc *UseCase) List(ctx context.Context, statusFilter string) ([]*entity.Reorder, error) {
	if statusFilter != "" && !entity.ValidReorderStatus(statusFilter) {
		return nil, domain.Validationf("estado de reposición inválido: %s", statusFilter)
	}

	var out []*entity.Reorder
	err := uc.tx.Run(ctx, func() error {
		var err error
		if statusFilter == "" {
			out, err = uc.reorders.List()
		} else {
			out, err = uc.reorders.ListByStatus(statusFilter)
		}
		return err
	}, repository.CollectionReorders)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra una solicitud de reposición. La prioridad por defecto
// es "normal" y el autor por defecto "system". Nunca muta el artículo
// de inventario referenciado.
func (uc *UseCase) Create(ctx context.Context, req dto.CreateReorderRequest) (*entity.Reorder, error) {
	if req.ItemID == "" || req.Model == "" || req.Size == "" || req.Brand == "" ||
		req.Quantity == nil || req.WarehouseID == "" {
		return nil, domain.Validationf("faltan campos requeridos: itemId, model, size, brand, quantity, warehouse")
	}
	if *req.Quantity <= 0 {
		return nil, domain.Validationf("la cantidad debe ser mayor que cero")
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "system"
	}

	now := time.Now()
	r := &entity.Reorder{
		ID:          entity.NewID("reorder"),
		ItemID:      req.ItemID,
		Model:       req.Model,
		Size:        req.Size,
		Brand:       req.Brand,
		Quantity:    *req.Quantity,
		WarehouseID: req.WarehouseID,
		Status:      entity.ReorderStatusPending,
		Priority:    priority,
		Notes:       req.Notes,
		CreatedAt:   now,
		CreatedBy:   createdBy,
	}

	err := uc.tx.Run(ctx, func() error {
		if err := uc.reorders.Append(r); err != nil {
			return err
		}
		txn := entity.NewTransaction(entity.TxnReorderCreated,
			fmt.Sprintf("Reposición creada: %s %s (%d unidades)", r.Brand, r.Model, r.Quantity),
			r, createdBy, now)
		return uc.txns.Append(txn)
	}, repository.CollectionReorders, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("reorder_id", r.ID).Str("item_id", r.ItemID).Msg("reposición creada")
	return r, nil
}

// UpdateStatus cambia el estado de una reposición. Se valida la
// pertenencia al enum antes de buscar el registro, de modo que un estado
// inválido responde 422 aunque el ID tampoco exista.
func (uc *UseCase) UpdateStatus(ctx context.Context, req dto.UpdateReorderStatusRequest) (*entity.Reorder, error) {
	if req.ID == "" || req.Status == "" {
		return nil, domain.Validationf("faltan campos requeridos: id, status")
	}
	if !entity.ValidReorderStatus(req.Status) {
		return nil, domain.Validationf("estado de reposición inválido: %s", req.Status)
	}

	var r *entity.Reorder
	err := uc.tx.Run(ctx, func() error {
		var err error
		r, err = uc.reorders.GetByID(req.ID)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}

		previous := r.Status
		now := time.Now()
		r.Status = req.Status
		if req.Notes != nil {
			r.Notes = *req.Notes
		}
		r.UpdatedAt = &now
		if err := uc.reorders.Replace(r); err != nil {
			return err
		}

		txn := entity.NewTransaction(entity.TxnReorderStatusUpdated,
			fmt.Sprintf("Reposición %s %s: %s → %s", r.Model, r.Size, previous, r.Status),
			r, "", now)
		return uc.txns.Append(txn)
	}, repository.CollectionReorders, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("reorder_id", r.ID).Str("status", r.Status).Msg("estado de reposición actualizado")
	return r, nil
}
