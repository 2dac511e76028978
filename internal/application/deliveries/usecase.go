package deliveries

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

// UseCase implementa el flujo de entregas de proveedor: alta de entregas
// pendientes, confirmación hacia inventario y rechazo. La confirmación
// escribe en dos colecciones (deliveries e inventory) y por eso se
// ejecuta como una sola operación lógica bajo los locks de las tres
// colecciones implicadas.
type UseCase struct {
	tx         repository.TxRunner
	deliveries repository.DeliveryRepository
	suppliers  repository.SupplierRepository
	stock      StockCreator
	txns       repository.TransactionRepository
	log        *logger.Logger
}

// NewUseCase construye el caso de uso de entregas.
func NewUseCase(
	tx repository.TxRunner,
	deliveries repository.DeliveryRepository,
	suppliers repository.SupplierRepository,
	stock StockCreator,
	txns repository.TransactionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		tx:         tx,
		deliveries: deliveries,
		suppliers:  suppliers,
		stock:      stock,
		txns:       txns,
		log:        log,
	}
}

// ListPending devuelve las entregas con estado pending en orden de creación.
func (uc *UseCase) ListPending(ctx context.Context) ([]*entity.Delivery, error) {
	var pending []*entity.Delivery
	err := uc.tx.Run(ctx, func() error {
		var err error
		pending, err = uc.deliveries.ListPending()
		return err
	}, repository.CollectionDeliveries)
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// ListSuppliers devuelve el catálogo de proveedores (datos de referencia).
func (uc *UseCase) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	err := uc.tx.Run(ctx, func() error {
		var err error
		out, err = uc.suppliers.List()
		return err
	}, repository.CollectionSuppliers)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra una entrega pendiente desde la cadena de suministro.
func (uc *UseCase) Create(ctx context.Context, req dto.AddPendingDeliveryRequest) (*entity.Delivery, error) {
	if req.Model == "" || req.Size == "" || req.Brand == "" || req.WarehouseID == "" ||
		req.Quantity == nil || req.Price == nil || req.MinStock == nil ||
		req.SupplierID == "" || req.DeliveryDate == "" {
		return nil, domain.Validationf("faltan campos requeridos: model, size, brand, warehouse, quantity, price, minStock, supplier, deliveryDate")
	}
	if *req.Quantity <= 0 {
		return nil, domain.Validationf("la cantidad debe ser mayor que cero")
	}
	if req.Price.IsNegative() {
		return nil, domain.Validationf("el precio no puede ser negativo")
	}
	if *req.MinStock < 0 {
		return nil, domain.Validationf("el stock mínimo no puede ser negativo")
	}

	now := time.Now()
	d := &entity.Delivery{
		ID:           entity.NewID("del"),
		Model:        req.Model,
		Size:         req.Size,
		Brand:        req.Brand,
		WarehouseID:  req.WarehouseID,
		Quantity:     *req.Quantity,
		Price:        *req.Price,
		MinStock:     *req.MinStock,
		SupplierID:   req.SupplierID,
		ExpectedDate: req.DeliveryDate,
		Notes:        req.Notes,
		Status:       entity.DeliveryStatusPending,
		CreatedAt:    now,
	}

	err := uc.tx.Run(ctx, func() error {
		if err := uc.deliveries.Append(d); err != nil {
			return err
		}
		txn := entity.NewTransaction(entity.TxnDeliveryCreated,
			fmt.Sprintf("Entrega pendiente registrada: %s %s (%d unidades) desde %s", d.Brand, d.Model, d.Quantity, d.SupplierID),
			d, "", now)
		return uc.txns.Append(txn)
	}, repository.CollectionDeliveries, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("delivery_id", d.ID).Str("supplier", d.SupplierID).Msg("entrega pendiente registrada")
	return d, nil
}

// Confirm pasa una entrega pendiente a confirmed y crea el artículo de
// inventario correspondiente. Ambas escrituras más la entrada del log
// ocurren bajo el mismo alcance de bloqueo: o se aplican todas o ninguna
// queda visible, incluso con confirmaciones concurrentes sobre el mismo
// ID (solo una gana; la otra ve status confirmed y falla).
//
// Si la escritura de la entrega falla a nivel de almacén después de
// persistir el artículo y su entrada en el log, la entrega queda pending
// con un artículo ya creado y un reintento lo duplicaría; el alcance de
// bloqueo combinado no cubre fallos de escritura parciales.
func (uc *UseCase) Confirm(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if id == "" {
		return nil, domain.Validationf("falta el campo requerido: id")
	}

	var item *entity.InventoryItem
	err := uc.tx.Run(ctx, func() error {
		d, err := uc.deliveries.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if !d.IsPending() {
			return domain.InvalidStatef("la entrega %s ya está %s", d.ID, d.Status)
		}

		// Mismo orden de escrituras que el alta histórica: primero el
		// artículo de inventario y su entrada en el log, después la entrega
		now := time.Now()
		item, err = uc.stock.AddFromDeliveryInTx(d, now)
		if err != nil {
			return err
		}

		d.Status = entity.DeliveryStatusConfirmed
		d.ConfirmedAt = &now
		return uc.deliveries.Replace(d)
	}, repository.CollectionDeliveries, repository.CollectionInventory, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("delivery_id", id).Str("item_id", item.ID).Msg("entrega confirmada")
	return item, nil
}

// Reject pasa una entrega pendiente a rejected. El motivo puede venir
// vacío; se persiste tal cual.
func (uc *UseCase) Reject(ctx context.Context, id, reason string) (*entity.Delivery, error) {
	if id == "" {
		return nil, domain.Validationf("falta el campo requerido: id")
	}

	var d *entity.Delivery
	err := uc.tx.Run(ctx, func() error {
		var err error
		d, err = uc.deliveries.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if !d.IsPending() {
			return domain.InvalidStatef("la entrega %s ya está %s", d.ID, d.Status)
		}

		now := time.Now()
		d.Status = entity.DeliveryStatusRejected
		d.RejectedAt = &now
		d.RejectionReason = &reason
		if err := uc.deliveries.Replace(d); err != nil {
			return err
		}

		txn := entity.NewTransaction(entity.TxnDeliveryStatusUpdated,
			fmt.Sprintf("Entrega rechazada: %s %s (%s)", d.Brand, d.Model, reason),
			d, "", now)
		return uc.txns.Append(txn)
	}, repository.CollectionDeliveries, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("delivery_id", id).Msg("entrega rechazada")
	return d, nil
}
