package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
	"github.com/dgarciat/tirestock-api/internal/domain/stock"
	"github.com/dgarciat/tirestock-api/pkg/logger"
)

// UseCase implementa el libro mayor de inventario: listados con nivel de
// stock calculado, altas, confirmaciones directas contra órdenes,
// actualizaciones parciales y bajas. Toda mutación registra una entrada
// en el log de auditoría dentro del mismo alcance de bloqueo.
type UseCase struct {
	tx    repository.TxRunner
	items repository.InventoryRepository
	txns  repository.TransactionRepository
	log   *logger.Logger
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	tx repository.TxRunner,
	items repository.InventoryRepository,
	txns repository.TransactionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{tx: tx, items: items, txns: txns, log: log}
}

// List devuelve el inventario completo con el nivel de stock calculado
// por artículo. La lectura toma el lock de la colección para garantizar
// un snapshot consistente.
func (uc *UseCase) List(ctx context.Context) ([]dto.InventoryItemView, error) {
	var views []dto.InventoryItemView
	err := uc.tx.Run(ctx, func() error {
		items, err := uc.items.List()
		if err != nil {
			return err
		}
		views = make([]dto.InventoryItemView, 0, len(items))
		for _, it := range items {
			views = append(views, dto.InventoryItemView{
				InventoryItem: it,
				StockLevel:    stock.Classify(it.Quantity, it.MinStock),
			})
		}
		return nil
	}, repository.CollectionInventory)
	if err != nil {
		return nil, err
	}
	return views, nil
}

// Add crea un artículo de inventario. Requiere cantidad > 0; las altas
// con cantidad cero no tienen sentido (para eso está update).
func (uc *UseCase) Add(ctx context.Context, req dto.AddInventoryRequest) (*entity.InventoryItem, error) {
	if err := validateAdd(req); err != nil {
		return nil, err
	}

	var item *entity.InventoryItem
	err := uc.tx.Run(ctx, func() error {
		var err error
		item, err = uc.addLocked(req, time.Now())
		return err
	}, repository.CollectionInventory, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("item_id", item.ID).Str("warehouse", item.WarehouseID).
		Int("quantity", item.Quantity).Msg("artículo agregado al inventario")
	return item, nil
}

// addLocked asume que el llamador ya sostiene los locks de inventory y
// transactions.
func (uc *UseCase) addLocked(req dto.AddInventoryRequest, now time.Time) (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{
		ID:          entity.NewID("inv"),
		Model:       req.Model,
		Size:        req.Size,
		Brand:       req.Brand,
		WarehouseID: req.WarehouseID,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		MinStock:    *req.MinStock,
		CreatedAt:   now,
	}
	if err := uc.items.Append(item); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(entity.TxnInventoryAdded,
		fmt.Sprintf("Agregado al inventario: %s %s (%d unidades)", item.Brand, item.Model, item.Quantity),
		item, "", now)
	if err := uc.txns.Append(txn); err != nil {
		return nil, err
	}
	return item, nil
}

// AddFromDeliveryInTx crea el artículo de inventario resultante de
// confirmar una entrega y registra la transacción inventory_added, igual
// que un alta directa. El llamador sostiene los locks de deliveries,
// inventory y transactions durante toda la operación lógica.
func (uc *UseCase) AddFromDeliveryInTx(d *entity.Delivery, now time.Time) (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{
		ID:          entity.NewID("inv"),
		Model:       d.Model,
		Size:        d.Size,
		Brand:       d.Brand,
		WarehouseID: d.WarehouseID,
		Quantity:    d.Quantity,
		Price:       d.Price,
		MinStock:    d.MinStock,
		CreatedAt:   now,
	}
	if err := uc.items.Append(item); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(entity.TxnInventoryAdded,
		fmt.Sprintf("Agregado al inventario: %s %s (%d unidades)", item.Brand, item.Model, item.Quantity),
		item, "", now)
	if err := uc.txns.Append(txn); err != nil {
		return nil, err
	}
	return item, nil
}

// Confirm registra stock confirmado directamente contra una orden de
// compra, sin pasar por el flujo de entregas. El artículo queda marcado
// con orderId y confirmedAt.
func (uc *UseCase) Confirm(ctx context.Context, req dto.ConfirmStockRequest) (*entity.InventoryItem, error) {
	if req.OrderID == "" || req.Model == "" || req.Size == "" || req.Brand == "" ||
		req.WarehouseID == "" || req.Quantity == nil || req.Price == nil {
		return nil, domain.Validationf("faltan campos requeridos: orderId, model, size, brand, warehouse, quantity, price")
	}
	if *req.Quantity <= 0 {
		return nil, domain.Validationf("la cantidad debe ser mayor que cero")
	}
	if req.Price.IsNegative() {
		return nil, domain.Validationf("el precio no puede ser negativo")
	}

	now := time.Now()
	status := req.Status
	if status == "" {
		status = "confirmed"
	}
	item := &entity.InventoryItem{
		ID:          entity.NewID("conf"),
		OrderID:     req.OrderID,
		Model:       req.Model,
		Size:        req.Size,
		Brand:       req.Brand,
		WarehouseID: req.WarehouseID,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Notes:       req.Notes,
		Status:      status,
		ConfirmedAt: &now,
		CreatedAt:   now,
	}

	err := uc.tx.Run(ctx, func() error {
		if err := uc.items.Append(item); err != nil {
			return err
		}
		txn := entity.NewTransaction(entity.TxnStockConfirmed,
			fmt.Sprintf("Stock confirmado para la orden %s: %s %s (%d unidades)", item.OrderID, item.Brand, item.Model, item.Quantity),
			item, "", now)
		return uc.txns.Append(txn)
	}, repository.CollectionInventory, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("item_id", item.ID).Str("order_id", item.OrderID).Msg("stock confirmado")
	return item, nil
}

// Update aplica una actualización parcial: solo los campos presentes en
// la petición. A diferencia del alta, aquí se admite cantidad cero
// (agotar un artículo sin borrarlo).
func (uc *UseCase) Update(ctx context.Context, req dto.UpdateInventoryRequest) (*entity.InventoryItem, error) {
	if req.ID == "" {
		return nil, domain.Validationf("falta el campo requerido: id")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, domain.Validationf("la cantidad no puede ser negativa")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, domain.Validationf("el precio no puede ser negativo")
	}
	if req.MinStock != nil && *req.MinStock < 0 {
		return nil, domain.Validationf("el stock mínimo no puede ser negativo")
	}

	var item *entity.InventoryItem
	err := uc.tx.Run(ctx, func() error {
		var err error
		item, err = uc.items.GetByID(req.ID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		if req.Model != nil {
			item.Model = *req.Model
		}
		if req.Size != nil {
			item.Size = *req.Size
		}
		if req.Brand != nil {
			item.Brand = *req.Brand
		}
		if req.WarehouseID != nil {
			item.WarehouseID = *req.WarehouseID
		}
		if req.Quantity != nil {
			item.Quantity = *req.Quantity
		}
		if req.Price != nil {
			item.Price = *req.Price
		}
		if req.MinStock != nil {
			item.MinStock = *req.MinStock
		}
		now := time.Now()
		item.UpdatedAt = &now

		if err := uc.items.Replace(item); err != nil {
			return err
		}
		txn := entity.NewTransaction(entity.TxnInventoryUpdated,
			fmt.Sprintf("Inventario actualizado: %s %s", item.Brand, item.Model),
			item, "", now)
		return uc.txns.Append(txn)
	}, repository.CollectionInventory, repository.CollectionTransactions)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("item_id", item.ID).Msg("artículo de inventario actualizado")
	return item, nil
}

// Delete elimina un artículo por ID y registra la baja con el snapshot
// del artículo eliminado como payload.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Validationf("falta el campo requerido: id")
	}

	err := uc.tx.Run(ctx, func() error {
		item, err := uc.items.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := uc.items.Delete(id); err != nil {
			return err
		}
		txn := entity.NewTransaction(entity.TxnInventoryDeleted,
			fmt.Sprintf("Eliminado del inventario: %s %s", item.Brand, item.Model),
			item, "", time.Now())
		return uc.txns.Append(txn)
	}, repository.CollectionInventory, repository.CollectionTransactions)
	if err != nil {
		return err
	}

	uc.log.Info().Str("item_id", id).Msg("artículo eliminado del inventario")
	return nil
}

func validateAdd(req dto.AddInventoryRequest) error {
	if req.Model == "" || req.Size == "" || req.Brand == "" || req.WarehouseID == "" ||
		req.Quantity == nil || req.Price == nil || req.MinStock == nil {
		return domain.Validationf("faltan campos requeridos: model, size, brand, warehouse, quantity, price, minStock")
	}
	if *req.Quantity <= 0 {
		return domain.Validationf("la cantidad debe ser mayor que cero")
	}
	if req.Price.IsNegative() {
		return domain.Validationf("el precio no puede ser negativo")
	}
	if *req.MinStock < 0 {
		return domain.Validationf("el stock mínimo no puede ser negativo")
	}
	return nil
}
