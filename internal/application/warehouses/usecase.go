package warehouses

import (
	"context"
	"math"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
	"github.com/dgarciat/tirestock-api/internal/domain/stock"
)

// UseCase agrega inventario por bodega. Es de solo lectura: recalcula
// las estadísticas sobre el snapshot actual en cada llamada, sin caché.
type UseCase struct {
	tx         repository.TxRunner
	warehouses repository.WarehouseRepository
	items      repository.InventoryRepository
}

// NewUseCase construye el agregador de bodegas.
func NewUseCase(
	tx repository.TxRunner,
	warehouses repository.WarehouseRepository,
	items repository.InventoryRepository,
) *UseCase {
	return &UseCase{tx: tx, warehouses: warehouses, items: items}
}

// List devuelve todas las bodegas con su bloque de estadísticas
// calculado sobre el inventario actual.
func (uc *UseCase) List(ctx context.Context) ([]dto.WarehouseWithStats, error) {
	var out []dto.WarehouseWithStats
	err := uc.tx.Run(ctx, func() error {
		whs, err := uc.warehouses.List()
		if err != nil {
			return err
		}
		items, err := uc.items.List()
		if err != nil {
			return err
		}
		out = make([]dto.WarehouseWithStats, 0, len(whs))
		for _, w := range whs {
			out = append(out, dto.WarehouseWithStats{
				Warehouse: w,
				Stats:     computeStats(w, items),
			})
		}
		return nil
	}, repository.CollectionInventory, repository.CollectionWarehouses)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Inventory devuelve una bodega con su inventario asociado.
func (uc *UseCase) Inventory(ctx context.Context, warehouseID string) (*dto.WarehouseInventoryResponse, error) {
	if warehouseID == "" {
		return nil, domain.Validationf("falta el parámetro requerido: warehouse")
	}

	var resp *dto.WarehouseInventoryResponse
	err := uc.tx.Run(ctx, func() error {
		w, err := uc.warehouses.GetByID(warehouseID)
		if err != nil {
			return err
		}
		if w == nil {
			return domain.ErrNotFound
		}
		items, err := uc.items.ListByWarehouse(warehouseID)
		if err != nil {
			return err
		}
		resp = &dto.WarehouseInventoryResponse{Warehouse: w, Inventory: items}
		return nil
	}, repository.CollectionInventory, repository.CollectionWarehouses)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// computeStats recorre el snapshot de inventario una vez por bodega.
// capacityUsed es porcentaje redondeado; 0 cuando la capacidad es 0.
// lowStockItems cuenta referencias con cantidad <= stock mínimo, lo que
// incluye las agotadas.
func computeStats(w *entity.Warehouse, items []*entity.InventoryItem) dto.WarehouseStats {
	var s dto.WarehouseStats
	for _, it := range items {
		if it.WarehouseID != w.ID {
			continue
		}
		s.TotalItems++
		s.CurrentStock += it.Quantity
		if stock.IsLowStock(it.Quantity, it.MinStock) {
			s.LowStockItems++
		}
	}
	if w.Capacity > 0 {
		s.CapacityUsed = int(math.Round(float64(s.CurrentStock) / float64(w.Capacity) * 100))
	}
	return s
}
