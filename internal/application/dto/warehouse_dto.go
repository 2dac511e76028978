package dto

import "github.com/dgarciat/tirestock-api/internal/domain/entity"

// WarehouseStats estadísticas por bodega, recalculadas en cada lectura.
type WarehouseStats struct {
	CurrentStock  int `json:"currentStock"`
	CapacityUsed  int `json:"capacityUsed"` // porcentaje redondeado; 0 si la capacidad es 0
	LowStockItems int `json:"lowStockItems"`
	TotalItems    int `json:"totalItems"` // conteo de referencias, no de unidades
}

// WarehouseWithStats bodega con su bloque de estadísticas embebido.
type WarehouseWithStats struct {
	*entity.Warehouse
	Stats WarehouseStats `json:"stats"`
}

// WarehouseInventoryResponse detalle de bodega con su inventario.
type WarehouseInventoryResponse struct {
	Warehouse *entity.Warehouse       `json:"warehouse"`
	Inventory []*entity.InventoryItem `json:"inventory"`
}
