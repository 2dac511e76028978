package collections

import (
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

// EnsureDefaults siembra los datos de referencia (proveedores y bodegas)
// la primera vez que arranca el sistema. Las colecciones que ya tienen
// registros se dejan intactas.
func EnsureDefaults(store DocumentStore) error {
	var suppliers []*entity.Supplier
	if err := store.Load(repository.CollectionSuppliers, &suppliers); err != nil {
		return err
	}
	if len(suppliers) == 0 {
		suppliers = []*entity.Supplier{
			{ID: "1", Name: "Bridgestone Philippines", Contact: "+63 917 111 1111"},
			{ID: "2", Name: "Michelin Philippines", Contact: "+63 917 222 2222"},
			{ID: "3", Name: "Goodyear Philippines", Contact: "+63 917 333 3333"},
		}
		if err := store.Persist(repository.CollectionSuppliers, suppliers); err != nil {
			return err
		}
	}

	var warehouses []*entity.Warehouse
	if err := store.Load(repository.CollectionWarehouses, &warehouses); err != nil {
		return err
	}
	if len(warehouses) == 0 {
		warehouses = []*entity.Warehouse{
			{
				ID:       "main",
				Name:     "Main Warehouse",
				Address:  "Indang, Cavite, Philippines",
				Manager:  "Juan Santos",
				Contact:  "+63 917 123 4567",
				Capacity: 2000,
				Status:   "active",
			},
			{
				ID:       "branch1",
				Name:     "Branch 1 Warehouse",
				Address:  "Tagaytay City, Cavite, Philippines",
				Manager:  "Maria Cruz",
				Contact:  "+63 917 234 5678",
				Capacity: 800,
				Status:   "active",
			},
			{
				ID:       "branch2",
				Name:     "Branch 2 Warehouse",
				Address:  "Dasmarinas City, Cavite, Philippines",
				Manager:  "Pedro Reyes",
				Contact:  "+63 917 345 6789",
				Capacity: 1200,
				Status:   "active",
			},
		}
		if err := store.Persist(repository.CollectionWarehouses, warehouses); err != nil {
			return err
		}
	}
	return nil
}
