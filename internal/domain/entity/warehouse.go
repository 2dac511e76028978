package entity

// Warehouse representa una bodega o sucursal donde se almacena inventario.
// La capacidad se fija al crearla y no cambia.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Manager  string `json:"manager"`
	Contact  string `json:"contact"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}
