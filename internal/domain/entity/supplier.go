package entity

// Supplier es un proveedor de llantas (datos de referencia estáticos).
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}
