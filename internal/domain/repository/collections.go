package repository

// Nombres de las colecciones persistidas. Cada colección es un documento
// completo propiedad exclusiva de su componente de dominio.
const (
	CollectionInventory    = "inventory"
	CollectionDeliveries   = "deliveries"
	CollectionSuppliers    = "suppliers"
	CollectionWarehouses   = "warehouses"
	CollectionTransactions = "transactions"
	CollectionReorders     = "reorders"
	CollectionUsers        = "users"
)
