package stock

// Tier clasifica el nivel de stock de un artículo respecto a su mínimo.
type Tier string

const (
	TierOut    Tier = "out"
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Classify devuelve el nivel de stock en función de quantity y minStock.
// Los límites son inclusivos hacia el nivel inferior: quantity == minStock
// es "low" y quantity == minStock*2 es "medium".
func Classify(quantity, minStock int) Tier {
	switch {
	case quantity == 0:
		return TierOut
	case quantity <= minStock:
		return TierLow
	case quantity <= minStock*2:
		return TierMedium
	default:
		return TierHigh
	}
}

// IsLowStock indica si el artículo cuenta como stock bajo para las
// estadísticas por bodega: incluye tanto "low" como "out"
// (quantity <= minStock).
func IsLowStock(quantity, minStock int) bool {
	return quantity <= minStock
}
