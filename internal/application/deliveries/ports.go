package deliveries

import (
	"time"

	"github.com/dgarciat/tirestock-api/internal/domain/entity"
)

// StockCreator es el puerto hacia el libro mayor de inventario para la
// confirmación de entregas. La implementación asume que el llamador ya
// sostiene los locks de inventory y transactions.
type StockCreator interface {
	AddFromDeliveryInTx(d *entity.Delivery, now time.Time) (*entity.InventoryItem, error)
}
