package repository

import "context"

// TxRunner ejecuta una operación lógica con exclusión mutua sobre las
// colecciones que declara. El ciclo load-modify-persist del almacén no es
// seguro bajo concurrencia sin esto: dos mutaciones simultáneas sobre la
// misma colección se pisarían la escritura (lost update).
//
// La implementación debe adquirir los locks en un orden global fijo
// (nombre de colección ordenado) para evitar interbloqueos cuando una
// operación toca varias colecciones, y mantenerlos durante toda la
// operación lógica (p. ej. una confirmación de entrega completa).
type TxRunner interface {
	Run(ctx context.Context, fn func() error, collections ...string) error
}
