package dto

// ClearOldTransactionsRequest poda del log por antigüedad en días.
// Puntero para distinguir "parámetro ausente" de cero.
type ClearOldTransactionsRequest struct {
	Days *int `json:"days"`
}

// PruneResult resultado de la poda del log.
type PruneResult struct {
	Deleted   int `json:"deleted"`
	Remaining int `json:"remaining"`
}
