package dto

// CreateReorderRequest alta de una solicitud de reposición.
type CreateReorderRequest struct {
	ItemID      string `json:"itemId"`
	Model       string `json:"model"`
	Size        string `json:"size"`
	Brand       string `json:"brand"`
	Quantity    *int   `json:"quantity"`
	WarehouseID string `json:"warehouse"`
	Priority    string `json:"priority"`
	Notes       string `json:"notes"`
	CreatedBy   string `json:"createdBy"`
}

// UpdateReorderStatusRequest cambio de estado de una reposición. Notes
// como puntero: solo se sobrescribe si viene en el cuerpo.
type UpdateReorderStatusRequest struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}
