package model

// Helado represents an ice-cream flavour in the catalogue.
// Precio is kept as text; no arithmetic is performed on it.
type Helado struct {
	ID     int32  `json:"id" db:"id"`
	Sabor  string `json:"sabor" db:"sabor"`
	Precio string `json:"precio" db:"precio"`
}

// HeladoRequest represents the request payload for creating or replacing a helado.
// Any supplied id is accepted and ignored.
type HeladoRequest struct {
	ID     *int32  `json:"id,omitempty"`
	Sabor  *string `json:"sabor"`
	Precio *string `json:"precio"`
}
