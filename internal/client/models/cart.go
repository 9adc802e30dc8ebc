package models

// CartLine is one product entry in the local shopping cart. ID is the
// product id; lines are unique by it.
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}
