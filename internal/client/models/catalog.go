package models

import "strconv"

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Supplier struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Product mirrors the backend payload. Price arrives as a decimal string
// ("500.00"); use PriceValue for arithmetic.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	ImageID     *int     `json:"imageId"`
	Quantity    int      `json:"quantity"`
	CategoryID  int      `json:"categoryId"`
	SupplierID  int      `json:"supplierId"`
	CreatedAt   string   `json:"createdAt"`
	Category    Category `json:"category"`
	Supplier    Supplier `json:"supplier"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// PriceValue parses the decimal price string. A malformed price yields 0;
// the server is the authority on money, the client only displays and sums it.
func (p Product) PriceValue() float64 {
	v, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0
	}
	return v
}

type WishlistItem struct {
	ID      int             `json:"id"`
	Product WishlistProduct `json:"product"`
}

// WishlistProduct is the reduced product shape the wishlist endpoint returns.
type WishlistProduct struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}
