package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// productRequest carries the four mutable product fields for create and
// update. Price and quantity accept zero, hence gte instead of required.
type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
}

// productResponse is the transport view of a product. Intentionally separate
// from the domain type so the JSON contract is not coupled to internal
// service changes.
type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
