package dto

// CreateProductDTO — Price is a pointer so a zero price still passes the
// required binding; no range check (negative prices are accepted as-is).
type CreateProductDTO struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock"` // defaults to true when omitted
}
