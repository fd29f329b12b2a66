package product

import "github.com/shopspring/decimal"

type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// DefaultImage is stored when a product is created without an image.
const DefaultImage = "https://via.placeholder.com/300x250?text=Product+Image"

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"productname"`
	Category    string          `json:"category"`
	PricePerKg  decimal.Decimal `json:"price_1kg"`
	PriceHalfKg decimal.Decimal `json:"price_500gm"`
	StockStatus StockStatus     `json:"stock_status"`
	Image       *string         `json:"image"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string          `json:"productname"  validate:"required"                       example:"Chicken Wings"`
	Category    string          `json:"category"     validate:"required"                       example:"chicken"`
	PricePerKg  decimal.Decimal `json:"price_1kg"    validate:"required,gt=0"                  swaggertype:"number" example:"380"`
	PriceHalfKg decimal.Decimal `json:"price_500gm"  validate:"required,gt=0"                  swaggertype:"number" example:"195"`
	StockStatus StockStatus     `json:"stock_status" validate:"required,oneof=in_stock out_of_stock" example:"in_stock"`
	Image       string          `json:"image"`
}

// UpdateProductRequest payload of partial update. Omitted fields keep
// their stored value.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string          `json:"productname"  validate:"omitempty,min=1"`
	Category    *string          `json:"category"     validate:"omitempty,min=1"`
	PricePerKg  *decimal.Decimal `json:"price_1kg"    validate:"omitempty,gt=0" swaggertype:"number"`
	PriceHalfKg *decimal.Decimal `json:"price_500gm"  validate:"omitempty,gt=0" swaggertype:"number"`
	StockStatus *StockStatus     `json:"stock_status" validate:"omitempty,oneof=in_stock out_of_stock"`
	Image       *string          `json:"image"`
}

// Empty reports whether the request changes nothing.
func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.Category == nil && r.PricePerKg == nil &&
		r.PriceHalfKg == nil && r.StockStatus == nil && r.Image == nil
}
