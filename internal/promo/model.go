package promo

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	Active   Status = "active"
	Inactive Status = "inactive"
)

// Used is stored as "yes"/"no" to keep the wire format of existing clients.
type Used string

const (
	UsedYes Used = "yes"
	UsedNo  Used = "no"
)

type PromoCode struct {
	ID       int64           `json:"id"`
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Status   Status          `json:"status"`
	Used     Used            `json:"used"`
}

// Applicable reports whether the code can still be redeemed.
func (p PromoCode) Applicable() bool {
	return p.Status == Active && p.Used == UsedNo
}

// Normalize trims and uppercases a code; lookups are case-insensitive.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreatePromoRequest payload of creation.
// swagger:model CreatePromoRequest
type CreatePromoRequest struct {
	Code     string          `json:"code"     validate:"required"                example:"SAVE50"`
	Discount decimal.Decimal `json:"discount" validate:"required,gt=0"           swaggertype:"number" example:"50"`
	Status   Status          `json:"status"   validate:"omitempty,oneof=active inactive" example:"active"`
}

// UpdatePromoRequest payload of partial update.
// swagger:model UpdatePromoRequest
type UpdatePromoRequest struct {
	Code     *string          `json:"code"`
	Discount *decimal.Decimal `json:"discount" validate:"omitempty,gt=0" swaggertype:"number"`
	Status   *Status          `json:"status"   validate:"omitempty,oneof=active inactive"`
	Used     *Used            `json:"used"     validate:"omitempty,oneof=yes no"`
}

// ValidateRequest is the body of POST /api/promo/validate.
// swagger:model ValidatePromoRequest
type ValidateRequest struct {
	Code string `json:"code" validate:"required" example:"save50"`
}

// Applied is what a successful validation returns.
type Applied struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Message  string          `json:"message"`
}
