package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/amcmart-api/internal/validation"
)

// Items is the opaque item list of an order. Clients send either a JSON
// string or a raw JSON array/object; both are kept as text.
type Items string

func (i *Items) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = Items(strings.TrimSpace(s))
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	switch buf.String() {
	case "[]", "{}":
		*i = ""
	default:
		*i = Items(buf.String())
	}
	return nil
}

// Amount is a decimal that reads "" and null as absent, so validation
// reports the field as missing instead of failing the whole body.
type Amount struct{ decimal.Decimal }

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || len(bytes.TrimSpace(bytes.Trim(b, `"`))) == 0 {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	return a.Decimal.UnmarshalJSON(b)
}

// newValidator is validation.New that also compares Amount as a number.
func newValidator() *validatorv10.Validate {
	v := validation.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		f, _ := field.Interface().(Amount).Float64()
		return f
	}, Amount{})
	return v
}

// Text is a string field that also accepts a bare JSON number, as sent
// for phone numbers and pincodes by older clients.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*t = Text(n.String())
	return nil
}

// CreateOrderRequest payload of order creation.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	FirstName     string `json:"firstName"     validate:"required" example:"Rajesh"`
	LastName      string `json:"lastName"      validate:"required" example:"Kumar"`
	PhoneNo       Text   `json:"phoneNo"       validate:"required" swaggertype:"string" example:"9876543210"`
	Email         string `json:"email"         validate:"omitempty,email" example:"rajesh@example.com"`
	Address       string `json:"address"       validate:"required" example:"123 MG Road"`
	City          string `json:"city"          validate:"required" example:"Mumbai"`
	Pincode       Text   `json:"pincode"       validate:"required" swaggertype:"string" example:"400001"`
	DeliveryType  string `json:"deliveryType"  validate:"required" example:"express"`
	PaymentMethod string `json:"paymentMethod" validate:"required" example:"online"`
	PromoCode     string `json:"promocode"     example:"SAVE50"`
	Items         Items  `json:"items"         validate:"required" swaggertype:"string" example:"[{\"name\":\"Chicken Wings\",\"quantity\":1}]"`
	Total         Amount `json:"total"         validate:"required,gt=0" swaggertype:"number" example:"440"`
}

// UpdateStatusRequest payload of PUT /api/orders/{id}/status.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=pending processing shipped delivered" example:"shipped"`
}

// Receipt is returned to the caller once an order is accepted.
type Receipt struct {
	OrderID      string `json:"order_id"`
	Message      string `json:"message"`
	CustomerName string `json:"customer_name"`
	Status       Status `json:"status"`
	// Persisted is false when the order was queued and not yet written.
	Persisted bool `json:"persisted"`
}
