package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string           `json:"name"   validate:"required"`
	City   string           `json:"city"   validate:"required"`
	Total  decimal.Decimal  `json:"total"  validate:"required,gt=0"`
	Email  string           `json:"email"  validate:"omitempty,email"`
	Kind   string           `json:"kind"   validate:"omitempty,oneof=a b"`
	Refund *decimal.Decimal `json:"refund" validate:"omitempty,gt=0"`
}

func TestCheck_Valid(t *testing.T) {
	s := sample{Name: "x", City: "y", Total: decimal.RequireFromString("10.50")}
	assert.NoError(t, Check(New(), s))
}

func TestCheck_ReportsAllMissingFieldsByJSONName(t *testing.T) {
	err := Check(New(), sample{})

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"name", "city", "total"}, ve.Missing)
	assert.Equal(t, "Missing required fields: name, city, total", ve.Error())
}

func TestCheck_InvalidValues(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	s := sample{
		Name:   "x",
		City:   "y",
		Total:  decimal.NewFromInt(-5),
		Email:  "not-an-email",
		Kind:   "c",
		Refund: &neg,
	}

	err := Check(New(), s)

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, ve.Missing)
	assert.Equal(t, []string{"email", "kind", "refund", "total"}, ve.Fields())
	assert.Equal(t, "must be greater than 0", ve.Invalid["total"])
	assert.Contains(t, ve.Error(), "Invalid fields: email must be a valid email address")
}
