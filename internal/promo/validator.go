package promo

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidCode = errors.New("Invalid or expired promo code")
	ErrEmptyCode   = errors.New("promo code is required")
)

// Validator checks whether a code can be applied. It holds no state
// besides the repository.
type Validator struct {
	repo Repository
}

func NewValidator(repo Repository) *Validator { return &Validator{repo: repo} }

func (v *Validator) Validate(ctx context.Context, code string) (*Applied, error) {
	code = Normalize(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	p, err := v.repo.FindApplicable(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	return &Applied{
		Code:     p.Code,
		Discount: p.Discount,
		Message:  fmt.Sprintf("Promo code applied! ₹%s discount", p.Discount.String()),
	}, nil
}
