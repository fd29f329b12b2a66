package promo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/amcmart-api/internal/store/storetest"
)

func TestPGRepo_ValidatorAgainstPostgres(t *testing.T) {
	db := storetest.New(t)
	ctx := context.Background()
	repo := NewPGRepo(db)

	id, err := repo.Create(ctx, &PromoCode{Code: "SAVE50", Discount: decimal.NewFromInt(50), Status: Active, Used: UsedNo})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &PromoCode{Code: "SAVE50", Discount: decimal.NewFromInt(10), Status: Active, Used: UsedNo})
	assert.ErrorIs(t, err, ErrAlreadyExist)

	v := NewValidator(repo)
	applied, err := v.Validate(ctx, " save50 ")
	require.NoError(t, err)
	assert.Equal(t, "SAVE50", applied.Code)
	assert.True(t, applied.Discount.Equal(decimal.NewFromInt(50)))

	used := UsedYes
	require.NoError(t, repo.Update(ctx, id, UpdatePromoRequest{Used: &used}))
	_, err = v.Validate(ctx, "SAVE50")
	assert.ErrorIs(t, err, ErrInvalidCode)

	ok, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}
