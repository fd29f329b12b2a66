package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate_UniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "promocodes_code_key"})

	got := translate(err)

	assert.True(t, errors.Is(got, ErrUniqueViolation))
	assert.Contains(t, got.Error(), "promocodes_code_key")
}

func TestTranslate_PassesOtherErrorsThrough(t *testing.T) {
	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, other, translate(other))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, translate(plain))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("boom")))
}

func TestNew_DefaultsTimeoutAndLock(t *testing.T) {
	db := New(nil, Options{})
	assert.Nil(t, db.mu)
	assert.NotZero(t, db.timeout)

	serial := New(nil, Options{Serialize: true})
	assert.NotNil(t, serial.mu)
}
