package promo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/amcmart-api/internal/store"
)

var (
	ErrNotFound     = errors.New("promo code not found")
	ErrAlreadyExist = errors.New("promo code already exists")
)

type Repository interface {
	Create(ctx context.Context, p *PromoCode) (int64, error)
	GetByID(ctx context.Context, id int64) (*PromoCode, error)
	// FindApplicable returns the active, unused code or ErrNotFound.
	FindApplicable(ctx context.Context, code string) (*PromoCode, error)
	List(ctx context.Context) ([]PromoCode, error)
	Update(ctx context.Context, id int64, in UpdatePromoRequest) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *store.DB }

func NewPGRepo(db *store.DB) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p *PromoCode) (int64, error) {
	id, err := r.db.InsertReturningID(ctx, `
		INSERT INTO promocodes (code, discount, status, used)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, p.Code, p.Discount, p.Status, p.Used)
	if errors.Is(err, store.ErrUniqueViolation) {
		return 0, ErrAlreadyExist
	}
	if err != nil {
		return 0, fmt.Errorf("create promo code: %w", err)
	}
	p.ID = id
	return id, nil
}

func (r *PGRepo) get(ctx context.Context, sql string, args ...any) (*PromoCode, error) {
	var p PromoCode
	err := r.db.FetchOne(ctx, sql, args, &p.ID, &p.Code, &p.Discount, &p.Status, &p.Used)
	if store.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get promo code: %w", err)
	}
	return &p, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*PromoCode, error) {
	return r.get(ctx, `SELECT id, code, discount, status, used FROM promocodes WHERE id=$1`, id)
}

func (r *PGRepo) FindApplicable(ctx context.Context, code string) (*PromoCode, error) {
	return r.get(ctx, `
		SELECT id, code, discount, status, used
		FROM promocodes
		WHERE code=$1 AND status='active' AND used='no'
	`, Normalize(code))
}

func (r *PGRepo) List(ctx context.Context) ([]PromoCode, error) {
	out := []PromoCode{}
	err := r.db.FetchAll(ctx, `SELECT id, code, discount, status, used FROM promocodes ORDER BY id DESC`,
		func(rows pgx.Rows) error {
			var p PromoCode
			if err := rows.Scan(&p.ID, &p.Code, &p.Discount, &p.Status, &p.Used); err != nil {
				return err
			}
			out = append(out, p)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("list promo codes: %w", err)
	}
	return out, nil
}

func (r *PGRepo) Update(ctx context.Context, id int64, in UpdatePromoRequest) error {
	var code *string
	if in.Code != nil {
		c := Normalize(*in.Code)
		code = &c
	}
	n, err := r.db.Exec(ctx, `
		UPDATE promocodes
		SET code     = COALESCE(NULLIF($2,''), code),
		    discount = COALESCE($3, discount),
		    status   = COALESCE(NULLIF($4,''), status),
		    used     = COALESCE(NULLIF($5,''), used)
		WHERE id = $1
	`, id, code, in.Discount, in.Status, in.Used)
	if errors.Is(err, store.ErrUniqueViolation) {
		return ErrAlreadyExist
	}
	if err != nil {
		return fmt.Errorf("update promo code: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM promocodes WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete promo code: %w", err)
	}
	return n > 0, nil
}
