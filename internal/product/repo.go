// Package product provides the repository interface and PostgreSQL implementation for managing products.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/amcmart-api/internal/store"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Query struct {
	Q        string
	Category string
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, p *Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, q Query) ([]Product, error)
	Update(ctx context.Context, id int64, in UpdateProductRequest) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *store.DB }

func NewPGRepo(db *store.DB) *PGRepo { return &PGRepo{db: db} }

const productColumns = `id, productname, category, price_1kg, price_500gm, stock_status, image`

func scanProduct(row pgx.Row, p *Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Category, &p.PricePerKg, &p.PriceHalfKg, &p.StockStatus, &p.Image)
}

func (r *PGRepo) Create(ctx context.Context, p *Product) (int64, error) {
	id, err := r.db.InsertReturningID(ctx, `
		INSERT INTO products (productname, category, price_1kg, price_500gm, stock_status, image)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, p.Name, p.Category, p.PricePerKg, p.PriceHalfKg, p.StockStatus, p.Image)
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}
	p.ID = id
	return id, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.FetchOne(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, []any{id},
		&p.ID, &p.Name, &p.Category, &p.PricePerKg, &p.PriceHalfKg, &p.StockStatus, &p.Image)
	if store.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, error) {
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	out := []Product{}
	err := r.db.FetchAll(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE ($1 = '' OR productname ILIKE '%'||$1||'%')
		  AND ($2 = '' OR category = $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, func(rows pgx.Rows) error {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	}, strings.TrimSpace(q.Q), strings.TrimSpace(q.Category), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *PGRepo) Update(ctx context.Context, id int64, in UpdateProductRequest) error {
	n, err := r.db.Exec(ctx, `
		UPDATE products
		SET productname  = COALESCE(NULLIF($2,''), productname),
		    category     = COALESCE(NULLIF($3,''), category),
		    price_1kg    = COALESCE($4, price_1kg),
		    price_500gm  = COALESCE($5, price_500gm),
		    stock_status = COALESCE(NULLIF($6,''), stock_status),
		    image        = COALESCE($7, image)
		WHERE id = $1
	`, id, in.Name, in.Category, in.PricePerKg, in.PriceHalfKg, in.StockStatus, in.Image)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return n > 0, nil
}
