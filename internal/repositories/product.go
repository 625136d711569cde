package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/avazquez/tienda-api/internal/logger"
	"github.com/avazquez/tienda-api/internal/models"
)

// ProductReadRepository reads product rows.
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// GetByID returns the product with the given id, or (nil, nil) when absent.
func (r *ProductReadRepository) GetByID(ctx context.Context, id int64) (*models.ProductDB, error) {
	const query = `
		SELECT id, name, description, price, stock, image, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product models.ProductDB
	err := r.db.GetContext(ctx, &product, query, id)

	logger.Log.Infow("product select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductWriteRepository writes product rows.
type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// Save inserts a product and returns its id. When id is non-nil the
// client-chosen id is used, otherwise the serial default assigns one.
func (r *ProductWriteRepository) Save(ctx context.Context, id *int64, name string, description *string, price float64, stock int, image *string) (int64, error) {
	var (
		query string
		args  []any
	)

	if id != nil {
		query = `
			INSERT INTO products (id, name, description, price, stock, image, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING id
		`
		args = []any{*id, name, description, price, stock, image}
	} else {
		query = `
			INSERT INTO products (name, description, price, stock, image, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			RETURNING id
		`
		args = []any{name, description, price, stock, image}
	}

	var newID int64
	err := r.db.GetContext(ctx, &newID, query, args...)

	logger.Log.Infow("product insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", newID,
		"error", err,
	)

	return newID, err
}

// Update replaces all mutable columns of the product row.
// Returns the number of rows affected.
func (r *ProductWriteRepository) Update(ctx context.Context, p *models.ProductDB) (int64, error) {
	const query = `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, image = $6, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{p.ID, p.Name, p.Description, p.Price, p.Stock, p.Image}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("product update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the product row. Returns the number of rows affected.
func (r *ProductWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM products WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("product delete",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
