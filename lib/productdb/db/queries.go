package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const createCategory = `-- name: CreateCategory :exec
INSERT OR IGNORE INTO categories (id, label) VALUES (?, ?)
`

type CreateCategoryParams struct {
	ID    int64
	Label string
}

func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) error {
	_, err := q.db.ExecContext(ctx, createCategory, arg.ID, arg.Label)
	return err
}

const getCategoryId = `-- name: GetCategoryId :one
SELECT id FROM categories WHERE label = ?
`

func (q *Queries) GetCategoryId(ctx context.Context, label string) (int64, error) {
	row := q.db.QueryRowContext(ctx, getCategoryId, label)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getCategories = `-- name: GetCategories :many
SELECT id, label FROM categories ORDER BY id
`

type Category struct {
	ID    int64
	Label string
}

func (q *Queries) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, getCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var i Category
		if err := rows.Scan(&i.ID, &i.Label); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createProduct = `-- name: CreateProduct :execrows
INSERT OR IGNORE INTO products (name, release_date, category_id) VALUES (?, ?, ?)
`

type CreateProductParams struct {
	Name        string
	ReleaseDate string
	CategoryID  int64
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, createProduct, arg.Name, arg.ReleaseDate, arg.CategoryID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getProducts = `-- name: GetProducts :many
SELECT products.id, products.name, products.release_date, products.category_id, categories.label
FROM products
INNER JOIN categories ON categories.id = products.category_id
ORDER BY products.id
`

type GetProductsRow struct {
	ID          int64
	Name        string
	ReleaseDate string
	CategoryID  int64
	Label       string
}

func (q *Queries) GetProducts(ctx context.Context) ([]GetProductsRow, error) {
	rows, err := q.db.QueryContext(ctx, getProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetProductsRow
	for rows.Next() {
		var i GetProductsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.ReleaseDate,
			&i.CategoryID,
			&i.Label,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
