package productdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"apptendo/lib/catalog"
	"apptendo/lib/productdb/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("apptendo.lib.productdb")

var ErrUnknownCategory = errors.New("category has no row in the categories table")

// Mirror copies cached records into the relational store. Rows are only
// ever inserted, an existing product keeps its date and category.
type Mirror struct {
	db  *sql.DB
	qry *db.Queries
}

func NewMirror(database *sql.DB) Mirror {
	return Mirror{
		db:  database,
		qry: db.New(database),
	}
}

// EnsureSchema creates both tables if needed and seeds the fixed set of
// categories.
func (m Mirror) EnsureSchema(ctx context.Context) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range db.Statements() {
		_, err := tx.ExecContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	txqry := m.qry.WithTx(tx)
	for _, c := range catalog.Categories() {
		err := txqry.CreateCategory(ctx, db.CreateCategoryParams{
			ID:    int64(c),
			Label: c.String(),
		})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.String(), err)
		}
	}

	return tx.Commit()
}

// Mirror inserts every record whose name is not in the products table yet
// and returns how many rows were inserted. A record whose category cannot
// be resolved aborts the whole batch.
func (m Mirror) Mirror(ctx context.Context, records []catalog.NamedRecord) (int, error) {
	ctx, span := tracer.Start(ctx, "Mirror")
	defer span.End()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	txqry := m.qry.WithTx(tx)

	categoryIds := map[string]int64{}
	inserted := 0
	for _, r := range records {
		label := r.CategoryLabel()
		categoryId, ok := categoryIds[label]
		if !ok {
			categoryId, err = txqry.GetCategoryId(ctx, label)
			if errors.Is(err, sql.ErrNoRows) {
				err = fmt.Errorf("%w: %q (product %q)", ErrUnknownCategory, label, r.Name)
				span.SetStatus(codes.Error, err.Error())
				return 0, err
			}
			if err != nil {
				return 0, err
			}
			categoryIds[label] = categoryId
		}

		n, err := txqry.CreateProduct(ctx, db.CreateProductParams{
			Name:        r.Name,
			ReleaseDate: r.ReleaseDate,
			CategoryID:  categoryId,
		})
		if err != nil {
			return 0, fmt.Errorf("insert product %q: %w", r.Name, err)
		}
		inserted += int(n)
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}

	span.SetAttributes(
		attribute.Int("records", len(records)),
		attribute.Int("inserted", inserted),
	)
	slog.DebugContext(ctx, "mirrored products", "records", len(records), "inserted", inserted)
	return inserted, nil
}

type Product struct {
	ID          int64
	Name        string
	ReleaseDate string
	CategoryID  int64
	Category    string
}

func (m Mirror) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := m.qry.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Product, len(rows))
	for i, r := range rows {
		out[i] = Product{
			ID:          r.ID,
			Name:        r.Name,
			ReleaseDate: r.ReleaseDate,
			CategoryID:  r.CategoryID,
			Category:    r.Label,
		}
	}
	return out, nil
}
