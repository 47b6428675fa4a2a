package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lucamancino/spese/internal/catalog"
)

// Store reads the mirrored products table. There are no write paths: the
// mirror is refreshed by a separate process.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectProductColumns = `id, name, price, category, image, sku, description, brand, currency, source`

func (s *Store) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*catalog.Product

	for rows.Next() {
		var (
			p                                    catalog.Product
			category, image, sku                 sql.NullString
			description, brand, currency, source sql.NullString
		)

		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &category, &image, &sku, &description, &brand, &currency, &source); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		p.Category = category.String
		p.Image = image.String
		p.SKU = sku.String
		p.Description = description.String
		p.Brand = brand.String
		p.Currency = currency.String
		p.Source = source.String

		products = append(products, &p)
	}

	return products, rows.Err()
}

func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM products WHERE category IS NOT NULL ORDER BY category`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []string

	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}
