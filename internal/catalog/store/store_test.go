package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db), mock
}

func TestListProducts_MapsNullColumnsToEmptyStrings(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, price, category, image, sku, description, brand, currency, source FROM products ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category", "image", "sku", "description", "brand", "currency", "source"}).
			AddRow(int64(1), "Pasta di semola", "1.99", `{"Dispensa","Pasta"}`, "https://img.example.com/{width}/p.jpg", "8001234", "Trafilata al bronzo", "Barilla", "EUR", "mirror").
			AddRow(int64(2), "Acqua naturale", "0.35", nil, nil, nil, nil, nil, nil, nil))

	products, err := s.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, int64(1), products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("1.99")))
	assert.Equal(t, `{"Dispensa","Pasta"}`, products[0].Category)

	assert.Equal(t, "Acqua naturale", products[1].Name)
	assert.Empty(t, products[1].Category)
	assert.Empty(t, products[1].Brand)
}

func TestListCategories_DistinctNonNull(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT category FROM products WHERE category IS NOT NULL ORDER BY category`)).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).
			AddRow(`{"Bevande"}`).
			AddRow(`{"Dispensa","Pasta"}`))

	categories, err := s.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{`{"Bevande"}`, `{"Dispensa","Pasta"}`}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
