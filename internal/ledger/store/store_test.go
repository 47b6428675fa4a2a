package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucamancino/spese/internal/ledger"
)

// passthroughConverter lets slice and pointer arguments through to the mock;
// the pgx driver accepts them, the default converter does not.
type passthroughConverter struct{}

func (passthroughConverter) ConvertValue(v any) (driver.Value, error) {
	if valuer, ok := v.(driver.Valuer); ok {
		return valuer.Value()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}

		return driver.Value(rv.Elem().Interface()), nil
	}

	return driver.Value(v), nil
}

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(passthroughConverter{}))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return New(db), mock
}

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "card_id", "description", "amount", "date", "category"})
}

func TestUpdateCard_NoFieldsIssuesNoStatement(t *testing.T) {
	s, mock := newMock(t)

	card, err := s.UpdateCard(context.Background(), 7, ledger.CardUpdateParams{})

	assert.NoError(t, err)
	assert.Nil(t, card)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCard_SingleField(t *testing.T) {
	s, mock := newMock(t)

	start := "2024-01-01"
	rows := sqlmock.NewRows([]string{"id", "name", "color", "initial_credit", "start_date"}).
		AddRow(7, "Viaggi", nil, "150.00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE cards SET start_date = $1 WHERE id = $2 RETURNING id, name, color, initial_credit, start_date",
	)).WithArgs(&start, int64(7)).WillReturnRows(rows)

	card, err := s.UpdateCard(context.Background(), 7, ledger.CardUpdateParams{StartDate: &start})

	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, int64(7), card.ID)
	assert.True(t, card.InitialCredit.Equal(decimal.RequireFromString("150.00")))
	require.NotNil(t, card.StartDate)
	assert.Equal(t, "2024-01-01", *card.StartDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCard_BothFields(t *testing.T) {
	s, mock := newMock(t)

	credit := decimal.RequireFromString("99.90")
	start := "2024-02-01"
	rows := sqlmock.NewRows([]string{"id", "name", "color", "initial_credit", "start_date"}).
		AddRow(7, "Viaggi", "#ff0000", "99.90", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE cards SET initial_credit = $1, start_date = $2 WHERE id = $3 RETURNING id, name, color, initial_credit, start_date",
	)).WithArgs(&credit, &start, int64(7)).WillReturnRows(rows)

	card, err := s.UpdateCard(context.Background(), 7, ledger.CardUpdateParams{
		InitialCredit: &credit,
		StartDate:     &start,
	})

	require.NoError(t, err)
	require.NotNil(t, card)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCard_NotFound(t *testing.T) {
	s, mock := newMock(t)

	start := "2024-01-01"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE cards SET start_date = $1")).
		WithArgs(&start, int64(404)).
		WillReturnError(sql.ErrNoRows)

	card, err := s.UpdateCard(context.Background(), 404, ledger.CardUpdateParams{StartDate: &start})

	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, card)
}

func TestListExpenses_FilterOrdersByIDDesc(t *testing.T) {
	s, mock := newMock(t)

	rows := expenseRows().
		AddRow(9, 3, "spesa", "42.50", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "food").
		AddRow(4, 3, "benzina", "60.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, card_id, description, amount, date, category FROM expenses WHERE card_id = $1 ORDER BY id DESC",
	)).WithArgs(int64(3)).WillReturnRows(rows)

	cardID := int64(3)
	expenses, err := s.ListExpenses(context.Background(), &cardID)

	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, int64(9), expenses[0].ID)
	assert.Equal(t, int64(4), expenses[1].ID)
	assert.Equal(t, "2024-03-02", expenses[0].Date)
	require.NotNil(t, expenses[0].Category)
	assert.Equal(t, "food", *expenses[0].Category)
	assert.Nil(t, expenses[1].Category)
}

func TestListExpenses_NoFilter(t *testing.T) {
	s, mock := newMock(t)

	rows := expenseRows().
		AddRow(2, 1, "a", "1.00", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), nil).
		AddRow(1, 2, "b", "2.00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, card_id, description, amount, date, category FROM expenses ORDER BY id DESC",
	)).WillReturnRows(rows)

	expenses, err := s.ListExpenses(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, expenses, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExpense_ReturnsGeneratedID(t *testing.T) {
	s, mock := newMock(t)

	e := &ledger.Expense{
		CardID:      3,
		Description: "spesa",
		Amount:      decimal.RequireFromString("42.50"),
		Date:        "2024-03-02",
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO expenses (card_id, description, amount, date, category) VALUES ($1, $2, $3, $4, $5) RETURNING id",
	)).WithArgs(int64(3), "spesa", e.Amount, "2024-03-02", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	require.NoError(t, s.CreateExpense(context.Background(), e))
	assert.Equal(t, int64(11), e.ID)
}

func TestDeleteExpense_CascadesItems(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"DELETE FROM expenses WHERE id = $1 RETURNING id, card_id, description, amount, date, category",
	)).WithArgs(int64(5)).
		WillReturnRows(expenseRows().AddRow(5, 3, "spesa", "42.50", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), nil))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE expense_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	e, err := s.DeleteExpense(context.Background(), 5)

	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, int64(5), e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpense_NotFoundSkipsCascade(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM expenses WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	e, err := s.DeleteExpense(context.Background(), 404)

	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, e)
	// No item-delete statement may run when the parent delete matched nothing.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpenses_ReturnsOnlyMatchingRows(t *testing.T) {
	s, mock := newMock(t)

	rows := expenseRows().
		AddRow(1, 3, "a", "1.00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil).
		AddRow(2, 3, "b", "2.00", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		"DELETE FROM expenses WHERE id = ANY($1) RETURNING id, card_id, description, amount, date, category",
	)).WithArgs([]int64{1, 2, 99}).WillReturnRows(rows)

	deleted, err := s.DeleteExpenses(context.Background(), []int64{1, 2, 99})

	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Len(t, deleted, 2)
}

func TestDeleteExpenses_NoMatchesReturnsEmptySet(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM expenses WHERE id = ANY($1)")).
		WithArgs([]int64{98, 99}).
		WillReturnRows(expenseRows())

	deleted, err := s.DeleteExpenses(context.Background(), []int64{98, 99})

	require.NoError(t, err)
	assert.NotNil(t, deleted)
	assert.Empty(t, deleted)
}

func TestDeleteIncome_NoCascade(t *testing.T) {
	s, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "card_id", "description", "amount", "date", "category"}).
		AddRow(8, 3, "stipendio", "1500.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		"DELETE FROM incomes WHERE id = $1 RETURNING id, card_id, description, amount, date, category",
	)).WithArgs(int64(8)).WillReturnRows(rows)

	in, err := s.DeleteIncome(context.Background(), 8)

	require.NoError(t, err)
	require.NotNil(t, in)
	assert.Equal(t, int64(8), in.ID)
	// Exactly one statement: incomes have no dependent rows.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExpenseItem_NullableFields(t *testing.T) {
	s, mock := newMock(t)

	note := "bio"
	item := &ledger.ExpenseItem{
		ExpenseID: 5,
		Name:      "latte",
		Quantity:  2,
		Price:     decimal.RequireFromString("1.20"),
		Note:      &note,
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO items (expense_id, name, quantity, price, note, item_type, expiry_date) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
	)).WithArgs(int64(5), "latte", 2, item.Price, &note, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	require.NoError(t, s.CreateExpenseItem(context.Background(), item))
	assert.Equal(t, int64(21), item.ID)
}
