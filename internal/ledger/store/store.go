package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucamancino/spese/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const (
	selectUserColumns    = `id, name, email, status, role, last_login`
	selectCardColumns    = `id, name, color, initial_credit, start_date`
	selectExpenseColumns = `id, card_id, description, amount, date, category`
	selectIncomeColumns  = `id, card_id, description, amount, date, category`
	selectItemColumns    = `id, expense_id, name, quantity, price, note, item_type, expiry_date`
)

func scanUser(s scanner) (*ledger.User, error) {
	var (
		u            ledger.User
		status, role sql.NullString
		lastLogin    sql.NullTime
	)

	if err := s.Scan(&u.ID, &u.Name, &u.Email, &status, &role, &lastLogin); err != nil {
		return nil, err
	}

	u.Status = nullableString(status)
	u.Role = nullableString(role)

	if lastLogin.Valid {
		formatted := lastLogin.Time.UTC().Format(time.RFC3339)
		u.LastLogin = &formatted
	}

	return &u, nil
}

func scanCard(s scanner) (*ledger.Card, error) {
	var (
		c     ledger.Card
		color sql.NullString
		start sql.NullTime
	)

	if err := s.Scan(&c.ID, &c.Name, &color, &c.InitialCredit, &start); err != nil {
		return nil, err
	}

	c.Color = nullableString(color)
	c.StartDate = nullableDate(start)

	return &c, nil
}

func scanExpense(s scanner) (*ledger.Expense, error) {
	var (
		e        ledger.Expense
		date     time.Time
		category sql.NullString
	)

	if err := s.Scan(&e.ID, &e.CardID, &e.Description, &e.Amount, &date, &category); err != nil {
		return nil, err
	}

	e.Date = date.Format(time.DateOnly)
	e.Category = nullableString(category)

	return &e, nil
}

func scanIncome(s scanner) (*ledger.Income, error) {
	var (
		in       ledger.Income
		date     time.Time
		category sql.NullString
	)

	if err := s.Scan(&in.ID, &in.CardID, &in.Description, &in.Amount, &date, &category); err != nil {
		return nil, err
	}

	in.Date = date.Format(time.DateOnly)
	in.Category = nullableString(category)

	return &in, nil
}

func scanItem(s scanner) (*ledger.ExpenseItem, error) {
	var (
		item           ledger.ExpenseItem
		note, itemType sql.NullString
		expiry         sql.NullTime
	)

	if err := s.Scan(&item.ID, &item.ExpenseID, &item.Name, &item.Quantity, &item.Price, &note, &itemType, &expiry); err != nil {
		return nil, err
	}

	item.Note = nullableString(note)
	item.ItemType = nullableString(itemType)
	item.ExpiryDate = nullableDate(expiry)

	return &item, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}

	return &ns.String
}

func nullableDate(nt sql.NullTime) *string {
	if !nt.Valid {
		return nil
	}

	formatted := nt.Time.Format(time.DateOnly)

	return &formatted
}

func (s *Store) ListUsers(ctx context.Context) ([]*ledger.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*ledger.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Store) ListCards(ctx context.Context) ([]*ledger.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM cards ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []*ledger.Card

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}

		cards = append(cards, c)
	}

	return cards, rows.Err()
}

// UpdateCard touches only the fields present in params. When nothing is set
// it returns (nil, nil) without issuing a statement.
func (s *Store) UpdateCard(ctx context.Context, id int64, params ledger.CardUpdateParams) (*ledger.Card, error) {
	clauses := []setClause{
		{column: "initial_credit", value: params.InitialCredit, set: params.InitialCredit != nil},
		{column: "start_date", value: params.StartDate, set: params.StartDate != nil},
	}

	query, args, ok := buildUpdate("cards", selectCardColumns, clauses, id)
	if !ok {
		return nil, nil
	}

	card, err := scanCard(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("updating card: %w", err)
	}

	return card, nil
}

func (s *Store) ListExpenses(ctx context.Context, cardID *int64) ([]*ledger.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses`

	var args []any

	if cardID != nil {
		query += ` WHERE card_id = $1`

		args = append(args, *cardID)
	}

	// Most-recent-first is part of the API contract.
	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*ledger.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (s *Store) CreateExpense(ctx context.Context, e *ledger.Expense) error {
	query := `INSERT INTO expenses (card_id, description, amount, date, category) VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		e.CardID,
		e.Description,
		e.Amount,
		e.Date,
		e.Category,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

// DeleteExpense removes an expense and its line items. Both statements run in
// one transaction; the item cleanup only runs when the parent delete matched.
func (s *Store) DeleteExpense(ctx context.Context, id int64) (*ledger.Expense, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning delete tx: %w", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM expenses WHERE id = $1 RETURNING ` + selectExpenseColumns

	e, err := scanExpense(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("deleting expense: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE expense_id = $1`, id); err != nil {
		return nil, fmt.Errorf("deleting expense items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing expense delete: %w", err)
	}

	return e, nil
}

func (s *Store) DeleteExpenses(ctx context.Context, ids []int64) ([]*ledger.Expense, error) {
	query := `DELETE FROM expenses WHERE id = ANY($1) RETURNING ` + selectExpenseColumns

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("deleting expenses: %w", err)
	}
	defer rows.Close()

	deleted := []*ledger.Expense{}

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning deleted expense: %w", err)
		}

		deleted = append(deleted, e)
	}

	return deleted, rows.Err()
}

func (s *Store) ListIncomes(ctx context.Context, cardID *int64) ([]*ledger.Income, error) {
	query := `SELECT ` + selectIncomeColumns + ` FROM incomes`

	var args []any

	if cardID != nil {
		query += ` WHERE card_id = $1`

		args = append(args, *cardID)
	}

	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var incomes []*ledger.Income

	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		incomes = append(incomes, in)
	}

	return incomes, rows.Err()
}

func (s *Store) CreateIncome(ctx context.Context, in *ledger.Income) error {
	query := `INSERT INTO incomes (card_id, description, amount, date, category) VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		in.CardID,
		in.Description,
		in.Amount,
		in.Date,
		in.Category,
	).Scan(&in.ID)
	if err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}

// DeleteIncome has no cascade step: incomes carry no dependent rows.
func (s *Store) DeleteIncome(ctx context.Context, id int64) (*ledger.Income, error) {
	query := `DELETE FROM incomes WHERE id = $1 RETURNING ` + selectIncomeColumns

	in, err := scanIncome(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("deleting income: %w", err)
	}

	return in, nil
}

func (s *Store) DeleteIncomes(ctx context.Context, ids []int64) ([]*ledger.Income, error) {
	query := `DELETE FROM incomes WHERE id = ANY($1) RETURNING ` + selectIncomeColumns

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("deleting incomes: %w", err)
	}
	defer rows.Close()

	deleted := []*ledger.Income{}

	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning deleted income: %w", err)
		}

		deleted = append(deleted, in)
	}

	return deleted, rows.Err()
}

func (s *Store) ListExpenseItems(ctx context.Context, expenseID int64) ([]*ledger.ExpenseItem, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE expense_id = $1`

	rows, err := s.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("listing expense items: %w", err)
	}
	defer rows.Close()

	var items []*ledger.ExpenseItem

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense item: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *Store) CreateExpenseItem(ctx context.Context, item *ledger.ExpenseItem) error {
	query := `INSERT INTO items (expense_id, name, quantity, price, note, item_type, expiry_date) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		item.ExpenseID,
		item.Name,
		item.Quantity,
		item.Price,
		item.Note,
		item.ItemType,
		item.ExpiryDate,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("creating expense item: %w", err)
	}

	return nil
}
