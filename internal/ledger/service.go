package ledger

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	ListUsers(ctx context.Context) ([]*User, error)
	ListCards(ctx context.Context) ([]*Card, error)
	UpdateCard(ctx context.Context, id int64, params CardUpdateParams) (*Card, error)

	ListExpenses(ctx context.Context, cardID *int64) ([]*Expense, error)
	CreateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id int64) (*Expense, error)
	DeleteExpenses(ctx context.Context, ids []int64) ([]*Expense, error)

	ListIncomes(ctx context.Context, cardID *int64) ([]*Income, error)
	CreateIncome(ctx context.Context, in *Income) error
	DeleteIncome(ctx context.Context, id int64) (*Income, error)
	DeleteIncomes(ctx context.Context, ids []int64) ([]*Income, error)

	ListExpenseItems(ctx context.Context, expenseID int64) ([]*ExpenseItem, error)
	CreateExpenseItem(ctx context.Context, item *ExpenseItem) error
}

// CardUpdateParams carries the updatable card fields. A nil field is left
// untouched; when every field is nil the update is a no-op and storage is
// never contacted.
type CardUpdateParams struct {
	InitialCredit *decimal.Decimal
	StartDate     *string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ExpenseParams struct {
	CardID      int64
	Description string
	Amount      decimal.Decimal
	Date        string
	Category    *string
}

type IncomeParams struct {
	CardID      int64
	Description string
	Amount      decimal.Decimal
	Date        string
	Category    *string
}

type ExpenseItemParams struct {
	ExpenseID  int64
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Note       *string
	ItemType   *string
	ExpiryDate *string
}

func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) ListCards(ctx context.Context) ([]*Card, error) {
	return s.repo.ListCards(ctx)
}

func (s *Service) UpdateCard(ctx context.Context, id int64, params CardUpdateParams) (*Card, error) {
	return s.repo.UpdateCard(ctx, id, params)
}

func (s *Service) ListExpenses(ctx context.Context, cardID *int64) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, cardID)
}

func (s *Service) CreateExpense(ctx context.Context, params ExpenseParams) (*Expense, error) {
	e := &Expense{
		CardID:      params.CardID,
		Description: params.Description,
		Amount:      params.Amount,
		Date:        normalizeDate(params.Date),
		Category:    params.Category,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id int64) (*Expense, error) {
	return s.repo.DeleteExpense(ctx, id)
}

func (s *Service) DeleteExpenses(ctx context.Context, ids []int64) ([]*Expense, error) {
	if len(ids) == 0 {
		return []*Expense{}, nil
	}

	return s.repo.DeleteExpenses(ctx, ids)
}

func (s *Service) ListIncomes(ctx context.Context, cardID *int64) ([]*Income, error) {
	return s.repo.ListIncomes(ctx, cardID)
}

func (s *Service) CreateIncome(ctx context.Context, params IncomeParams) (*Income, error) {
	in := &Income{
		CardID:      params.CardID,
		Description: params.Description,
		Amount:      params.Amount,
		Date:        normalizeDate(params.Date),
		Category:    params.Category,
	}
	if err := s.repo.CreateIncome(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

func (s *Service) DeleteIncome(ctx context.Context, id int64) (*Income, error) {
	return s.repo.DeleteIncome(ctx, id)
}

func (s *Service) DeleteIncomes(ctx context.Context, ids []int64) ([]*Income, error) {
	if len(ids) == 0 {
		return []*Income{}, nil
	}

	return s.repo.DeleteIncomes(ctx, ids)
}

func (s *Service) ListExpenseItems(ctx context.Context, expenseID int64) ([]*ExpenseItem, error) {
	return s.repo.ListExpenseItems(ctx, expenseID)
}

func (s *Service) CreateExpenseItem(ctx context.Context, params ExpenseItemParams) (*ExpenseItem, error) {
	item := &ExpenseItem{
		ExpenseID: params.ExpenseID,
		Name:      params.Name,
		Quantity:  params.Quantity,
		Price:     params.Price,
		Note:      params.Note,
		ItemType:  params.ItemType,
	}
	if params.ExpiryDate != nil {
		expiry := normalizeDate(*params.ExpiryDate)
		item.ExpiryDate = &expiry
	}

	if err := s.repo.CreateExpenseItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// normalizeDate maps a millisecond Unix timestamp to a UTC calendar-date
// string. Values that do not parse as a finite number are stored as given.
func normalizeDate(s string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}

	return time.UnixMilli(int64(v)).UTC().Format(time.DateOnly)
}
