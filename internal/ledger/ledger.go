package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an operation matches no row.
var ErrNotFound = errors.New("not found")

// User is read-only through this API; accounts are provisioned elsewhere.
type User struct {
	ID        int64
	Name      string
	Email     string
	Status    *string
	Role      *string
	LastLogin *string
}

// Card is a prepaid card that expenses and incomes are booked against.
// Cards are created outside this API; only initialCredit and startDate
// are updatable here.
type Card struct {
	ID            int64
	Name          string
	Color         *string
	InitialCredit decimal.Decimal
	StartDate     *string
}

type Expense struct {
	ID          int64
	CardID      int64
	Description string
	Amount      decimal.Decimal
	Date        string
	Category    *string
}

type Income struct {
	ID          int64
	CardID      int64
	Description string
	Amount      decimal.Decimal
	Date        string
	Category    *string
}

// ExpenseItem is a line item belonging to an expense, e.g. a single product
// on a grocery receipt.
type ExpenseItem struct {
	ID         int64
	ExpenseID  int64
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Note       *string
	ItemType   *string
	ExpiryDate *string
}
