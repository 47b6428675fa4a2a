package graph

import (
	"github.com/lucamancino/spese/internal/catalog"
	"github.com/lucamancino/spese/internal/ledger"
)

// Response types carry json tags matching the schema field names; the
// executor resolves struct fields through them.

type userResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Status    *string `json:"status"`
	Role      *string `json:"role"`
	LastLogin *string `json:"lastLogin"`
}

type cardResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Color         *string `json:"color"`
	InitialCredit float64 `json:"initialCredit"`
	StartDate     *string `json:"startDate"`
}

type expenseResponse struct {
	ID          int64   `json:"id"`
	CardID      int64   `json:"cardId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    *string `json:"category"`
}

type incomeResponse struct {
	ID          int64   `json:"id"`
	CardID      int64   `json:"cardId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    *string `json:"category"`
}

type expenseProductResponse struct {
	ID         int64   `json:"id"`
	ExpenseID  int64   `json:"expenseId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Note       *string `json:"note"`
	ItemType   *string `json:"itemType"`
	ExpiryDate *string `json:"expiryDate"`
}

type productResponse struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	Currency    string `json:"currency"`
	Source      string `json:"source"`
}

func toUserResponse(u *ledger.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		Role:      u.Role,
		LastLogin: u.LastLogin,
	}
}

func toUserResponses(users []*ledger.User) []userResponse {
	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}

	return resp
}

func toCardResponse(c *ledger.Card) cardResponse {
	return cardResponse{
		ID:            c.ID,
		Name:          c.Name,
		Color:         c.Color,
		InitialCredit: c.InitialCredit.InexactFloat64(),
		StartDate:     c.StartDate,
	}
}

func toCardResponses(cards []*ledger.Card) []cardResponse {
	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = toCardResponse(c)
	}

	return resp
}

func toExpenseResponse(e *ledger.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		CardID:      e.CardID,
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Date:        e.Date,
		Category:    e.Category,
	}
}

func toExpenseResponses(expenses []*ledger.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toExpenseResponse(e)
	}

	return resp
}

func toIncomeResponse(in *ledger.Income) incomeResponse {
	return incomeResponse{
		ID:          in.ID,
		CardID:      in.CardID,
		Description: in.Description,
		Amount:      in.Amount.InexactFloat64(),
		Date:        in.Date,
		Category:    in.Category,
	}
}

func toIncomeResponses(incomes []*ledger.Income) []incomeResponse {
	resp := make([]incomeResponse, len(incomes))
	for i, in := range incomes {
		resp[i] = toIncomeResponse(in)
	}

	return resp
}

func toExpenseProductResponse(item *ledger.ExpenseItem) expenseProductResponse {
	return expenseProductResponse{
		ID:         item.ID,
		ExpenseID:  item.ExpenseID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Price:      item.Price.InexactFloat64(),
		Note:       item.Note,
		ItemType:   item.ItemType,
		ExpiryDate: item.ExpiryDate,
	}
}

func toExpenseProductResponses(items []*ledger.ExpenseItem) []expenseProductResponse {
	resp := make([]expenseProductResponse, len(items))
	for i, item := range items {
		resp[i] = toExpenseProductResponse(item)
	}

	return resp
}

func toProductResponse(p *catalog.Product) productResponse {
	resp := productResponse{
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		Image:       p.Image,
		SKU:         p.SKU,
		Description: p.Description,
		Brand:       p.Brand,
		Currency:    p.Currency,
		Source:      p.Source,
	}

	// Live lookups have no local row id.
	if p.ID != 0 {
		id := p.ID
		resp.ID = &id
	}

	return resp
}

func toProductResponses(products []*catalog.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}

	return resp
}
