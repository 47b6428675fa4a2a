package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/lucamancino/spese/internal/catalog"
	"github.com/lucamancino/spese/internal/ledger"
)

// Resolver is the root resolver binding schema operations to the services.
//
// Resolvers are the error boundary of the API: a failing collaborator is
// logged with its operation context and surfaces as a null field, never as a
// failed request. Not-found deletes and no-op updates are null too.
type Resolver struct {
	ledger  *ledger.Service
	catalog *catalog.Service
}

func NewResolver(l *ledger.Service, c *catalog.Service) *Resolver {
	return &Resolver{ledger: l, catalog: c}
}

func (r *Resolver) users(p graphql.ResolveParams) (any, error) {
	users, err := r.ledger.ListUsers(p.Context)
	if err != nil {
		slog.Error("listing users", "error", err)
		return nil, nil
	}

	return toUserResponses(users), nil
}

func (r *Resolver) cards(p graphql.ResolveParams) (any, error) {
	cards, err := r.ledger.ListCards(p.Context)
	if err != nil {
		slog.Error("listing cards", "error", err)
		return nil, nil
	}

	return toCardResponses(cards), nil
}

func (r *Resolver) expenses(p graphql.ResolveParams) (any, error) {
	cardID, err := optionalIDArg(p.Args, "cardId")
	if err != nil {
		slog.Error("listing expenses", "error", err)
		return nil, nil
	}

	expenses, err := r.ledger.ListExpenses(p.Context, cardID)
	if err != nil {
		slog.Error("listing expenses", "error", err)
		return nil, nil
	}

	return toExpenseResponses(expenses), nil
}

func (r *Resolver) incomes(p graphql.ResolveParams) (any, error) {
	cardID, err := optionalIDArg(p.Args, "cardId")
	if err != nil {
		slog.Error("listing incomes", "error", err)
		return nil, nil
	}

	incomes, err := r.ledger.ListIncomes(p.Context, cardID)
	if err != nil {
		slog.Error("listing incomes", "error", err)
		return nil, nil
	}

	return toIncomeResponses(incomes), nil
}

func (r *Resolver) expenseProducts(p graphql.ResolveParams) (any, error) {
	expenseID, err := parseID(p.Args["expenseId"])
	if err != nil {
		slog.Error("listing expense products", "error", err)
		return nil, nil
	}

	items, err := r.ledger.ListExpenseItems(p.Context, expenseID)
	if err != nil {
		slog.Error("listing expense products", "expenseId", expenseID, "error", err)
		return nil, nil
	}

	return toExpenseProductResponses(items), nil
}

func (r *Resolver) addExpense(p graphql.ResolveParams) (any, error) {
	input, _ := p.Args["input"].(map[string]any)

	params, err := expenseParamsFromInput(input)
	if err != nil {
		slog.Error("adding expense", "error", err)
		return nil, nil
	}

	e, err := r.ledger.CreateExpense(p.Context, params)
	if err != nil {
		slog.Error("adding expense", "cardId", params.CardID, "error", err)
		return nil, nil
	}

	return toExpenseResponse(e), nil
}

func (r *Resolver) deleteExpense(p graphql.ResolveParams) (any, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		slog.Error("deleting expense", "error", err)
		return nil, nil
	}

	e, err := r.ledger.DeleteExpense(p.Context, id)
	if err != nil {
		if !errors.Is(err, ledger.ErrNotFound) {
			slog.Error("deleting expense", "id", id, "error", err)
		}

		return nil, nil
	}

	return toExpenseResponse(e), nil
}

func (r *Resolver) deleteExpenses(p graphql.ResolveParams) (any, error) {
	ids, err := parseIDs(p.Args["ids"])
	if err != nil {
		slog.Error("deleting expenses", "error", err)
		return nil, nil
	}

	deleted, err := r.ledger.DeleteExpenses(p.Context, ids)
	if err != nil {
		slog.Error("deleting expenses", "ids", ids, "error", err)
		return nil, nil
	}

	return toExpenseResponses(deleted), nil
}

func (r *Resolver) addExpenseProduct(p graphql.ResolveParams) (any, error) {
	expenseID, err := parseID(p.Args["expenseId"])
	if err != nil {
		slog.Error("adding expense product", "error", err)
		return nil, nil
	}

	product, _ := p.Args["product"].(map[string]any)
	params := ledger.ExpenseItemParams{
		ExpenseID: expenseID,
		Name:      stringArg(product, "name"),
		Quantity:  intArg(product, "quantity"),
		Price:     decimalArg(product, "price"),
		Note:      optionalStringArg(product, "note"),
		ItemType:  optionalStringArg(product, "itemType"),
	}
	params.ExpiryDate = optionalStringArg(product, "expiryDate")

	item, err := r.ledger.CreateExpenseItem(p.Context, params)
	if err != nil {
		slog.Error("adding expense product", "expenseId", expenseID, "error", err)
		return nil, nil
	}

	return toExpenseProductResponse(item), nil
}

func (r *Resolver) addIncome(p graphql.ResolveParams) (any, error) {
	input, _ := p.Args["input"].(map[string]any)

	params, err := incomeParamsFromInput(input)
	if err != nil {
		slog.Error("adding income", "error", err)
		return nil, nil
	}

	in, err := r.ledger.CreateIncome(p.Context, params)
	if err != nil {
		slog.Error("adding income", "cardId", params.CardID, "error", err)
		return nil, nil
	}

	return toIncomeResponse(in), nil
}

func (r *Resolver) deleteIncome(p graphql.ResolveParams) (any, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		slog.Error("deleting income", "error", err)
		return nil, nil
	}

	in, err := r.ledger.DeleteIncome(p.Context, id)
	if err != nil {
		if !errors.Is(err, ledger.ErrNotFound) {
			slog.Error("deleting income", "id", id, "error", err)
		}

		return nil, nil
	}

	return toIncomeResponse(in), nil
}

func (r *Resolver) deleteIncomes(p graphql.ResolveParams) (any, error) {
	ids, err := parseIDs(p.Args["ids"])
	if err != nil {
		slog.Error("deleting incomes", "error", err)
		return nil, nil
	}

	deleted, err := r.ledger.DeleteIncomes(p.Context, ids)
	if err != nil {
		slog.Error("deleting incomes", "ids", ids, "error", err)
		return nil, nil
	}

	return toIncomeResponses(deleted), nil
}

func (r *Resolver) updateCard(p graphql.ResolveParams) (any, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		slog.Error("updating card", "error", err)
		return nil, nil
	}

	input, _ := p.Args["input"].(map[string]any)

	var params ledger.CardUpdateParams

	if v, ok := input["initialCredit"].(float64); ok {
		credit := decimal.NewFromFloat(v)
		params.InitialCredit = &credit
	}

	if v, ok := input["startDate"].(string); ok {
		params.StartDate = &v
	}

	card, err := r.ledger.UpdateCard(p.Context, id, params)
	if err != nil {
		if !errors.Is(err, ledger.ErrNotFound) {
			slog.Error("updating card", "id", id, "error", err)
		}

		return nil, nil
	}

	// Nil without error: no recognized fields, storage untouched.
	if card == nil {
		return nil, nil
	}

	return toCardResponse(card), nil
}

func (r *Resolver) products(p graphql.ResolveParams) (any, error) {
	products, err := r.catalog.List(p.Context)
	if err != nil {
		slog.Error("listing products", "error", err)
		return nil, nil
	}

	return toProductResponses(products), nil
}

func (r *Resolver) categories(p graphql.ResolveParams) (any, error) {
	categories, err := r.catalog.Categories(p.Context)
	if err != nil {
		slog.Error("listing categories", "error", err)
		return nil, nil
	}

	return categories, nil
}

func (r *Resolver) product(p graphql.ResolveParams) (any, error) {
	sku, _ := p.Args["sku"].(string)

	prod, err := r.catalog.Lookup(p.Context, sku)
	if err != nil {
		slog.Error("fetching product", "sku", sku, "error", err)
		return nil, nil
	}

	return toProductResponse(prod), nil
}

func expenseParamsFromInput(input map[string]any) (ledger.ExpenseParams, error) {
	cardID, err := parseID(input["cardId"])
	if err != nil {
		return ledger.ExpenseParams{}, fmt.Errorf("parsing cardId: %w", err)
	}

	return ledger.ExpenseParams{
		CardID:      cardID,
		Description: stringArg(input, "description"),
		Amount:      decimalArg(input, "amount"),
		Date:        stringArg(input, "date"),
		Category:    optionalStringArg(input, "category"),
	}, nil
}

func incomeParamsFromInput(input map[string]any) (ledger.IncomeParams, error) {
	cardID, err := parseID(input["cardId"])
	if err != nil {
		return ledger.IncomeParams{}, fmt.Errorf("parsing cardId: %w", err)
	}

	return ledger.IncomeParams{
		CardID:      cardID,
		Description: stringArg(input, "description"),
		Amount:      decimalArg(input, "amount"),
		Date:        stringArg(input, "date"),
		Category:    optionalStringArg(input, "category"),
	}, nil
}

// parseID accepts the ID scalar's coerced forms.
func parseID(v any) (int64, error) {
	switch id := v.(type) {
	case string:
		return strconv.ParseInt(id, 10, 64)
	case int:
		return int64(id), nil
	default:
		return 0, fmt.Errorf("unexpected id type %T", v)
	}
}

func parseIDs(v any) ([]int64, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected ids type %T", v)
	}

	ids := make([]int64, 0, len(raw))

	for _, r := range raw {
		id, err := parseID(r)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func optionalIDArg(args map[string]any, key string) (*int64, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func optionalStringArg(args map[string]any, key string) *string {
	s, ok := args[key].(string)
	if !ok {
		return nil
	}

	return &s
}

func intArg(args map[string]any, key string) int {
	n, _ := args[key].(int)
	return n
}

func decimalArg(args map[string]any, key string) decimal.Decimal {
	switch v := args[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	default:
		return decimal.Decimal{}
	}
}
