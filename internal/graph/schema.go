package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema declares the full operation surface and binds each operation to
// the resolver. Requests that name an undeclared operation or miss a required
// argument are rejected by the executor before any resolver runs.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status":    &graphql.Field{Type: graphql.String},
			"role":      &graphql.Field{Type: graphql.String},
			"lastLogin": &graphql.Field{Type: graphql.String},
		},
	})

	cardType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Card",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"color":         &graphql.Field{Type: graphql.String},
			"initialCredit": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"startDate":     &graphql.Field{Type: graphql.String},
		},
	})

	expenseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Expense",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"cardId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"amount":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"date":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"category":    &graphql.Field{Type: graphql.String},
		},
	})

	incomeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Income",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"cardId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"amount":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"date":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"category":    &graphql.Field{Type: graphql.String},
		},
	})

	expenseProductType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ExpenseProduct",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"expenseId":  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"quantity":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"price":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"note":       &graphql.Field{Type: graphql.String},
			"itemType":   &graphql.Field{Type: graphql.String},
			"expiryDate": &graphql.Field{Type: graphql.String},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.ID},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.Field{Type: graphql.String},
			"category":    &graphql.Field{Type: graphql.String},
			"image":       &graphql.Field{Type: graphql.String},
			"sku":         &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"brand":       &graphql.Field{Type: graphql.String},
			"currency":    &graphql.Field{Type: graphql.String},
			"source":      &graphql.Field{Type: graphql.String},
		},
	})

	expenseInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ExpenseInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cardId":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"date":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"category":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	incomeInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "IncomeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cardId":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"date":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"category":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	expenseProductInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ExpenseProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"quantity":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"price":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"note":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"itemType":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"expiryDate": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	cardUpdateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CardUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"initialCredit": &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"startDate":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.users,
			},
			"cards": &graphql.Field{
				Type:    graphql.NewList(cardType),
				Resolve: r.cards,
			},
			"expenses": &graphql.Field{
				Type: graphql.NewList(expenseType),
				Args: graphql.FieldConfigArgument{
					"cardId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.expenses,
			},
			"incomes": &graphql.Field{
				Type: graphql.NewList(incomeType),
				Args: graphql.FieldConfigArgument{
					"cardId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.incomes,
			},
			"expenseProducts": &graphql.Field{
				Type: graphql.NewList(expenseProductType),
				Args: graphql.FieldConfigArgument{
					"expenseId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.expenseProducts,
			},
			"products": &graphql.Field{
				Type:    graphql.NewList(productType),
				Resolve: r.products,
			},
			"categories": &graphql.Field{
				Type:    graphql.NewList(graphql.String),
				Resolve: r.categories,
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"sku": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.product,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addExpense": &graphql.Field{
				Type: expenseType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(expenseInput)},
				},
				Resolve: r.addExpense,
			},
			"deleteExpense": &graphql.Field{
				Type: expenseType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteExpense,
			},
			"deleteExpenses": &graphql.Field{
				Type: graphql.NewList(expenseType),
				Args: graphql.FieldConfigArgument{
					"ids": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
				},
				Resolve: r.deleteExpenses,
			},
			"addExpenseProduct": &graphql.Field{
				Type: expenseProductType,
				Args: graphql.FieldConfigArgument{
					"expenseId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"product":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(expenseProductInput)},
				},
				Resolve: r.addExpenseProduct,
			},
			"addIncome": &graphql.Field{
				Type: incomeType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(incomeInput)},
				},
				Resolve: r.addIncome,
			},
			"deleteIncome": &graphql.Field{
				Type: incomeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteIncome,
			},
			"deleteIncomes": &graphql.Field{
				Type: graphql.NewList(incomeType),
				Args: graphql.FieldConfigArgument{
					"ids": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
				},
				Resolve: r.deleteIncomes,
			},
			"updateCard": &graphql.Field{
				Type: cardType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(cardUpdateInput)},
				},
				Resolve: r.updateCard,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
