// Package payment turns a selected plan and payer details into the browser
// redirect a hosted payment gateway expects.
package payment

import (
	"context"
	"errors"

	"predator-web/internal/constant"
	"predator-web/internal/entity"
)

var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

const (
	MethodPost = "POST"
	MethodGet  = "GET"
)

type Field struct {
	Name  string
	Value string
}

// Redirect is where the browser goes next. For MethodPost the fields are
// submitted as a form in order; for MethodGet URL is followed as is.
type Redirect struct {
	Gateway string
	Method  string
	URL     string
	Fields  []Field
}

// Value returns the first field named name.
func (r *Redirect) Value(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

type Payer struct {
	FirstName string
	LastName  string
	Email     string
}

type Order struct {
	PlanID    string
	ItemName  string
	Amount    float64
	Payer     Payer
	ReturnURL string
}

func NewOrder(plan entity.PricingPlan, payer Payer, returnURL string) Order {
	return Order{
		PlanID:    plan.Id,
		ItemName:  constant.CheckoutItemPrefix + plan.Name,
		Amount:    plan.PriceValue,
		Payer:     payer,
		ReturnURL: returnURL,
	}
}

type Gateway interface {
	Name() string
	Sandbox() bool
	Redirect(ctx context.Context, order Order) (*Redirect, error)
}
