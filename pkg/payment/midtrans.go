package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type MidtransConfig struct {
	ServerKey string
	Sandbox   bool
}

type snapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

// Midtrans creates a Snap transaction and sends the browser to its hosted
// page.
type Midtrans struct {
	client  snapClient
	sandbox bool
}

var _ Gateway = &Midtrans{}

func NewMidtrans(cfg MidtransConfig) *Midtrans {
	env := midtrans.Production
	if cfg.Sandbox {
		env = midtrans.Sandbox
	}
	var c snap.Client
	c.New(cfg.ServerKey, env)
	return &Midtrans{client: &c, sandbox: cfg.Sandbox}
}

func (m *Midtrans) Name() string { return "Midtrans" }

func (m *Midtrans) Sandbox() bool { return m.sandbox }

func (m *Midtrans) Redirect(_ context.Context, order Order) (*Redirect, error) {
	amount := int64(math.Round(order.Amount))

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  uuid.NewString(),
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: order.ReturnURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: order.Payer.FirstName,
			LName: order.Payer.LastName,
			Email: order.Payer.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    order.PlanID,
				Price: amount,
				Qty:   1,
				Name:  order.ItemName,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	resp, midErr := m.client.CreateTransaction(req)
	if midErr != nil {
		return nil, fmt.Errorf("%w: midtrans: %s", ErrGatewayUnavailable, midErr.GetMessage())
	}

	return &Redirect{
		Gateway: m.Name(),
		Method:  MethodGet,
		URL:     resp.RedirectURL,
	}, nil
}
