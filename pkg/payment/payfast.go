package payment

import (
	"context"
	"fmt"
)

const (
	PayFastSandboxURL    = "https://sandbox.payfast.co.za/eng/process"
	PayFastProductionURL = "https://www.payfast.co.za/eng/process"
)

type PayFastConfig struct {
	MerchantID  string
	MerchantKey string
	Sandbox     bool
}

// PayFast has no server-side call: the browser posts the form directly to
// the hosted process page.
type PayFast struct {
	cfg PayFastConfig
}

var _ Gateway = &PayFast{}

func NewPayFast(cfg PayFastConfig) *PayFast {
	return &PayFast{cfg: cfg}
}

func (p *PayFast) Name() string { return "PayFast" }

func (p *PayFast) Sandbox() bool { return p.cfg.Sandbox }

func (p *PayFast) ProcessURL() string {
	if p.cfg.Sandbox {
		return PayFastSandboxURL
	}
	return PayFastProductionURL
}

func (p *PayFast) Redirect(_ context.Context, order Order) (*Redirect, error) {
	return &Redirect{
		Gateway: p.Name(),
		Method:  MethodPost,
		URL:     p.ProcessURL(),
		Fields: []Field{
			{Name: "merchant_id", Value: p.cfg.MerchantID},
			{Name: "merchant_key", Value: p.cfg.MerchantKey},
			{Name: "amount", Value: fmt.Sprintf("%.2f", order.Amount)},
			{Name: "item_name", Value: order.ItemName},
			{Name: "return_url", Value: order.ReturnURL},
			{Name: "cancel_url", Value: order.ReturnURL},
			{Name: "notify_url", Value: order.ReturnURL},
			{Name: "name_first", Value: order.Payer.FirstName},
			{Name: "name_last", Value: order.Payer.LastName},
			{Name: "email_address", Value: order.Payer.Email},
		},
	}, nil
}
