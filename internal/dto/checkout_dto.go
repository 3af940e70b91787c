package dto

// CheckoutRequest is the payer identity from the checkout modal. Fields
// are only checked for presence.
type CheckoutRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required"`
	LastName  string `json:"last_name" form:"last_name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required"`
}

type CheckoutRedirectResponse struct {
	Gateway string            `json:"gateway"`
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Fields  []CheckoutFieldDTO `json:"fields,omitempty"`
}

type CheckoutFieldDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
