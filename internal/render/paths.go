package render

import (
	"predator-web/internal/entity"
	"predator-web/internal/view"
)

// Route paths the rendered actions post to. The controllers register the
// matching patterns.
const (
	PathNavigate       = "/navigate/"
	PathFrameworks     = "/frameworks/"
	PathCheckout       = "/checkout/"
	PathCheckoutClose  = "/checkout/close"
	PathCheckoutSubmit = "/checkout/submit"
	PathContact        = "/contact"
	PathConsultant     = "/consultant"
	suffixOverview     = "/overview"
	suffixSelect       = "/select"
	suffixCheckoutOpen = "/open"
)

func NavigatePath(id view.ID) string {
	return PathNavigate + string(id)
}

func OverviewPath(t entity.FrameworkType) string {
	return PathFrameworks + string(t) + suffixOverview
}

func SelectFrameworkPath(t entity.FrameworkType) string {
	return PathFrameworks + string(t) + suffixSelect
}

func OpenCheckoutPath(planId string) string {
	return PathCheckout + planId + suffixCheckoutOpen
}
