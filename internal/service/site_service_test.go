package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/internal/catalog"
	"predator-web/internal/dto"
	"predator-web/internal/entity"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/view"
	"predator-web/pkg/events"
)

func TestSiteService_FreshSessionDefaults(t *testing.T) {
	f := newFixture(t)

	state, err := f.site.State(context.Background(), "new")
	require.NoError(t, err)
	assert.Equal(t, view.Home, state.View)
	assert.Equal(t, entity.FrameworkTypeOrganizational, state.Framework)
	assert.False(t, state.CheckoutOpen)
}

func TestSiteService_NavigatePersists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	scrolled, err := f.site.Navigate(ctx, "s", "about")
	require.NoError(t, err)
	assert.True(t, scrolled)

	state, _ := f.site.State(ctx, "s")
	assert.Equal(t, view.About, state.View)
}

func TestSiteService_InvalidNavigationKeepsState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.site.Navigate(ctx, "s", "pricing")
	require.NoError(t, err)

	scrolled, err := f.site.Navigate(ctx, "s", "checkout")
	assert.ErrorIs(t, err, view.ErrInvalidView)
	assert.False(t, scrolled)

	state, _ := f.site.State(ctx, "s")
	assert.Equal(t, view.Pricing, state.View)
}

func TestSiteService_OverviewSelectsAndShowsDetails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.site.Overview(ctx, "s", entity.FrameworkTypePrivateEquity))

	page, err := f.site.Page(ctx, "s")
	require.NoError(t, err)
	require.NotNil(t, page.ModelDetails)
	assert.Equal(t, entity.FrameworkTypePrivateEquity, page.ModelDetails.Type)

	err = f.site.Overview(ctx, "s", "HEDGE_FUND")
	assert.ErrorIs(t, err, catalog.ErrFrameworkNotFound)
}

func TestSiteService_BrowseToCheckoutScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.site.Navigate(ctx, "s", "models")
	require.NoError(t, err)
	require.NoError(t, f.site.SelectFramework(ctx, "s", entity.FrameworkTypePrivateEquity))
	_, err = f.site.Navigate(ctx, "s", "pricing")
	require.NoError(t, err)
	require.NoError(t, f.site.OpenCheckout(ctx, "s", "pe-consulting"))

	page, err := f.site.Page(ctx, "s")
	require.NoError(t, err)
	require.NotNil(t, page.Checkout)
	assert.Equal(t, "Consulting Partner", page.Checkout.PlanName)
	assert.Equal(t, "R 4,999", page.Checkout.PriceLabel)
	assert.Equal(t, "PayFast", page.Checkout.Gateway)
	assert.True(t, page.Checkout.Sandbox)

	require.NoError(t, f.site.CloseCheckout(ctx, "s"))

	state, _ := f.site.State(ctx, "s")
	assert.Equal(t, view.Pricing, state.View)
	assert.Equal(t, entity.FrameworkTypePrivateEquity, state.Framework)
	assert.Equal(t, "pe-consulting", state.SelectedPlan)
	assert.False(t, state.CheckoutOpen)

	assert.Equal(t, []string{events.TypeCheckoutOpened}, f.publisher.types())
}

func TestSiteService_OpenUnknownPlan(t *testing.T) {
	f := newFixture(t)

	err := f.site.OpenCheckout(context.Background(), "s", "org-platinum")
	assert.ErrorIs(t, err, catalog.ErrPlanNotFound)
	assert.Empty(t, f.publisher.types())
}

func TestSiteService_SubmitContact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.site.SubmitContact(ctx, "s", &dto.ContactRequest{
		FirstName:   "Ada",
		Email:       "ada@example.com",
		InquiryType: "Media Inquiry",
	}))

	err := f.site.SubmitContact(ctx, "s", &dto.ContactRequest{InquiryType: "Sales"})
	var ve *serverutils.ValidationError
	assert.True(t, errors.As(err, &ve))
}
