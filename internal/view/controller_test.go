package view

import (
	"errors"
	"testing"

	"predator-web/internal/catalog"
	"predator-web/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	c := catalog.Default()
	s := NewState(c)

	assert.Equal(t, Home, s.View)
	assert.Equal(t, entity.FrameworkTypeOrganizational, s.Framework)
	assert.Empty(t, s.SelectedPlan)
	assert.False(t, s.CheckoutOpen)
}

func TestNavigate(t *testing.T) {
	for _, id := range IDs {
		t.Run(string(id), func(t *testing.T) {
			var scrolled []ID
			ctrl := NewController(catalog.Default(), nil, WithScrollHook(func(v ID) {
				scrolled = append(scrolled, v)
			}))

			require.NoError(t, ctrl.Navigate(id))
			assert.Equal(t, id, ctrl.State().View)
			assert.Equal(t, []ID{id}, scrolled)
		})
	}
}

func TestNavigateInvalidKeepsPriorView(t *testing.T) {
	scrolls := 0
	ctrl := NewController(catalog.Default(), nil, WithScrollHook(func(ID) { scrolls++ }))
	require.NoError(t, ctrl.Navigate(Pricing))

	err := ctrl.Navigate("checkout")

	var invalid *InvalidViewError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "checkout", invalid.View)
	assert.True(t, errors.Is(err, ErrInvalidView))
	assert.Equal(t, Pricing, ctrl.State().View)
	assert.Equal(t, 1, scrolls)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("model-details")
	require.NoError(t, err)
	assert.Equal(t, ModelDetails, id)

	_, err = ParseID("Model-Details")
	assert.True(t, errors.Is(err, ErrInvalidView))
}

func TestSelectFramework(t *testing.T) {
	ctrl := NewController(catalog.Default(), nil)

	require.NoError(t, ctrl.SelectFramework(entity.FrameworkTypePrivateEquity))
	assert.Equal(t, entity.FrameworkTypePrivateEquity, ctrl.ActiveFramework().Type)

	err := ctrl.SelectFramework("VENTURE")
	assert.True(t, errors.Is(err, catalog.ErrFrameworkNotFound))
	assert.Equal(t, entity.FrameworkTypePrivateEquity, ctrl.ActiveFramework().Type)
}

func TestOpenAndCloseCheckout(t *testing.T) {
	ctrl := NewController(catalog.Default(), nil)
	assert.Nil(t, ctrl.SelectedPlan())

	require.NoError(t, ctrl.OpenCheckout("org-partner"))
	assert.True(t, ctrl.State().CheckoutOpen)
	assert.Equal(t, "Exclusive Partner", ctrl.SelectedPlan().Name)

	ctrl.CloseCheckout()
	assert.False(t, ctrl.State().CheckoutOpen)
	// the last plan stays selected after closing
	assert.Equal(t, "org-partner", ctrl.State().SelectedPlan)
}

func TestOpenCheckoutUnknownPlan(t *testing.T) {
	ctrl := NewController(catalog.Default(), nil)

	err := ctrl.OpenCheckout("org-platinum")

	assert.True(t, errors.Is(err, catalog.ErrPlanNotFound))
	assert.False(t, ctrl.State().CheckoutOpen)
	assert.Empty(t, ctrl.State().SelectedPlan)
}

func TestBrowseToPrivateEquityBasicCheckout(t *testing.T) {
	ctrl := NewController(catalog.Default(), nil)

	require.NoError(t, ctrl.Navigate(Models))
	require.NoError(t, ctrl.SelectFramework(entity.FrameworkTypePrivateEquity))
	require.NoError(t, ctrl.Navigate(Pricing))

	basic := ctrl.ActiveFramework().Plans[0]
	require.Equal(t, entity.SubscriptionTierBasic, basic.Tier)
	require.NoError(t, ctrl.OpenCheckout(basic.Id))

	assert.True(t, ctrl.State().CheckoutOpen)
	assert.Equal(t, "Consulting Partner", ctrl.SelectedPlan().Name)
	assert.Equal(t, 4999.00, ctrl.SelectedPlan().PriceValue)

	ctrl.CloseCheckout()
	assert.Equal(t, Pricing, ctrl.State().View)
	assert.Equal(t, entity.FrameworkTypePrivateEquity, ctrl.ActiveFramework().Type)
}

func TestResolveFallsBackOnUnknownFramework(t *testing.T) {
	c := catalog.Default()

	r := Resolve(c, State{View: Pricing, Framework: "RETIRED", SelectedPlan: "gone", CheckoutOpen: true})

	assert.Equal(t, c.First(), r.Framework)
	assert.Nil(t, r.Plan)
	assert.False(t, r.CheckoutOpen)
}
