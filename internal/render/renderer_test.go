package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/internal/catalog"
	"predator-web/internal/constant"
	"predator-web/internal/entity"
	"predator-web/internal/view"
)

func stateAt(c *catalog.Catalog, id view.ID) view.State {
	s := view.NewState(c)
	s.View = id
	return *s
}

func TestBuild_EveryViewRootsAtItsSection(t *testing.T) {
	c := catalog.Default()

	for _, id := range view.IDs {
		t.Run(string(id), func(t *testing.T) {
			page := Build(stateAt(c, id), c)

			assert.Equal(t, id, page.Section)
			set := map[view.ID]bool{
				view.Home:         page.Home != nil,
				view.Models:       page.Models != nil,
				view.ModelDetails: page.ModelDetails != nil,
				view.Pricing:      page.Pricing != nil,
				view.About:        page.About != nil,
				view.Contact:      page.Contact != nil,
			}
			for section, present := range set {
				assert.Equal(t, section == id, present, "section %s", section)
			}
			assert.Nil(t, page.Checkout)
		})
	}
}

func TestBuild_UnknownViewRendersHome(t *testing.T) {
	c := catalog.Default()
	home := Build(stateAt(c, view.Home), c)

	for _, raw := range []view.ID{"", "checkout", "HOME", "pricing/"} {
		assert.Equal(t, home, Build(stateAt(c, raw), c), "view %q", raw)
	}
}

func TestBuild_NavFlagsCurrentView(t *testing.T) {
	c := catalog.Default()
	page := Build(stateAt(c, view.Pricing), c)

	labels := make([]string, 0, len(page.Nav))
	for _, item := range page.Nav {
		labels = append(labels, item.Label)
		assert.Equal(t, item.View == view.Pricing, item.Active)
	}
	assert.Equal(t, []string{"Home", "About", "Models", "Pricing", "Contact"}, labels)
}

func TestBuild_HomeHasNoCatalogData(t *testing.T) {
	c := catalog.Default()
	home := Build(stateAt(c, view.Home), c).Home

	require.NotNil(t, home)
	assert.Equal(t, constant.HomeHeadline, home.Headline)
	assert.Equal(t, []Action{
		{Label: "Explore Models", Path: "/navigate/models"},
		{Label: "View Pricing", Path: "/navigate/pricing"},
	}, home.Actions)
}

func TestBuild_ModelsListsFrameworksInOrder(t *testing.T) {
	c := catalog.Default()
	models := Build(stateAt(c, view.Models), c).Models

	require.Len(t, models.Cards, 2)
	assert.Equal(t, entity.FrameworkTypeOrganizational, models.Cards[0].Type)
	assert.Equal(t, "users", models.Cards[0].Icon)
	assert.Equal(t, "/frameworks/ORGANIZATIONAL/overview", models.Cards[0].Overview.Path)
	assert.Equal(t, entity.FrameworkTypePrivateEquity, models.Cards[1].Type)
	assert.Equal(t, "landmark", models.Cards[1].Icon)
}

func TestBuild_ModelDetailsFollowsActiveFramework(t *testing.T) {
	c := catalog.Default()

	for _, fw := range c.Frameworks() {
		t.Run(string(fw.Type), func(t *testing.T) {
			ctrl := view.NewController(c, nil)
			require.NoError(t, ctrl.SelectFramework(fw.Type))
			require.NoError(t, ctrl.Navigate(view.ModelDetails))

			details := Build(ctrl.State(), c).ModelDetails
			require.NotNil(t, details)

			assert.Equal(t, fw.Details.LongDescription, details.LongDescription)
			assert.Equal(t, fw.Details.Benefits, details.Benefits)
			require.Len(t, details.Modules, len(fw.Details.Modules))
			for i, m := range details.Modules {
				assert.Equal(t, i+1, m.Index)
				assert.Equal(t, fw.Details.Modules[i].Title, m.Title)
				assert.Equal(t, fw.Details.Modules[i].Description, m.Description)
			}
			assert.Equal(t, "01", details.Modules[0].Label)
			assert.Equal(t, "/navigate/pricing", details.CTA.Path)
			assert.Equal(t, "/navigate/models", details.Back.Path)
		})
	}
}

func twoPlanCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	frameworks := constant.Frameworks()
	frameworks[1].Plans = frameworks[1].Plans[:2]
	c, err := catalog.New(frameworks)
	require.NoError(t, err)
	return c
}

func TestBuild_PricingLayoutFollowsPlanCount(t *testing.T) {
	c := twoPlanCatalog(t)

	state := stateAt(c, view.Pricing)
	assert.Equal(t, LayoutThreeColumn, Build(state, c).Pricing.Layout)

	state.Framework = entity.FrameworkTypePrivateEquity
	pricing := Build(state, c).Pricing
	assert.Equal(t, LayoutTwoColumn, pricing.Layout)
	assert.Len(t, pricing.Cards, 2)
}

func TestBuild_PricingSwitchAndCards(t *testing.T) {
	c := catalog.Default()
	state := stateAt(c, view.Pricing)
	state.Framework = entity.FrameworkTypePrivateEquity

	pricing := Build(state, c).Pricing
	require.NotNil(t, pricing)

	require.Len(t, pricing.Switch, 2)
	assert.Equal(t, "Businesses", pricing.Switch[0].Label)
	assert.False(t, pricing.Switch[0].Active)
	assert.Equal(t, "Private Equity Firms", pricing.Switch[1].Label)
	assert.True(t, pricing.Switch[1].Active)
	assert.Equal(t, "/frameworks/PRIVATE_EQUITY/select", pricing.Switch[1].Select.Path)

	ids := []string{}
	for _, card := range pricing.Cards {
		ids = append(ids, card.PlanId)
	}
	assert.Equal(t, []string{"pe-consulting", "pe-partner", "pe-associate"}, ids)
	assert.Equal(t, "/checkout/pe-consulting/open", pricing.Cards[0].Select.Path)
}

func TestBuild_TierTreatments(t *testing.T) {
	c := catalog.Default()
	cards := Build(stateAt(c, view.Pricing), c).Pricing.Cards
	require.Len(t, cards, 3)

	basic, exclusive, associate := cards[0], cards[1], cards[2]

	assert.Equal(t, TreatmentStandard, basic.Treatment)
	assert.Equal(t, "Non-Exclusive", basic.Badge.Label)
	assert.False(t, basic.Emphasized)

	assert.Equal(t, TreatmentPremium, exclusive.Treatment)
	assert.Equal(t, "Industry Exclusive", exclusive.Badge.Label)
	assert.True(t, exclusive.Emphasized)

	assert.Equal(t, TreatmentPremium, associate.Treatment)
	assert.Equal(t, "All-Exclusive", associate.Badge.Label)
	assert.True(t, associate.Badge.Star)
	assert.False(t, associate.Emphasized)
}

func TestBuild_AboutPillarsNumbered(t *testing.T) {
	c := catalog.Default()
	about := Build(stateAt(c, view.About), c).About

	require.Len(t, about.Pillars, 3)
	assert.Equal(t, NumberedItem{Index: 3, Label: "03", Text: "Nash Equilibrium Targeting"}, about.Pillars[2])

	require.Len(t, about.Values, 3)
	assert.Equal(t, "Mathematical Dominance", about.Values[0].Title)
	assert.Equal(t, "trending-up", about.Values[2].Icon)
}

func TestBuild_CheckoutModalWhenOpen(t *testing.T) {
	c := catalog.Default()
	ctrl := view.NewController(c, nil)
	require.NoError(t, ctrl.Navigate(view.Pricing))
	require.NoError(t, ctrl.OpenCheckout("org-associate"))

	page := Build(ctrl.State(), c)
	require.NotNil(t, page.Checkout)
	assert.Equal(t, "Exclusive Associate", page.Checkout.PlanName)
	assert.Equal(t, "R 39,999", page.Checkout.PriceLabel)
	assert.NotNil(t, page.Pricing)

	ctrl.CloseCheckout()
	assert.Nil(t, Build(ctrl.State(), c).Checkout)
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1999, "1,999"},
		{39999, "39,999"},
		{149999, "149,999"},
		{1234567, "1,234,567"},
		{1999.5, "1,999.50"},
		{4999.999, "5,000"},
		{-2500, "-2,500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.in), "amount %v", tc.in)
	}
}
