// Package render turns a session's view state and the catalog into a page
// tree, and the tree into HTML.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"predator-web/internal/catalog"
	"predator-web/internal/constant"
	"predator-web/internal/entity"
	"predator-web/internal/view"
)

var navLabels = []struct {
	view  view.ID
	label string
}{
	{view.Home, "Home"},
	{view.About, "About"},
	{view.Models, "Models"},
	{view.Pricing, "Pricing"},
	{view.Contact, "Contact"},
}

// Build is a pure function of its inputs. Any view outside the enumeration
// renders exactly like home.
func Build(state view.State, c *catalog.Catalog) Page {
	resolved := view.Resolve(c, state)

	section := resolved.View
	if !section.Valid() {
		section = view.Home
	}

	page := Page{
		Section: section,
		Nav:     buildNav(section),
		Footer:  buildFooter(c),
	}

	switch section {
	case view.Models:
		page.Models = buildModels(c)
	case view.ModelDetails:
		page.ModelDetails = buildDetails(resolved.Framework)
	case view.Pricing:
		page.Pricing = buildPricing(c, resolved.Framework)
	case view.About:
		page.About = buildAbout()
	case view.Contact:
		page.Contact = buildContact()
	default:
		page.Home = buildHome()
	}

	if resolved.CheckoutOpen {
		page.Checkout = buildCheckout(resolved.Plan)
	}

	return page
}

func buildNav(current view.ID) []NavItem {
	items := make([]NavItem, 0, len(navLabels))
	for _, n := range navLabels {
		items = append(items, NavItem{
			View:   n.view,
			Label:  n.label,
			Active: n.view == current,
			Action: Action{Label: n.label, Path: NavigatePath(n.view)},
		})
	}
	return items
}

func buildFooter(c *catalog.Catalog) Footer {
	f := Footer{
		Home:      Action{Label: constant.BrandName, Path: NavigatePath(view.Home)},
		Contact:   Action{Label: "Contact Support", Path: NavigatePath(view.Contact)},
		Copyright: constant.FooterCopyright,
	}
	for _, fw := range c.Frameworks() {
		f.FrameworkLinks = append(f.FrameworkLinks, Action{
			Label: audienceLabel(fw.Type),
			Path:  NavigatePath(view.Models),
		})
	}
	return f
}

func buildHome() *HomeSection {
	return &HomeSection{
		Headline: constant.HomeHeadline,
		Accent:   constant.HomeAccent,
		Lead:     constant.HomeLead,
		Actions: []Action{
			{Label: "Explore Models", Path: NavigatePath(view.Models)},
			{Label: "View Pricing", Path: NavigatePath(view.Pricing)},
		},
	}
}

func buildModels(c *catalog.Catalog) *ModelsSection {
	s := &ModelsSection{
		Heading: constant.ModelsHeading,
		Lead:    constant.ModelsLead,
	}
	for _, fw := range c.Frameworks() {
		s.Cards = append(s.Cards, FrameworkCard{
			Type:     fw.Type,
			Icon:     frameworkIcon(fw.Type),
			Subtitle: fw.Subtitle,
			Title:    fw.Title,
			Overview: Action{Label: "Model Overview", Path: OverviewPath(fw.Type)},
		})
	}
	return s
}

func buildDetails(fw *entity.Framework) *DetailsSection {
	s := &DetailsSection{
		Type:            fw.Type,
		Subtitle:        fw.Subtitle,
		Title:           fw.Title,
		LongDescription: fw.Details.LongDescription,
		BenefitsHeading: constant.DetailsBenefitsHeading,
		Benefits:        append([]string(nil), fw.Details.Benefits...),
		ModulesHeading:  constant.DetailsModulesHeading,
		Back:            Action{Label: "Back to Framework Selection", Path: NavigatePath(view.Models)},
		CTA:             Action{Label: "View Subscription Plans", Path: NavigatePath(view.Pricing)},
	}
	for i, m := range fw.Details.Modules {
		s.Modules = append(s.Modules, NumberedModule{
			Index:       i + 1,
			Label:       positionLabel(i + 1),
			Title:       m.Title,
			Description: m.Description,
		})
	}
	return s
}

func buildPricing(c *catalog.Catalog, active *entity.Framework) *PricingSection {
	s := &PricingSection{
		Heading:     constant.PricingHeading,
		Back:        Action{Label: "Back to Model Overview", Path: NavigatePath(view.ModelDetails)},
		Title:       active.Title,
		Description: active.Description,
		Layout:      layoutFor(len(active.Plans)),
	}
	for _, fw := range c.Frameworks() {
		label := audienceLabel(fw.Type)
		s.Switch = append(s.Switch, SwitchOption{
			Type:   fw.Type,
			Icon:   frameworkIcon(fw.Type),
			Label:  label,
			Active: fw.Type == active.Type,
			Select: Action{Label: label, Path: SelectFrameworkPath(fw.Type)},
		})
	}
	for _, plan := range active.Plans {
		s.Cards = append(s.Cards, buildPricingCard(plan))
	}
	return s
}

func layoutFor(planCount int) Layout {
	if planCount == 3 {
		return LayoutThreeColumn
	}
	return LayoutTwoColumn
}

func buildPricingCard(plan entity.PricingPlan) PricingCard {
	card := PricingCard{
		PlanId:    plan.Id,
		Tier:      plan.Tier,
		Name:      plan.Name,
		Price:     plan.Price,
		Features:  append([]string(nil), plan.Features...),
		Treatment: TreatmentStandard,
		Select:    Action{Label: plan.Cta, Path: OpenCheckoutPath(plan.Id)},
	}
	if plan.Tier.IsPremium() {
		card.Treatment = TreatmentPremium
	}

	switch plan.Tier {
	case entity.SubscriptionTierBasic:
		card.Badge = Badge{Label: "Non-Exclusive", Style: "muted"}
	case entity.SubscriptionTierExclusive:
		card.Badge = Badge{Label: "Industry Exclusive", Style: "accent"}
		card.Emphasized = true
	case entity.SubscriptionTierAssociate:
		card.Badge = Badge{Label: "All-Exclusive", Style: "inverse", Star: true}
	}
	return card
}

func buildAbout() *AboutSection {
	s := &AboutSection{
		Heading:  constant.AboutHeading,
		Lead:     constant.AboutLead,
		ImageURL: constant.AboutImageURL,
	}
	for i, p := range constant.AboutPillars {
		s.Pillars = append(s.Pillars, NumberedItem{Index: i + 1, Label: positionLabel(i + 1), Text: p})
	}
	for _, v := range constant.CoreValues {
		s.Values = append(s.Values, ValueCard{Icon: v.Icon, Title: v.Title, Description: v.Description})
	}
	return s
}

func buildContact() *ContactSection {
	return &ContactSection{
		Lead:         constant.ContactLead,
		InquiryTypes: append([]string(nil), constant.ContactInquiryTypes...),
		HQName:       constant.ContactHQName,
		Address:      append([]string(nil), constant.ContactAddressLines...),
		Email:        constant.ContactEmail,
		Phone:        constant.ContactPhone,
		SecurityNote: constant.ContactSecurityNote,
		Submit:       Action{Label: "Transmit Securely", Path: PathContact},
	}
}

func buildCheckout(plan *entity.PricingPlan) *CheckoutModal {
	return &CheckoutModal{
		PlanId:     plan.Id,
		PlanName:   plan.Name,
		PriceLabel: "R " + FormatAmount(plan.PriceValue),
		Submit:     Action{Label: "Proceed to Payment", Path: PathCheckoutSubmit},
		Close:      Action{Label: "Close", Path: PathCheckoutClose},
	}
}

func frameworkIcon(t entity.FrameworkType) string {
	if t == entity.FrameworkTypeOrganizational {
		return "users"
	}
	return "landmark"
}

func audienceLabel(t entity.FrameworkType) string {
	if t == entity.FrameworkTypeOrganizational {
		return "Businesses"
	}
	return "Private Equity Firms"
}

func positionLabel(n int) string {
	return fmt.Sprintf("%02d", n)
}

// FormatAmount renders a price with thousands separators, dropping the
// fraction when it is zero: 39999 -> "39,999", 1999.5 -> "1,999.50".
func FormatAmount(v float64) string {
	cents := int64(math.Round(math.Abs(v) * 100))
	digits := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	if v < 0 && cents > 0 {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if rem := cents % 100; rem != 0 {
		fmt.Fprintf(&b, ".%02d", rem)
	}
	return b.String()
}
