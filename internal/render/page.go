package render

import (
	"html/template"

	"predator-web/internal/entity"
	"predator-web/internal/view"
)

// Page is the render tree for one request. Exactly one of the section
// pointers is set, matching Section.
type Page struct {
	Section view.ID
	Nav     []NavItem

	Home         *HomeSection
	Models       *ModelsSection
	ModelDetails *DetailsSection
	Pricing      *PricingSection
	About        *AboutSection
	Contact      *ContactSection

	Checkout *CheckoutModal
	Footer   Footer

	// Set by the HTTP layer, never by Build.
	Notice     string
	Consultant *ConsultantPanel
}

// Action is a button that posts to Path.
type Action struct {
	Label string
	Path  string
}

type NavItem struct {
	View   view.ID
	Label  string
	Active bool
	Action Action
}

type HomeSection struct {
	Headline string
	Accent   string
	Lead     string
	Actions  []Action
}

type ModelsSection struct {
	Heading string
	Lead    string
	Cards   []FrameworkCard
}

type FrameworkCard struct {
	Type     entity.FrameworkType
	Icon     string
	Subtitle string
	Title    string
	Overview Action
}

type DetailsSection struct {
	Type            entity.FrameworkType
	Subtitle        string
	Title           string
	LongDescription string
	BenefitsHeading string
	Benefits        []string
	ModulesHeading  string
	Modules         []NumberedModule
	Back            Action
	CTA             Action
}

// NumberedModule carries its 1-based display position; Label is the
// zero-padded form shown on the card ("01").
type NumberedModule struct {
	Index       int
	Label       string
	Title       string
	Description string
}

type Layout string

const (
	LayoutThreeColumn Layout = "three-column"
	LayoutTwoColumn   Layout = "two-column"
)

type PricingSection struct {
	Heading     string
	Back        Action
	Switch      []SwitchOption
	Title       string
	Description string
	Layout      Layout
	Cards       []PricingCard
}

type SwitchOption struct {
	Type   entity.FrameworkType
	Icon   string
	Label  string
	Active bool
	Select Action
}

type Treatment string

const (
	TreatmentStandard Treatment = "standard"
	TreatmentPremium  Treatment = "premium"
)

type Badge struct {
	Label string
	Style string
	Star  bool
}

type PricingCard struct {
	PlanId     string
	Tier       entity.SubscriptionTier
	Name       string
	Price      string
	Features   []string
	Treatment  Treatment
	Badge      Badge
	Emphasized bool
	Select     Action
}

type NumberedItem struct {
	Index int
	Label string
	Text  string
}

type AboutSection struct {
	Heading  string
	Lead     string
	ImageURL string
	Pillars  []NumberedItem
	Values   []ValueCard
}

type ValueCard struct {
	Icon        string
	Title       string
	Description string
}

type ContactSection struct {
	Lead         string
	InquiryTypes []string
	HQName       string
	Address      []string
	Email        string
	Phone        string
	SecurityNote string
	Submit       Action
}

type CheckoutValues struct {
	FirstName string
	LastName  string
	Email     string
}

type CheckoutModal struct {
	PlanId     string
	PlanName   string
	PriceLabel string
	Submit     Action
	Close      Action

	// Set by the HTTP layer from payment configuration.
	Sandbox bool
	Gateway string
	Values  CheckoutValues
}

type Footer struct {
	Home           Action
	FrameworkLinks []Action
	Contact        Action
	Copyright      string
}

type ConsultantMessage struct {
	Role string
	Text string
	HTML template.HTML
}

type ConsultantPanel struct {
	Messages []ConsultantMessage
	Busy     bool
	Send     Action
}
