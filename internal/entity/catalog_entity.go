package entity

type FrameworkType string
type SubscriptionTier string

const (
	FrameworkTypeOrganizational FrameworkType = "ORGANIZATIONAL"
	FrameworkTypePrivateEquity  FrameworkType = "PRIVATE_EQUITY"

	SubscriptionTierBasic     SubscriptionTier = "BASIC"
	SubscriptionTierExclusive SubscriptionTier = "EXCLUSIVE"
	SubscriptionTierAssociate SubscriptionTier = "ASSOCIATE"
)

// IsPremium reports whether the tier gets the premium card treatment.
func (t SubscriptionTier) IsPremium() bool {
	return t == SubscriptionTierExclusive || t == SubscriptionTierAssociate
}

type FrameworkModule struct {
	Title       string
	Description string
}

type FrameworkDetails struct {
	LongDescription string
	Modules         []FrameworkModule
	Benefits        []string
}

type PricingPlan struct {
	Id         string
	Tier       SubscriptionTier
	Name       string
	Price      string  // Display range, e.g. "R4,999 - R9,999"
	PriceValue float64 // Monthly amount sent to the payment gateway
	Features   []string
	Cta        string
}

type Framework struct {
	Type        FrameworkType
	Title       string
	Subtitle    string
	Description string
	Details     FrameworkDetails
	Plans       []PricingPlan
}
