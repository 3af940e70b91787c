package constant

import "predator-web/internal/entity"

var orgBasicFeatures = []string{
	"Non-Exclusive Rights to the Model",
	"Standard Implementation Support",
	"Quarterly Strategy Review",
	"Access to Basic Templates",
	"Consulting Partner Status",
}

var orgExclusiveFeatures = []string{
	"Exclusive Rights in Your Industry",
	"Priority Implementation Support",
	"Monthly Strategy Sessions",
	"Competitor Lock-out Protocol",
	"Exclusive Partner Status",
}

var orgAssociateFeatures = []string{
	"Sole Exclusion Across All Industries",
	"Full-Time Dedicated Strategist",
	"Weekly Deep-Dive Strategy",
	"Total Market Dominance Protocol",
	"Exclusive Associate Status",
}

var peBasicFeatures = []string{
	"Non-Exclusive Rights to the Model",
	"Deal Flow Optimization Support",
	"Quarterly Portfolio Review",
	"Access to Valuation Templates",
	"Consulting Partner Status",
}

var peExclusiveFeatures = []string{
	"Exclusive Rights in Target Sector",
	"Priority Deal Structuring Support",
	"Monthly Investment Committee Strategy",
	"Bid Strategy Lock-out Protocol",
	"Exclusive Partner Status",
}

var peAssociateFeatures = []string{
	"Sole Exclusion Across All Sectors",
	"Dedicated Deal Strategist (Full-Time)",
	"Weekly High-Stakes Negotiation Prep",
	"Total Market Consolidation Protocol",
	"Exclusive Associate Status",
}

const (
	organizationalDescription = "An aggressive framework designed for companies to seize market share by out-pacing the competition. This model focuses on rapid innovation, high-velocity customer acquisition, and setting the industry standard to force rivals into a reactive state."
	privateEquityDescription  = "A high-performance model for firms to dominate the investment landscape through proactive capital deployment. It prioritizes proprietary deal sourcing, rapid operational scaling, and aggressive \"buy-and-build\" strategies to maximize IRR and exit value."
)

// Frameworks returns a fresh copy of the compiled-in catalog content.
func Frameworks() []entity.Framework {
	return []entity.Framework{
		{
			Type:        entity.FrameworkTypeOrganizational,
			Title:       "An Offensive Approach for Businesses to Win, Dominate, and Lead in Competitive Markets",
			Subtitle:    "PREDATOR MODEL",
			Description: organizationalDescription,
			Details: entity.FrameworkDetails{
				LongDescription: organizationalDescription,
				Modules: []entity.FrameworkModule{
					{
						Title:       "Internal Alignment Protocol",
						Description: "Eliminating the principal-agent problem within your workforce to ensure every calorie of energy is directed towards market conquest.",
					},
					{
						Title:       "Asymmetric Competition",
						Description: "Identifying and exploiting structural weaknesses in your competitors' business models that they cannot defend against without hurting their own revenue.",
					},
					{
						Title:       "Market Dominance Loop",
						Description: "A recursive framework for capturing market share, locking in customers, and raising switching costs to create unassailable moats.",
					},
				},
				Benefits: []string{
					"Rapid Market Share Acquisition",
					"Increased Organizational Velocity",
					"Competitor Displacement",
					"Higher Profit Margins",
				},
			},
			Plans: []entity.PricingPlan{
				{
					Id:         "org-consulting",
					Tier:       entity.SubscriptionTierBasic,
					Name:       "Consulting Partner",
					Price:      "R1,999 - R2,999",
					PriceValue: 1999.00,
					Features:   cloneStrings(orgBasicFeatures),
					Cta:        "Subscribe",
				},
				{
					Id:         "org-partner",
					Tier:       entity.SubscriptionTierExclusive,
					Name:       "Exclusive Partner",
					Price:      "R4,999 - R9,999",
					PriceValue: 4999.00,
					Features:   cloneStrings(orgExclusiveFeatures),
					Cta:        "Subscribe",
				},
				{
					Id:         "org-associate",
					Tier:       entity.SubscriptionTierAssociate,
					Name:       "Exclusive Associate",
					Price:      "R39,999 - R99,999",
					PriceValue: 39999.00,
					Features:   cloneStrings(orgAssociateFeatures),
					Cta:        "Subscribe",
				},
			},
		},
		{
			Type:        entity.FrameworkTypePrivateEquity,
			Title:       "An Offensive Approach for Firms to Win, Dominate, and Lead in Competitive Private Equity Markets",
			Subtitle:    "PREDATOR MODEL",
			Description: privateEquityDescription,
			Details: entity.FrameworkDetails{
				LongDescription: privateEquityDescription,
				Modules: []entity.FrameworkModule{
					{
						Title:       "Deal Alpha Generation",
						Description: "Proprietary screening algorithms that filter for game-theoretic advantages in potential targets, identifying undervalued assets with high strategic leverage.",
					},
					{
						Title:       "Negotiation Dynamics",
						Description: "Behavioral frameworks for controlling the pace, framing, and outcome of high-stakes negotiations, maximizing your position at the table.",
					},
					{
						Title:       "Value Extraction Integration",
						Description: "Post-acquisition playbooks designed to rapidly restructure incentives and operations to realize immediate value and prepare for lucrative exits.",
					},
				},
				Benefits: []string{
					"Superior Deal Sourcing",
					"Negotiation Leverage",
					"Risk Mitigation",
					"Maximized Exit Multiples",
				},
			},
			Plans: []entity.PricingPlan{
				{
					Id:         "pe-consulting",
					Tier:       entity.SubscriptionTierBasic,
					Name:       "Consulting Partner",
					Price:      "R4,999 - R6,999",
					PriceValue: 4999.00,
					Features:   cloneStrings(peBasicFeatures),
					Cta:        "Subscribe",
				},
				{
					Id:         "pe-partner",
					Tier:       entity.SubscriptionTierExclusive,
					Name:       "Exclusive Partner",
					Price:      "R9,999 - R14,999",
					PriceValue: 9999.00,
					Features:   cloneStrings(peExclusiveFeatures),
					Cta:        "Subscribe",
				},
				{
					Id:         "pe-associate",
					Tier:       entity.SubscriptionTierAssociate,
					Name:       "Exclusive Associate",
					Price:      "R59,999 - R149,999",
					PriceValue: 59999.00,
					Features:   cloneStrings(peAssociateFeatures),
					Cta:        "Subscribe",
				},
			},
		},
	}
}

type CoreValue struct {
	Icon        string
	Title       string
	Description string
}

var CoreValues = []CoreValue{
	{
		Icon:        "target",
		Title:       "Mathematical Dominance",
		Description: "Moving beyond intuition into verifiable game theory strategies that predict competitor moves.",
	},
	{
		Icon:        "briefcase",
		Title:       "Institutional Ready",
		Description: "Engineered for organizations that require rigid systems for hyper-growth and stability.",
	},
	{
		Icon:        "trending-up",
		Title:       "Recursive Growth",
		Description: "Self-optimizing frameworks that improve as your business complexity increases.",
	},
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
