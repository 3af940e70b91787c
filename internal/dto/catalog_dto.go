package dto

type FrameworkModuleResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PricingPlanResponse struct {
	Id         string   `json:"id"`
	Tier       string   `json:"tier"`
	Name       string   `json:"name"`
	Price      string   `json:"price"`
	PriceValue float64  `json:"price_value"`
	Features   []string `json:"features"`
	Cta        string   `json:"cta"`
}

type FrameworkResponse struct {
	Type            string                    `json:"type"`
	Title           string                    `json:"title"`
	Subtitle        string                    `json:"subtitle"`
	Description     string                    `json:"description"`
	LongDescription string                    `json:"long_description"`
	Modules         []FrameworkModuleResponse `json:"modules"`
	Benefits        []string                  `json:"benefits"`
	Plans           []PricingPlanResponse     `json:"plans"`
}

type ViewStateResponse struct {
	View         string `json:"view"`
	Framework    string `json:"framework"`
	SelectedPlan string `json:"selected_plan,omitempty"`
	CheckoutOpen bool   `json:"checkout_open"`
}
