package constant

const (
	BrandName = "PREDATOR"

	HomeHeadline = "Winning, Dominating, and Leading"
	HomeAccent   = "Competitive Markets"
	HomeLead     = "Business and Finance are highly contested fields. Those who find creative and unique ways of gaining a competitive advantage over their competitors will win. There are no rewards for merely participating. Winners dominate and lead the market, while losers are forced to shut down. Be the winner in your field. Integrate our models in your organization now."

	ModelsHeading = "Select the relevant model"
	ModelsLead    = "Choose the architectural framework designed for your specific competitive landscape."

	DetailsBenefitsHeading = "Key Strategic Outcomes"
	DetailsModulesHeading  = "Core Modules"

	PricingHeading = "Subscription Plans"

	AboutHeading  = "The Science of Winning"
	AboutLead     = "Our approach is built on the rigorous application of mathematical game theory to real-world business environments. We don't guess; we calculate the most dominant path to success. Predator was founded on the belief that in zero-sum environments, there is always an optimal strategy."
	AboutImageURL = "https://images.unsplash.com/photo-1507679799987-c73779587ccf?auto=format&fit=crop&q=80&w=1200"

	ContactLead         = "Secure a line of communication with our strategic implementation team."
	ContactAcknowledged = "Message transmission simulated."
	ContactHQName       = "Strategic Group"
	ContactEmail        = "secure.comms@predator-strategy.com"
	ContactPhone        = "+1 (212) 555-0199"
	ContactSecurityNote = "All communications through this portal are end-to-end encrypted. We maintain strict client confidentiality protocols aligned with international financial regulations."

	CheckoutIncompleteNotice  = "Please fill in all details to proceed."
	CheckoutGatewayDownNotice = "Payment gateway unavailable. Please try again."
	CheckoutItemPrefix        = "Predator Subscription - "

	FooterCopyright = "Strategic Frameworks Group. All rights reserved."
)

var AboutPillars = []string{
	"Zero-Sum Optimization",
	"Information Asymmetry Utilization",
	"Nash Equilibrium Targeting",
}

var ContactInquiryTypes = []string{
	"Strategic Partnership",
	"Model Implementation",
	"Media Inquiry",
}

var ContactAddressLines = []string{
	"1000 Financial District Blvd, Suite 4500",
	"New York, NY 10005",
}

const (
	ContactInvalidNotice = "Please provide a valid corporate email and inquiry type."
	NoPlanSelectedNotice = "Select a subscription plan to continue."
)
