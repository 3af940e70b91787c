package view

import (
	"predator-web/internal/catalog"
	"predator-web/internal/entity"
)

type Option func(*Controller)

// WithScrollHook registers the scroll-to-top side effect fired by every
// successful Navigate.
func WithScrollHook(fn func(ID)) Option {
	return func(c *Controller) {
		c.onNavigate = fn
	}
}

// Controller applies navigation operations to a State. It is not safe for
// concurrent use; the HTTP layer builds one per request.
type Controller struct {
	catalog    *catalog.Catalog
	state      *State
	onNavigate func(ID)
}

func NewController(c *catalog.Catalog, state *State, opts ...Option) *Controller {
	if state == nil {
		state = NewState(c)
	}
	ctrl := &Controller{
		catalog: c,
		state:   state,
	}
	for _, opt := range opts {
		opt(ctrl)
	}
	return ctrl
}

func (c *Controller) Navigate(id ID) error {
	if !id.Valid() {
		return &InvalidViewError{View: string(id)}
	}
	c.state.View = id
	if c.onNavigate != nil {
		c.onNavigate(id)
	}
	return nil
}

func (c *Controller) SelectFramework(t entity.FrameworkType) error {
	fw, err := c.catalog.Framework(t)
	if err != nil {
		return err
	}
	c.state.Framework = fw.Type
	return nil
}

func (c *Controller) OpenCheckout(planID string) error {
	plan, _, err := c.catalog.Plan(planID)
	if err != nil {
		return err
	}
	c.state.SelectedPlan = plan.Id
	c.state.CheckoutOpen = true
	return nil
}

// CloseCheckout hides the modal. The selected plan is kept so the last plan
// viewed is remembered.
func (c *Controller) CloseCheckout() {
	c.state.CheckoutOpen = false
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return *c.state
}

// ActiveFramework resolves the stored framework type. A type the catalog no
// longer knows (state saved by an older deployment) falls back to the first
// framework.
func (c *Controller) ActiveFramework() *entity.Framework {
	return Resolve(c.catalog, *c.state).Framework
}

// SelectedPlan returns nil when no plan has been chosen yet.
func (c *Controller) SelectedPlan() *entity.PricingPlan {
	return Resolve(c.catalog, *c.state).Plan
}

// Resolved is a State with its references looked up in the catalog.
type Resolved struct {
	View         ID
	Framework    *entity.Framework
	Plan         *entity.PricingPlan
	CheckoutOpen bool
}

func Resolve(c *catalog.Catalog, s State) Resolved {
	fw, err := c.Framework(s.Framework)
	if err != nil {
		fw = c.First()
	}

	r := Resolved{View: s.View, Framework: fw}
	if s.SelectedPlan != "" {
		if plan, _, err := c.Plan(s.SelectedPlan); err == nil {
			r.Plan = plan
		}
	}
	r.CheckoutOpen = s.CheckoutOpen && r.Plan != nil
	return r
}
