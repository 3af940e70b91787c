// Package view owns the per-session navigation state of the site: which view
// is showing, which framework is active and whether a checkout is open.
package view

import (
	"errors"
	"fmt"
	"strings"

	"predator-web/internal/catalog"
	"predator-web/internal/entity"
)

// ID names one of the site's views. The set is closed; see IDs.
type ID string

const (
	Home         ID = "home"
	Models       ID = "models"
	ModelDetails ID = "model-details"
	Pricing      ID = "pricing"
	About        ID = "about"
	Contact      ID = "contact"
)

// IDs lists every view in header order.
var IDs = []ID{Home, Models, ModelDetails, Pricing, About, Contact}

// Valid reports whether id is one of the six views.
func (id ID) Valid() bool {
	switch id {
	case Home, Models, ModelDetails, Pricing, About, Contact:
		return true
	}
	return false
}

// ErrInvalidView matches every *InvalidViewError through errors.Is.
var ErrInvalidView = errors.New("invalid view")

// InvalidViewError carries the rejected raw view id.
type InvalidViewError struct {
	View string
}

func (e *InvalidViewError) Error() string {
	return fmt.Sprintf("invalid view %q", e.View)
}

func (e *InvalidViewError) Is(target error) bool {
	return target == ErrInvalidView
}

// ParseID converts raw input (a route parameter, a form value) into an ID.
// The result never aliases raw, so it is safe to store.
func ParseID(raw string) (ID, error) {
	id := ID(strings.Clone(raw))
	if !id.Valid() {
		return "", &InvalidViewError{View: raw}
	}
	return id, nil
}

// State is the serializable selection state of one browser session. The
// framework is stored by type and resolved against the catalog on use.
type State struct {
	View         ID                   `json:"view"`
	Framework    entity.FrameworkType `json:"framework"`
	SelectedPlan string               `json:"selected_plan,omitempty"`
	CheckoutOpen bool                 `json:"checkout_open"`
}

// NewState returns the defaults for a fresh session.
func NewState(c *catalog.Catalog) *State {
	return &State{
		View:      Home,
		Framework: c.First().Type,
	}
}
