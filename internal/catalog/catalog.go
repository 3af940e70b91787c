// Package catalog holds the read-only framework and pricing content the site
// is built from. A Catalog is validated once when it is created and never
// mutated afterwards.
package catalog

import (
	"errors"
	"fmt"

	"predator-web/internal/constant"
	"predator-web/internal/entity"
)

var (
	ErrEmptyCatalog       = errors.New("catalog has no frameworks")
	ErrFrameworkNotFound  = errors.New("framework not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrDuplicateFramework = errors.New("duplicate framework type")
	ErrDuplicatePlan      = errors.New("duplicate plan id")
	ErrDuplicateTier      = errors.New("duplicate tier in framework")
	ErrPlanOrder          = errors.New("plans are not ordered by ascending price")
)

type Catalog struct {
	frameworks []entity.Framework
	planOwner  map[string]int // plan id -> framework index
}

// Default builds the catalog from the compiled-in content.
func Default() *Catalog {
	c, err := New(constant.Frameworks())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

func New(frameworks []entity.Framework) (*Catalog, error) {
	if len(frameworks) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		frameworks: frameworks,
		planOwner:  make(map[string]int),
	}

	seenTypes := make(map[entity.FrameworkType]bool)
	for i, fw := range frameworks {
		if seenTypes[fw.Type] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFramework, fw.Type)
		}
		seenTypes[fw.Type] = true

		seenTiers := make(map[entity.SubscriptionTier]bool)
		for j, plan := range fw.Plans {
			if _, exists := c.planOwner[plan.Id]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicatePlan, plan.Id)
			}
			c.planOwner[plan.Id] = i

			if seenTiers[plan.Tier] {
				return nil, fmt.Errorf("%w: %s has two %s plans", ErrDuplicateTier, fw.Type, plan.Tier)
			}
			seenTiers[plan.Tier] = true

			if j > 0 && plan.PriceValue < fw.Plans[j-1].PriceValue {
				return nil, fmt.Errorf("%w: %s after %s in %s", ErrPlanOrder, plan.Id, fw.Plans[j-1].Id, fw.Type)
			}
		}
	}

	return c, nil
}

// Frameworks returns the frameworks in catalog order. Callers must treat the
// result as read-only.
func (c *Catalog) Frameworks() []entity.Framework {
	return c.frameworks
}

// First is the framework a new session starts on.
func (c *Catalog) First() *entity.Framework {
	return &c.frameworks[0]
}

func (c *Catalog) Framework(t entity.FrameworkType) (*entity.Framework, error) {
	for i := range c.frameworks {
		if c.frameworks[i].Type == t {
			return &c.frameworks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFrameworkNotFound, t)
}

// Plan looks a plan up by id and also returns the framework it belongs to.
func (c *Catalog) Plan(id string) (*entity.PricingPlan, *entity.Framework, error) {
	idx, ok := c.planOwner[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	fw := &c.frameworks[idx]
	for i := range fw.Plans {
		if fw.Plans[i].Id == id {
			return &fw.Plans[i], fw, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
}
