package catalog

import (
	"errors"
	"testing"

	"predator-web/internal/constant"
	"predator-web/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	fws := c.Frameworks()
	require.Len(t, fws, 2)
	assert.Equal(t, entity.FrameworkTypeOrganizational, fws[0].Type)
	assert.Equal(t, entity.FrameworkTypePrivateEquity, fws[1].Type)
	assert.Equal(t, entity.FrameworkTypeOrganizational, c.First().Type)

	for _, fw := range fws {
		require.Len(t, fw.Plans, 3)
		assert.Equal(t, entity.SubscriptionTierBasic, fw.Plans[0].Tier)
		assert.Equal(t, entity.SubscriptionTierExclusive, fw.Plans[1].Tier)
		assert.Equal(t, entity.SubscriptionTierAssociate, fw.Plans[2].Tier)
	}
}

func TestFrameworkLookup(t *testing.T) {
	c := Default()

	fw, err := c.Framework(entity.FrameworkTypePrivateEquity)
	require.NoError(t, err)
	assert.Equal(t, "Deal Alpha Generation", fw.Details.Modules[0].Title)

	_, err = c.Framework("HEDGE_FUND")
	assert.True(t, errors.Is(err, ErrFrameworkNotFound))
}

func TestPlanLookup(t *testing.T) {
	c := Default()

	plan, fw, err := c.Plan("pe-consulting")
	require.NoError(t, err)
	assert.Equal(t, "Consulting Partner", plan.Name)
	assert.Equal(t, 4999.00, plan.PriceValue)
	assert.Equal(t, entity.FrameworkTypePrivateEquity, fw.Type)

	_, _, err = c.Plan("nope")
	assert.True(t, errors.Is(err, ErrPlanNotFound))
}

func TestNewRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]entity.Framework) []entity.Framework
		want   error
	}{
		{
			name:   "empty",
			mutate: func([]entity.Framework) []entity.Framework { return nil },
			want:   ErrEmptyCatalog,
		},
		{
			name: "duplicate framework type",
			mutate: func(fws []entity.Framework) []entity.Framework {
				fws[1].Type = fws[0].Type
				return fws
			},
			want: ErrDuplicateFramework,
		},
		{
			name: "duplicate plan id across frameworks",
			mutate: func(fws []entity.Framework) []entity.Framework {
				fws[1].Plans[0].Id = fws[0].Plans[0].Id
				return fws
			},
			want: ErrDuplicatePlan,
		},
		{
			name: "duplicate tier",
			mutate: func(fws []entity.Framework) []entity.Framework {
				fws[0].Plans[2].Tier = entity.SubscriptionTierExclusive
				return fws
			},
			want: ErrDuplicateTier,
		},
		{
			name: "descending price",
			mutate: func(fws []entity.Framework) []entity.Framework {
				fws[0].Plans[1].PriceValue = 10
				return fws
			},
			want: ErrPlanOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(constant.Frameworks()))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestTwoPlanFrameworkIsValid(t *testing.T) {
	fws := constant.Frameworks()
	fws[1].Plans = fws[1].Plans[:2]

	c, err := New(fws)
	require.NoError(t, err)
	assert.Len(t, c.Frameworks()[1].Plans, 2)
}
