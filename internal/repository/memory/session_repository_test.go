package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/internal/entity"
	"predator-web/internal/repository/contract"
	"predator-web/internal/view"
)

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(0)

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)

	state := view.State{View: view.Pricing, Framework: entity.FrameworkTypePrivateEquity, SelectedPlan: "pe-partner", CheckoutOpen: true}
	require.NoError(t, repo.Save(ctx, "s1", state))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, state, *got)

	got.View = view.Home
	again, _ := repo.Get(ctx, "s1")
	assert.Equal(t, view.Pricing, again.View, "mutating a loaded state must not leak into the store")

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)
}

func TestSessionRepository_Expires(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(20 * time.Millisecond)

	require.NoError(t, repo.Save(ctx, "s1", view.State{View: view.About}))
	time.Sleep(40 * time.Millisecond)

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)
}
