package service

import (
	"context"
	"errors"
	"fmt"

	"predator-web/internal/catalog"
	"predator-web/internal/dto"
	"predator-web/internal/pkg/logger"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/repository/contract"
	"predator-web/internal/view"
	"predator-web/pkg/events"
	"predator-web/pkg/payment"
)

var (
	ErrCheckoutIncomplete = errors.New("checkout details incomplete")
	ErrNoPlanSelected     = errors.New("no plan selected for checkout")
)

type ICheckoutService interface {
	// Submit validates the payer and builds the gateway redirect for the
	// session's selected plan. returnURL is used for every gateway callback.
	Submit(ctx context.Context, sessionID string, req *dto.CheckoutRequest, returnURL string) (*payment.Redirect, error)
	Gateway() payment.Gateway
}

type checkoutService struct {
	catalog     *catalog.Catalog
	sessionRepo contract.SessionRepository
	gateway     payment.Gateway
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewCheckoutService(
	c *catalog.Catalog,
	sessionRepo contract.SessionRepository,
	gateway payment.Gateway,
	publisher IPublisherService,
	log logger.ILogger,
) ICheckoutService {
	return &checkoutService{
		catalog:     c,
		sessionRepo: sessionRepo,
		gateway:     gateway,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *checkoutService) Gateway() payment.Gateway {
	return s.gateway
}

func (s *checkoutService) Submit(ctx context.Context, sessionID string, req *dto.CheckoutRequest, returnURL string) (*payment.Redirect, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCheckoutIncomplete, err)
	}

	state, err := s.sessionRepo.Get(ctx, sessionID)
	if errors.Is(err, contract.ErrSessionNotFound) {
		return nil, ErrNoPlanSelected
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	resolved := view.Resolve(s.catalog, *state)
	if !resolved.CheckoutOpen {
		return nil, ErrNoPlanSelected
	}

	order := payment.NewOrder(*resolved.Plan, payment.Payer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, returnURL)

	redirect, err := s.gateway.Redirect(ctx, order)
	if err != nil {
		s.logger.Error("CHECKOUT", "Gateway redirect failed", map[string]interface{}{
			"gateway": s.gateway.Name(),
			"plan_id": order.PlanID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("CHECKOUT", "Redirecting to payment gateway", map[string]interface{}{
		"session_id": sessionID,
		"gateway":    redirect.Gateway,
		"plan_id":    order.PlanID,
		"sandbox":    s.gateway.Sandbox(),
	})

	if s.publisher != nil {
		evt := events.New(events.TypeCheckoutSubmitted, map[string]interface{}{
			"session_id": sessionID,
			"plan_id":    order.PlanID,
			"item_name":  order.ItemName,
			"amount":     order.Amount,
			"gateway":    redirect.Gateway,
		})
		if err := s.publisher.PublishEvent(ctx, evt); err != nil {
			s.logger.Warn("CHECKOUT", "Failed to publish checkout event", map[string]interface{}{"error": err.Error()})
		}
	}

	return redirect, nil
}
