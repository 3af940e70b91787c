package service

import (
	"context"
	"errors"
	"fmt"

	"predator-web/internal/catalog"
	"predator-web/internal/dto"
	"predator-web/internal/entity"
	"predator-web/internal/pkg/logger"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/render"
	"predator-web/internal/repository/contract"
	"predator-web/internal/view"
	"predator-web/pkg/events"
	"predator-web/pkg/payment"
)

// ISiteService applies view controller operations to a browser session's
// stored state. Each call loads the state, runs one operation and saves it.
type ISiteService interface {
	State(ctx context.Context, sessionID string) (view.State, error)
	Page(ctx context.Context, sessionID string) (render.Page, error)

	// Navigate reports whether the scroll-to-top hook fired.
	Navigate(ctx context.Context, sessionID string, rawView string) (bool, error)
	SelectFramework(ctx context.Context, sessionID string, frameworkType entity.FrameworkType) error
	// Overview selects the framework and shows its details.
	Overview(ctx context.Context, sessionID string, frameworkType entity.FrameworkType) error
	OpenCheckout(ctx context.Context, sessionID string, planID string) error
	CloseCheckout(ctx context.Context, sessionID string) error

	SubmitContact(ctx context.Context, sessionID string, req *dto.ContactRequest) error
}

type siteService struct {
	catalog     *catalog.Catalog
	sessionRepo contract.SessionRepository
	gateway     payment.Gateway
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewSiteService(
	c *catalog.Catalog,
	sessionRepo contract.SessionRepository,
	gateway payment.Gateway,
	publisher IPublisherService,
	log logger.ILogger,
) ISiteService {
	return &siteService{
		catalog:     c,
		sessionRepo: sessionRepo,
		gateway:     gateway,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *siteService) State(ctx context.Context, sessionID string) (view.State, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return view.State{}, err
	}
	return *state, nil
}

func (s *siteService) Page(ctx context.Context, sessionID string) (render.Page, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return render.Page{}, err
	}

	page := render.Build(*state, s.catalog)
	if page.Checkout != nil {
		page.Checkout.Gateway = s.gateway.Name()
		page.Checkout.Sandbox = s.gateway.Sandbox()
	}
	return page, nil
}

func (s *siteService) Navigate(ctx context.Context, sessionID string, rawView string) (bool, error) {
	scrolled := false
	err := s.apply(ctx, sessionID, func(ctrl *view.Controller) error {
		id, err := view.ParseID(rawView)
		if err != nil {
			return err
		}
		return ctrl.Navigate(id)
	}, view.WithScrollHook(func(view.ID) { scrolled = true }))

	if errors.Is(err, view.ErrInvalidView) {
		s.logger.Warn("SITE", "Ignoring navigation to unknown view", map[string]interface{}{
			"session_id": sessionID,
			"view":       rawView,
		})
	}
	return scrolled, err
}

func (s *siteService) SelectFramework(ctx context.Context, sessionID string, frameworkType entity.FrameworkType) error {
	return s.apply(ctx, sessionID, func(ctrl *view.Controller) error {
		return ctrl.SelectFramework(frameworkType)
	})
}

func (s *siteService) Overview(ctx context.Context, sessionID string, frameworkType entity.FrameworkType) error {
	return s.apply(ctx, sessionID, func(ctrl *view.Controller) error {
		if err := ctrl.SelectFramework(frameworkType); err != nil {
			return err
		}
		return ctrl.Navigate(view.ModelDetails)
	})
}

func (s *siteService) OpenCheckout(ctx context.Context, sessionID string, planID string) error {
	err := s.apply(ctx, sessionID, func(ctrl *view.Controller) error {
		return ctrl.OpenCheckout(planID)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.New(events.TypeCheckoutOpened, map[string]interface{}{
		"session_id": sessionID,
		"plan_id":    planID,
	}))
	return nil
}

func (s *siteService) CloseCheckout(ctx context.Context, sessionID string) error {
	return s.apply(ctx, sessionID, func(ctrl *view.Controller) error {
		ctrl.CloseCheckout()
		return nil
	})
}

// SubmitContact only validates and acknowledges; the message goes nowhere.
func (s *siteService) SubmitContact(ctx context.Context, sessionID string, req *dto.ContactRequest) error {
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	s.logger.Info("SITE", "Contact form submitted", map[string]interface{}{
		"session_id":   sessionID,
		"inquiry_type": req.InquiryType,
	})
	return nil
}

func (s *siteService) load(ctx context.Context, sessionID string) (*view.State, error) {
	state, err := s.sessionRepo.Get(ctx, sessionID)
	if errors.Is(err, contract.ErrSessionNotFound) {
		return view.NewState(s.catalog), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return state, nil
}

// apply runs op against the stored state and saves the result. A failed op
// leaves the stored state untouched.
func (s *siteService) apply(ctx context.Context, sessionID string, op func(*view.Controller) error, opts ...view.Option) error {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	ctrl := view.NewController(s.catalog, state, opts...)
	if err := op(ctrl); err != nil {
		return err
	}

	if err := s.sessionRepo.Save(ctx, sessionID, ctrl.State()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *siteService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Warn("SITE", "Failed to publish site event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
