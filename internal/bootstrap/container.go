package bootstrap

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"predator-web/internal/config"
	"predator-web/internal/controller"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/render"
	"predator-web/internal/repository/contract"
	"predator-web/internal/repository/implementation"
	"predator-web/internal/repository/memory"
	"predator-web/internal/service"
	"predator-web/internal/websocket"
	"predator-web/pkg/chatbot"
	"predator-web/pkg/payment"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	GatewayPayFast  = "payfast"
	GatewayMidtrans = "midtrans"
)

type Container struct {
	// Controllers
	SiteController       controller.ISiteController
	CheckoutController   controller.ICheckoutController
	ConsultantController controller.IConsultantController
	CatalogController    controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	WebSocketHub *websocket.Hub
	Session      serverutils.SessionConfig
}

// NewContainer wires services and controllers over infra. The websocket hub
// runs until ctx is cancelled.
func NewContainer(ctx context.Context, cfg *config.Config, infra *Infrastructure) (*Container, error) {
	sysLogger := infra.Logger

	// 1. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2. Catalog
	var catalogRepo contract.CatalogRepository
	if infra.DB != nil {
		catalogRepo = implementation.NewCatalogRepository(infra.DB)
	}
	siteCatalog, err := service.LoadCatalog(ctx, cfg.Database.CatalogSource, catalogRepo)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	// 3. Session state
	var sessionRepo contract.SessionRepository
	switch cfg.App.SessionStore {
	case SessionStoreRedis:
		if infra.Redis == nil {
			return nil, fmt.Errorf("session store %q needs a reachable REDIS_URL", cfg.App.SessionStore)
		}
		sessionRepo = implementation.NewRedisSessionRepository(infra.Redis, contract.DefaultSessionTTL)
	case SessionStoreMemory, "":
		sessionRepo = memory.NewSessionRepository(contract.DefaultSessionTTL)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.App.SessionStore)
	}

	// 4. Payment
	gateway, err := newGateway(cfg)
	if err != nil {
		return nil, err
	}
	if !gateway.Sandbox() {
		sysLogger.Warn("BOOTSTRAP", "Payment gateway is in production mode", map[string]interface{}{"gateway": gateway.Name()})
	}

	// 5. WebSocket Hub
	wsHub := websocket.NewHub(infra.Redis, infra.WSLogger)
	go wsHub.Run(ctx)

	registry := chatbot.NewRegistry(infra.LLM, sysLogger, chatbot.WithSessionObserver(wsHub.Observer))

	// 6. Services
	var relay service.EventRelay
	if infra.Nats != nil {
		relay = infra.Nats
	}
	publisherService := service.NewPublisherService(cfg.Keys.EventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.EventTopic, relay, sysLogger)

	siteService := service.NewSiteService(siteCatalog, sessionRepo, gateway, publisherService, sysLogger)
	checkoutService := service.NewCheckoutService(siteCatalog, sessionRepo, gateway, publisherService, sysLogger)
	consultantService := service.NewConsultantService(registry, publisherService, sysLogger)
	catalogService := service.NewCatalogService(siteCatalog)

	// 7. Controllers
	html, err := render.NewHTML()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	session := serverutils.SessionConfig{
		Secret: cfg.App.SessionSecret,
		Secure: cfg.IsProduction(),
	}
	if session.Secret == "" {
		session.Secret = uuid.NewString()
		sysLogger.Warn("BOOTSTRAP", "SESSION_SECRET not set, sessions will not survive a restart", nil)
	}

	return &Container{
		SiteController:       controller.NewSiteController(siteService, consultantService, html),
		CheckoutController:   controller.NewCheckoutController(siteService, checkoutService, consultantService, html, cfg.App.BaseURL),
		ConsultantController: controller.NewConsultantController(consultantService, wsHub, infra.WSLogger),
		CatalogController:    controller.NewCatalogController(catalogService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		Session:         session,
	}, nil
}

func newGateway(cfg *config.Config) (payment.Gateway, error) {
	switch cfg.Payment.Gateway {
	case GatewayPayFast, "":
		return payment.NewPayFast(payment.PayFastConfig{
			MerchantID:  cfg.Payment.PayfastMerchantID,
			MerchantKey: cfg.Payment.PayfastMerchantKey,
			Sandbox:     cfg.Payment.Sandbox,
		}), nil
	case GatewayMidtrans:
		if cfg.Payment.MidtransServerKey == "" {
			return nil, fmt.Errorf("payment gateway %q needs MIDTRANS_SERVER_KEY", cfg.Payment.Gateway)
		}
		return payment.NewMidtrans(payment.MidtransConfig{
			ServerKey: cfg.Payment.MidtransServerKey,
			Sandbox:   cfg.Payment.Sandbox,
		}), nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", cfg.Payment.Gateway)
	}
}
