package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"predator-web/internal/dto"
	"predator-web/internal/pkg/logger"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/render"
	"predator-web/internal/service"
	internalWS "predator-web/internal/websocket"
)

type IConsultantController interface {
	RegisterRoutes(r fiber.Router)
}

type consultantController struct {
	consultantService service.IConsultantService
	hub               *internalWS.Hub
	logger            logger.ILogger
}

func NewConsultantController(consultantService service.IConsultantService, hub *internalWS.Hub, log logger.ILogger) IConsultantController {
	return &consultantController{
		consultantService: consultantService,
		hub:               hub,
		logger:            log,
	}
}

func (c *consultantController) RegisterRoutes(r fiber.Router) {
	r.Post(render.PathConsultant, c.SendForm)

	api := r.Group("/api/consultant")
	api.Get("/", c.GetTranscript)
	api.Post("/messages", c.SendMessage)

	r.Get("/ws/consultant", c.Upgrade)
}

// SendForm is the no-script path: post, wait for the reply, reload.
func (c *consultantController) SendForm(ctx *fiber.Ctx) error {
	var req dto.ConsultantMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}
	if _, _, err := c.consultantService.Send(ctx.UserContext(), serverutils.SessionID(ctx), &req); err != nil {
		return err
	}
	return backHome(ctx, false)
}

func (c *consultantController) GetTranscript(ctx *fiber.Ctx) error {
	snap := c.consultantService.Snapshot(serverutils.SessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Transcript retrieved", service.ToConsultantResponse(false, snap)))
}

func (c *consultantController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.ConsultantMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	accepted, snap, err := c.consultantService.Send(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	message := "Message sent"
	if !accepted {
		message = "Message ignored"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, service.ToConsultantResponse(accepted, snap)))
}

// socketSender turns inbound frames into Send calls. A reply already in
// flight outlives the socket so the transcript gets the real answer.
func (c *consultantController) socketSender(ctx context.Context, sessionID string) func(text string) {
	sendCtx := context.WithoutCancel(ctx)
	return func(text string) {
		req := &dto.ConsultantMessageRequest{Message: text}
		if _, _, err := c.consultantService.Send(sendCtx, sessionID, req); err != nil {
			c.logger.Warn("CONSULTANT", "Rejected websocket message", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}
}

func (c *consultantController) Upgrade(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	sessionID := serverutils.SessionID(ctx)
	return websocket.New(func(conn *websocket.Conn) {
		c.logger.Info("CONSULTANT", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})

		connCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		internalWS.ServeWs(c.hub, conn, sessionID, c.socketSender(connCtx, sessionID))

		c.logger.Info("CONSULTANT", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
	})(ctx)
}
