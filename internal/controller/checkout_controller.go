package controller

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"predator-web/internal/catalog"
	"predator-web/internal/constant"
	"predator-web/internal/dto"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/render"
	"predator-web/internal/service"
	"predator-web/pkg/payment"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
}

type checkoutController struct {
	siteService     service.ISiteService
	checkoutService service.ICheckoutService
	pages           *pageWriter
	html            *render.HTML
	baseURL         string
}

func NewCheckoutController(
	siteService service.ISiteService,
	checkoutService service.ICheckoutService,
	consultantService service.IConsultantService,
	html *render.HTML,
	baseURL string,
) ICheckoutController {
	return &checkoutController{
		siteService:     siteService,
		checkoutService: checkoutService,
		pages:           &pageWriter{site: siteService, consultant: consultantService, html: html},
		html:            html,
		baseURL:         baseURL,
	}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	r.Post(render.PathCheckoutClose, c.Close)
	r.Post(render.PathCheckoutSubmit, c.Submit)
	r.Post(render.PathCheckout+":plan/open", c.Open)
}

func (c *checkoutController) Open(ctx *fiber.Ctx) error {
	err := c.siteService.OpenCheckout(ctx.UserContext(), serverutils.SessionID(ctx), ctx.Params("plan"))
	if errors.Is(err, catalog.ErrPlanNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Plan not found")
	}
	if err != nil {
		return err
	}
	return backHome(ctx, false)
}

func (c *checkoutController) Close(ctx *fiber.Ctx) error {
	if err := c.siteService.CloseCheckout(ctx.UserContext(), serverutils.SessionID(ctx)); err != nil {
		return err
	}
	return backHome(ctx, false)
}

func (c *checkoutController) Submit(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}

	redirect, err := c.checkoutService.Submit(ctx.UserContext(), serverutils.SessionID(ctx), &req, c.returnURL(ctx))
	switch {
	case errors.Is(err, service.ErrCheckoutIncomplete):
		return c.pages.write(ctx, fiber.StatusUnprocessableEntity, func(p *render.Page) {
			p.Notice = constant.CheckoutIncompleteNotice
			if p.Checkout != nil {
				p.Checkout.Values = render.CheckoutValues{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
			}
		})
	case errors.Is(err, service.ErrNoPlanSelected):
		return c.pages.write(ctx, fiber.StatusConflict, withNotice(constant.NoPlanSelectedNotice))
	case errors.Is(err, payment.ErrGatewayUnavailable):
		return c.pages.write(ctx, fiber.StatusBadGateway, withNotice(constant.CheckoutGatewayDownNotice))
	case err != nil:
		return err
	}

	if redirect.Method == payment.MethodGet {
		return ctx.Redirect(redirect.URL, fiber.StatusSeeOther)
	}

	var buf bytes.Buffer
	if err := c.html.Redirect(&buf, redirect); err != nil {
		return err
	}
	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}

// returnURL is the page the gateway sends the visitor back to.
func (c *checkoutController) returnURL(ctx *fiber.Ctx) string {
	if c.baseURL != "" {
		return c.baseURL + "/"
	}
	return ctx.BaseURL() + "/"
}
