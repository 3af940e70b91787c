package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"predator-web/internal/catalog"
	"predator-web/internal/constant"
	"predator-web/internal/dto"
	"predator-web/internal/entity"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/render"
	"predator-web/internal/service"
	"predator-web/internal/view"
)

type ISiteController interface {
	RegisterRoutes(r fiber.Router)
}

type siteController struct {
	siteService service.ISiteService
	pages       *pageWriter
}

func NewSiteController(siteService service.ISiteService, consultantService service.IConsultantService, html *render.HTML) ISiteController {
	return &siteController{
		siteService: siteService,
		pages:       &pageWriter{site: siteService, consultant: consultantService, html: html},
	}
}

func (c *siteController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Post(render.PathNavigate+":view", c.Navigate)
	r.Post(render.PathFrameworks+":type/overview", c.Overview)
	r.Post(render.PathFrameworks+":type/select", c.SelectFramework)
	r.Post(render.PathContact, c.Contact)

	r.Get("/api/state", c.GetState)
}

func (c *siteController) Index(ctx *fiber.Ctx) error {
	return c.pages.write(ctx, fiber.StatusOK, nil)
}

func (c *siteController) Navigate(ctx *fiber.Ctx) error {
	scrolled, err := c.siteService.Navigate(ctx.UserContext(), serverutils.SessionID(ctx), ctx.Params("view"))
	if err != nil && !errors.Is(err, view.ErrInvalidView) {
		return err
	}
	// Unknown views leave the state as it was.
	return backHome(ctx, scrolled)
}

func (c *siteController) Overview(ctx *fiber.Ctx) error {
	err := c.siteService.Overview(ctx.UserContext(), serverutils.SessionID(ctx), entity.FrameworkType(ctx.Params("type")))
	if err != nil {
		return frameworkError(err)
	}
	return backHome(ctx, true)
}

func (c *siteController) SelectFramework(ctx *fiber.Ctx) error {
	err := c.siteService.SelectFramework(ctx.UserContext(), serverutils.SessionID(ctx), entity.FrameworkType(ctx.Params("type")))
	if err != nil {
		return frameworkError(err)
	}
	return backHome(ctx, false)
}

func (c *siteController) Contact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}

	var validationErr *serverutils.ValidationError
	err := c.siteService.SubmitContact(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	switch {
	case errors.As(err, &validationErr):
		return c.pages.write(ctx, fiber.StatusUnprocessableEntity, withNotice(constant.ContactInvalidNotice))
	case err != nil:
		return err
	}
	return c.pages.write(ctx, fiber.StatusOK, withNotice(constant.ContactAcknowledged))
}

func (c *siteController) GetState(ctx *fiber.Ctx) error {
	state, err := c.siteService.State(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("View state retrieved", dto.ViewStateResponse{
		View:         string(state.View),
		Framework:    string(state.Framework),
		SelectedPlan: state.SelectedPlan,
		CheckoutOpen: state.CheckoutOpen,
	}))
}

func frameworkError(err error) error {
	if errors.Is(err, catalog.ErrFrameworkNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Framework not found")
	}
	return err
}
