package controller

import (
	"github.com/gofiber/fiber/v2"

	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/service"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{catalogService: catalogService}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/api/catalog", c.GetCatalog)
	r.Get("/healthz", c.Health)
}

func (c *catalogController) GetCatalog(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Catalog retrieved", c.catalogService.GetFrameworks(ctx.UserContext())))
}

func (c *catalogController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{
		"frameworks": len(c.catalogService.GetFrameworks(ctx.UserContext())),
	}))
}
