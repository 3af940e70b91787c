package controller

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/render"
	"predator-web/internal/service"
)

// pageWriter renders the full page for the caller's session: the view
// tree plus the consultant widget.
type pageWriter struct {
	site       service.ISiteService
	consultant service.IConsultantService
	html       *render.HTML
}

func (p *pageWriter) write(ctx *fiber.Ctx, status int, decorate func(*render.Page)) error {
	sessionID := serverutils.SessionID(ctx)

	page, err := p.site.Page(ctx.UserContext(), sessionID)
	if err != nil {
		return err
	}
	page.Consultant = p.html.Consultant(p.consultant.Snapshot(sessionID))
	if decorate != nil {
		decorate(&page)
	}

	var buf bytes.Buffer
	if err := p.html.Page(&buf, page); err != nil {
		return err
	}

	ctx.Set(fiber.HeaderCacheControl, "no-store")
	ctx.Type("html", "utf-8")
	return ctx.Status(status).Send(buf.Bytes())
}

func withNotice(notice string) func(*render.Page) {
	return func(p *render.Page) {
		p.Notice = notice
	}
}

// backHome answers a form post with a redirect to the page, optionally
// anchored at the top.
func backHome(ctx *fiber.Ctx, top bool) error {
	location := "/"
	if top {
		location = "/#top"
	}
	return ctx.Redirect(location, fiber.StatusSeeOther)
}
