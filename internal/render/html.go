package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"predator-web/pkg/chatbot"
	"predator-web/pkg/payment"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static holds the stylesheet served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// HTML writes page trees and gateway redirects as HTML documents.
type HTML struct {
	tmpl *template.Template
	md   goldmark.Markdown
	now  func() time.Time
}

func NewHTML() (*HTML, error) {
	h := &HTML{
		// Raw HTML in model replies is omitted by the default renderer.
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		now: time.Now,
	}

	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"currentYear": func() int { return h.now().Year() },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	h.tmpl = tmpl
	return h, nil
}

func (h *HTML) Page(w io.Writer, p Page) error {
	return h.tmpl.ExecuteTemplate(w, "layout", p)
}

// Redirect writes a document that sends the browser on to the gateway,
// auto-submitting the form for POST redirects.
func (h *HTML) Redirect(w io.Writer, rd *payment.Redirect) error {
	return h.tmpl.ExecuteTemplate(w, "redirect", rd)
}

// Markdown converts a model reply to HTML. On conversion failure the text
// is returned escaped.
func (h *HTML) Markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

// Consultant builds the chat widget from a session snapshot.
func (h *HTML) Consultant(snap chatbot.Snapshot) *ConsultantPanel {
	panel := &ConsultantPanel{
		Busy: snap.State == chatbot.StateSending,
		Send: Action{Label: "Send", Path: PathConsultant},
	}
	for _, m := range snap.Messages {
		msg := ConsultantMessage{Role: string(m.Role), Text: m.Text}
		if m.Role == chatbot.RoleModel {
			msg.HTML = h.Markdown(m.Text)
		}
		panel.Messages = append(panel.Messages, msg)
	}
	return panel
}
