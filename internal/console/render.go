package console

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/notify"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"employees.html",
	"delete.html",
	"dashboard.html",
	"activity.html",
	"error.html",
}

// renderer keeps one parsed template per page: the layout clone plus the page's "content".
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() *renderer {
	base := template.Must(template.New("layout.html").Funcs(template.FuncMap{
		"formatTime": formatTime,
	}).ParseFS(templatesFS, "templates/layout.html"))

	r := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		r.pages[name] = template.Must(template.Must(base.Clone()).ParseFS(templatesFS, "templates/"+name))
	}

	return r
}

type PageData struct {
	Title       string
	CurrentPath string
	Flash       []notify.Message
	Data        any
}

func (r *renderer) render(ctx *fasthttp.RequestCtx, status int, name string, page PageData) error {
	tmpl, found := r.pages[name]
	if !found {
		return fmt.Errorf("template %s not found", name)
	}

	page.CurrentPath = string(ctx.Path())

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", page); err != nil {
		return fmt.Errorf("tmpl.ExecuteTemplate %s: %w", name, err)
	}

	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(status)
	ctx.SetBody(buf.Bytes())

	return nil
}
