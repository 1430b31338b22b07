package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"

	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/search"
)

//go:embed templates
var files embed.FS

// Renderer — gin HTMLRender с отдельным набором шаблонов на каждую страницу:
// layout и partials общие, блок content у каждой страницы свой.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer разбирает встроенные шаблоны.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: не удалось разобрать layout: %w", err)
	}

	pages, err := fs.Glob(files, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(files, page); err != nil {
			return nil, fmt.Errorf("web: не удалось разобрать %s: %w", page, err)
		}
		r.pages[path.Base(page)] = t
	}
	return r, nil
}

// Instance реализует render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages["error.html"]
		data = map[string]any{"Status": 500, "Message": "Page template " + name + " not found"}
	}
	return render.HTML{Template: t, Name: "layout.html", Data: data}
}

// Has сообщает, есть ли шаблон страницы.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

var funcs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006")
	},
	"statusLabel": func(status string) string {
		if label, ok := models.BookingStatusLabels[status]; ok {
			return label
		}
		return status
	},
	// stars принимает рейтинг услуги (float64) или оценку отзыва (int)
	"stars": func(rating any) string {
		var n int
		switch r := rating.(type) {
		case int:
			n = r
		case float64:
			n = int(r + 0.5)
		}
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
	},
	"add": func(a, b int) int { return a + b },
	// fieldError — сообщение об ошибке поля формы или пустая строка
	"fieldError": func(errs map[string]string, field string) string {
		return errs[field]
	},
	// searchURL строит ссылку поиска с изменённым фильтром
	"searchURL": func(f search.Filters, key, value string) string {
		return "/search?" + f.With(key, value).Values().Encode()
	},
	"pageURL": func(f search.Filters, page int) string {
		return "/search?" + f.WithPage(page).Values().Encode()
	},
	"query": url.QueryEscape,
}
