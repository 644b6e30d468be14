// Package views holds the dashboard's templ components. Text and attribute
// values go through templ's escaper, links through templ.URL, and pages are
// composed with templ children.
package views

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
)

func esc(s string) string { return templ.EscapeString(s) }

// href sanitiza la URL con templ.URL antes de escaparla como atributo.
func href(u string) string { return esc(string(templ.URL(u))) }

// out junta el primer error de escritura para no chequear cada linea.
type out struct {
	w   io.Writer
	err error
}

func (o *out) raw(parts ...string) {
	for _, p := range parts {
		if o.err != nil {
			return
		}
		_, o.err = io.WriteString(o.w, p)
	}
}

func (o *out) render(ctx context.Context, c templ.Component) {
	if o.err == nil {
		o.err = c.Render(ctx, o.w)
	}
}

func component(fn func(ctx context.Context, o *out)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := &out{w: w}
		fn(ctx, o)
		return o.err
	})
}

func itoa(n int) string { return strconv.Itoa(n) }

func withQuery(path string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

func optString(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func optCount(n *int64) string {
	if n == nil {
		return "N/A"
	}
	return humanize.Comma(*n)
}

func optFloat(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *f)
}

// Chart is a rendered chart or, when SVG is empty, a placeholder.
type Chart struct {
	Title string
	SVG   []byte
}

func chartBlock(ctx context.Context, o *out, c Chart) {
	o.raw(`<section class="chart"><h2>`, esc(c.Title), `</h2>`)
	if len(c.SVG) == 0 {
		o.raw(`<p class="empty">No data available</p>`)
	} else {
		o.render(ctx, templ.Raw(string(c.SVG)))
	}
	o.raw(`</section>`)
}

// Error is the failure state of every fragment.
func Error(msg string) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw(`<p class="error">Error: `, esc(msg), `</p>`)
	})
}
