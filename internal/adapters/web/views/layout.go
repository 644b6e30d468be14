package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
)

const htmxSrc = "https://unpkg.com/htmx.org@1.9.12"

var navLinks = [][2]string{
	{"/", "Home"},
	{"/global", "Global Stats"},
	{"/score/1", "Scorer Example"},
	{"/years/2022", "Year 2022"},
}

// Page renders body inside Layout.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(title).Render(templ.WithChildren(ctx, body), w)
	})
}

// Layout envuelve los children del contexto: navbar, contenido y footer.
func Layout(title string) templ.Component {
	return component(func(ctx context.Context, o *out) {
		body := templ.GetChildren(ctx)
		if body == nil {
			body = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)
		o.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(title), ` | WhyBother</title>`,
			`<script src="`, htmxSrc, `"></script></head><body>`)
		o.raw(`<nav class="navbar">`)
		for i, l := range navLinks {
			if i > 0 {
				o.raw(` `)
			}
			o.raw(`<a href="`, href(l[0]), `">`, esc(l[1]), `</a>`)
		}
		o.raw(`</nav><main>`)
		o.render(ctx, body)
		o.raw(`</main><footer>© `, itoa(time.Now().Year()), ` WhyBother — Football Stats Explorer</footer></body></html>`)
	})
}

// Shell is the part of a page rendered before its data arrives. The fragment
// at src replaces the loading text once htmx fetches it.
func Shell(heading, loading, src string) templ.Component {
	return component(func(_ context.Context, o *out) {
		if heading != "" {
			o.raw(`<h1>`, esc(heading), `</h1>`)
		}
		o.raw(`<div id="content" hx-get="`, href(src), `" hx-trigger="load" hx-sync="this:replace" hx-swap="innerHTML">`,
			`<p class="loading">`, esc(loading), `</p></div>`)
	})
}
