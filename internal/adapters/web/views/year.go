package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/jose-valero/whybother-dashboard/internal/app/service"
)

func Year(year string, d service.YearData, top Chart) templ.Component {
	src := "/fragments/years/" + url.PathEscape(year)
	return component(func(ctx context.Context, o *out) {
		o.raw(`<h1>Year `, esc(year), `</h1>`,
			`<form action="/go/year" method="get"><input type="number" name="year" value="`, esc(year), `">`,
			` <button type="submit">Go</button></form>`,
			`<p>Total matches: `, itoa(d.Stats.TotalMatches), `</p>`)
		chartBlock(ctx, o, top)
		o.raw(`<h2>Matches</h2>`)
		o.render(ctx, MatchTable(src, "#content", d.Table))
	})
}
