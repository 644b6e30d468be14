package views

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/jose-valero/whybother-dashboard/internal/app/matchtable"
	"github.com/jose-valero/whybother-dashboard/internal/app/service"
)

// tableURL rebuilds the fragment URL for a given page keeping filter and sort.
func tableURL(src string, st matchtable.State, page int) string {
	q := url.Values{}
	if st.Filter != "" {
		q.Set("filter", st.Filter)
	}
	q.Set("sort", string(st.Sort))
	q.Set("page", strconv.Itoa(page))
	return withQuery(src, q)
}

// MatchTable renders the filter/sort controls, the current page and its
// navigation. src is the fragment the controls re-request; target is the
// element they replace.
func MatchTable(src, target string, p matchtable.Page) templ.Component {
	return component(func(_ context.Context, o *out) {
		st := p.State
		o.raw(`<form class="table-controls" hx-get="`, href(src), `" hx-target="`, esc(target), `" hx-sync="`, esc(target), `:replace" hx-trigger="submit, change from:select">`,
			`<input type="search" name="filter" placeholder="Filter by team" value="`, esc(st.Filter), `"> `,
			`<select name="sort">`)
		for _, k := range []matchtable.SortKey{matchtable.SortByDate, matchtable.SortByScore} {
			sel := ""
			if k == st.Sort {
				sel = " selected"
			}
			label := "Date"
			if k == matchtable.SortByScore {
				label = "Score"
			}
			o.raw(`<option value="`, string(k), `"`, sel, `>Sort by `, label, `</option>`)
		}
		o.raw(`</select> <button type="submit">Apply</button></form>`)

		// sin filas queda la tabla con el tbody vacio
		o.raw(`<table class="matches"><thead><tr><th>Date</th><th>Home</th><th>Away</th><th>Score</th><th>Tournament</th></tr></thead><tbody>`)
		for _, m := range p.Rows {
			o.raw(`<tr><td>`, esc(matchtable.FormatDate(m.Date)), `</td><td>`, esc(m.HomeTeam), `</td><td>`, esc(m.AwayTeam),
				`</td><td>`, itoa(m.HomeScore), ` - `, itoa(m.AwayScore), `</td><td>`, esc(m.Tournament), `</td></tr>`)
		}
		o.raw(`</tbody></table>`)

		o.raw(`<nav class="pager">`)
		navButton(o, "Previous", tableURL(src, st, p.PrevPage()), target, !p.HasPrev())
		shown := p.TotalPages
		if shown == 0 {
			shown = 1
		}
		o.raw(` <span>Page `, itoa(p.Page), ` of `, itoa(shown), ` (`, itoa(p.Total), ` matches)</span> `)
		navButton(o, "Next", tableURL(src, st, p.NextPage()), target, !p.HasNext())
		o.raw(`</nav>`)
	})
}

func navButton(o *out, label, link, target string, disabled bool) {
	if disabled {
		o.raw(`<button disabled>`, label, `</button>`)
		return
	}
	o.raw(`<button hx-get="`, href(link), `" hx-target="`, esc(target), `" hx-sync="`, esc(target), `:replace">`, label, `</button>`)
}

func CountryMatches(id string, d service.CountryMatchesData) templ.Component {
	src := "/fragments/countries/" + url.PathEscape(id) + "/matches"
	return component(func(ctx context.Context, o *out) {
		o.raw(`<h1>`, esc(d.Country.Name), ` matches</h1>`)
		o.raw(`<p><a href="`, href("/countries/"+url.PathEscape(id)), `">Back to profile</a></p>`)
		o.render(ctx, MatchTable(src, "#content", d.Table))
	})
}
