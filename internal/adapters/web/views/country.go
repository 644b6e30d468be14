package views

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// CountryShell agrega al shell el form de rango de años; Refresh vuelve a
// pedir el fragmento salteando el cache. Sin rango en la URL se usa
// 1950-2022, igual que el form del home.
func CountryShell(id, fromYear, toYear string) templ.Component {
	if fromYear == "" {
		fromYear = DefaultFromYear
	}
	if toYear == "" {
		toYear = DefaultToYear
	}
	q := url.Values{"from_year": {fromYear}, "to_year": {toYear}}
	base := "/fragments/countries/" + url.PathEscape(id)

	form := component(func(_ context.Context, o *out) {
		o.raw(`<form class="year-range" hx-get="`, href(base), `"`,
			` hx-target="#content" hx-sync="#content:replace">`,
			`<input type="hidden" name="refresh" value="1">`,
			`<label>From <input type="number" name="from_year" value="`, esc(fromYear), `"></label> `,
			`<label>To <input type="number" name="to_year" value="`, esc(toYear), `"></label> `,
			`<button type="submit">Refresh</button></form>`)
	})
	return templ.Join(form, Shell("", "Loading country profile...", withQuery(base, q)))
}

func CountryProfile(id string, p domain.CountryProfile, wins Chart) templ.Component {
	return component(func(ctx context.Context, o *out) {
		o.raw(`<h1>`, esc(p.Country), `</h1>`)
		o.raw(`<ul class="facts">`,
			`<li>Region: `, esc(orNA(p.Region)), `</li>`,
			`<li>Sub-region: `, esc(optString(p.SubRegion)), `</li>`,
			`<li>Continent: `, esc(optString(p.Continent)), `</li>`,
			`<li>Population: `, optCount(p.Population), `</li>`,
			`<li>Area: `, optArea(p.Area), `</li></ul>`)

		s := p.Stats
		o.raw(`<h2>Stats</h2><ul class="stats">`,
			`<li>Matches: `, humanize.Comma(int64(s.Matches)), `</li>`,
			`<li>Wins: `, humanize.Comma(int64(s.Wins)), `</li>`,
			`<li>Goals: `, humanize.Comma(int64(s.Goals)), `</li>`,
			`<li>Points: `, humanize.Comma(int64(s.Points)), `</li>`,
			`<li>Average Goals: `, fmt.Sprintf("%.2f", s.AvgGoals), `</li></ul>`)

		chartBlock(ctx, o, wins)

		o.raw(`<h2>Match History</h2>`)
		if p.Matches == nil {
			o.raw(`<p class="empty">No match data available.</p>`)
		} else {
			o.raw(`<table class="history"><thead><tr><th>Date</th><th>Opponent</th><th>Venue</th><th>Score</th></tr></thead><tbody>`)
			for _, m := range p.Matches {
				o.raw(`<tr><td>`, esc(m.Date), `</td><td>`, esc(m.Opponent), `</td><td>`, esc(m.Venue), `</td><td>`, esc(m.Score), `</td></tr>`)
			}
			o.raw(`</tbody></table>`)
		}
		o.raw(`<p><a href="`, href("/countries/"+url.PathEscape(id)+"/matches"), `">All matches</a></p>`)
	})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func optArea(n *int64) string {
	if n == nil {
		return "N/A"
	}
	return humanize.Comma(*n) + " km²"
}
