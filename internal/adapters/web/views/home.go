package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jose-valero/whybother-dashboard/internal/app/service"
)

const (
	DefaultFromYear = "1950"
	DefaultToYear   = "2022"
	DefaultYear     = "2022"
)

// Home: cada selector falla por su lado.
func Home(d service.HomeData) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw(`<section class="home-country"><h2>Country Profile</h2>`)
		switch {
		case d.CountriesErr != nil:
			o.raw(`<p class="error">Error: Failed to load countries</p>`)
		case len(d.Countries) == 0:
			o.raw(`<p class="empty">No countries available</p>`)
		default:
			o.raw(`<form action="/go/country" method="get"><select name="id">`)
			for i, c := range d.Countries {
				sel := ""
				if i == 0 {
					sel = " selected"
				}
				o.raw(`<option value="`, itoa(c.ID), `"`, sel, `>`, esc(c.Name), `</option>`)
			}
			o.raw(`</select>`,
				` <label>From <input type="number" name="from_year" value="`, DefaultFromYear, `"></label>`,
				` <label>To <input type="number" name="to_year" value="`, DefaultToYear, `"></label>`,
				` <button type="submit">View Profile</button></form>`)
		}
		o.raw(`</section>`)

		o.raw(`<section class="home-year"><h2>Year Stats</h2>`,
			`<form action="/go/year" method="get"><input type="number" name="year" value="`, DefaultYear, `">`,
			` <button type="submit">View Year</button></form></section>`)

		o.raw(`<section class="home-global"><h2>Global Stats</h2>`,
			`<a class="button" href="/global">View Global Stats</a></section>`)

		o.raw(`<section class="home-player"><h2>Scorer Profile</h2>`)
		switch {
		case d.PlayersErr != nil:
			o.raw(`<p class="error">Error: Failed to load players</p>`)
		case len(d.Players) == 0:
			o.raw(`<p class="empty">No players available</p>`)
		default:
			o.raw(`<form action="/go/player" method="get"><select name="id">`)
			for i, p := range d.Players {
				sel := ""
				if i == 0 {
					sel = " selected"
				}
				o.raw(`<option value="`, itoa(p.ID), `"`, sel, `>`, esc(p.Name), `</option>`)
			}
			o.raw(`</select> <button type="submit">View Scorer</button></form>`)
		}
		o.raw(`</section>`)
	})
}
