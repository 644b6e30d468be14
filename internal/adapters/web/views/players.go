package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/jose-valero/whybother-dashboard/internal/app/service"
	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

func Players(ps []domain.Player) templ.Component {
	return component(func(_ context.Context, o *out) {
		if len(ps) == 0 {
			o.raw(`<p class="empty">No players available</p>`)
			return
		}
		o.raw(`<form hx-get="/fragments/players/score" hx-target="#score" hx-sync="#score:replace">`,
			`<select name="id">`)
		for i, p := range ps {
			sel := ""
			if i == 0 {
				sel = " selected"
			}
			label := p.Name
			if p.CountryName != nil && *p.CountryName != "" {
				label += " (" + *p.CountryName + ")"
			}
			o.raw(`<option value="`, itoa(p.ID), `"`, sel, `>`, esc(label), `</option>`)
		}
		o.raw(`</select> <button type="submit">Show Score</button></form><div id="score"></div>`)
	})
}

func PlayerScore(id string, s service.PlayerScore) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw(`<div class="score"><h2>`, esc(s.Player.Name), `</h2>`,
			`<p>Goals Scored: `, itoa(s.Goals), `</p>`,
			`<a href="`, href("/score/"+url.PathEscape(id)), `">Scorer profile</a></div>`)
	})
}
