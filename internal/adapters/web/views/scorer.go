package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// Scorer chart views.
const (
	ViewBoth        = "both"
	ViewPlayerGoals = "player_goals"
	ViewTeamGoals   = "team_goals_per_match"
)

// ParseView falls back to both series.
func ParseView(v string) string {
	switch v {
	case ViewPlayerGoals, ViewTeamGoals:
		return v
	}
	return ViewBoth
}

func Scorer(id string, p domain.ScorerProfile, view string, chart Chart) templ.Component {
	src := "/fragments/score/" + url.PathEscape(id)
	return component(func(ctx context.Context, o *out) {
		years := "N/A"
		if p.ActiveYears != nil {
			years = itoa(p.ActiveYears.From) + " – " + itoa(p.ActiveYears.To)
		}
		o.raw(`<h1>`, esc(p.Player), `</h1><ul class="facts">`,
			`<li>Country: `, esc(optString(p.Country)), `</li>`,
			`<li>Active years: `, years, `</li>`,
			`<li>Total goals: `, itoa(p.TotalGoals), `</li>`,
			`<li>Max goals in a match: `, itoa(p.MaxGoalsInMatch), `</li>`,
			`<li>Team goals per match: `, optFloat(p.TeamGoalsPerMatchOverall), `</li></ul>`)

		o.raw(`<form hx-get="`, href(src), `" hx-target="#content" hx-sync="#content:replace" hx-trigger="change">`,
			`<label>View <select name="view">`)
		for _, v := range [][2]string{{ViewBoth, "Both"}, {ViewPlayerGoals, "Player goals"}, {ViewTeamGoals, "Team goals per match"}} {
			sel := ""
			if v[0] == view {
				sel = " selected"
			}
			o.raw(`<option value="`, v[0], `"`, sel, `>`, v[1], `</option>`)
		}
		o.raw(`</select></label></form>`)

		if len(p.YearlyStats) == 0 {
			o.raw(`<p class="empty">No yearly data available.</p>`)
			return
		}
		chartBlock(ctx, o, chart)
		o.raw(`<table class="yearly"><thead><tr><th>Year</th><th>Player goals</th><th>Team goals per match</th></tr></thead><tbody>`)
		for _, y := range p.YearlyStats {
			o.raw(`<tr><td>`, itoa(y.Year), `</td><td>`, itoa(y.PlayerGoals), `</td><td>`, optFloat(y.TeamGoalsPerMatch), `</td></tr>`)
		}
		o.raw(`</tbody></table>`)
	})
}
