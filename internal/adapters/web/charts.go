package web

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/jose-valero/whybother-dashboard/internal/adapters/charts"
	"github.com/jose-valero/whybother-dashboard/internal/adapters/web/views"
	"github.com/jose-valero/whybother-dashboard/internal/app/service"
	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// chart: un fallo de render se loguea y se muestra como "No data available".
func (s *Server) chart(title string, svg []byte, err error) views.Chart {
	if err != nil && !errors.Is(err, charts.ErrNoData) {
		s.log.Warn("chart render", zap.String("chart", title), zap.Error(err))
	}
	if err != nil {
		return views.Chart{Title: title}
	}
	return views.Chart{Title: title, SVG: svg}
}

func (s *Server) winsChart(p domain.CountryProfile) views.Chart {
	bars := make([]charts.Bar, len(p.WinsPerYear))
	for i, y := range p.WinsPerYear {
		bars[i] = charts.Bar{Label: strconv.Itoa(y.Year), Value: float64(y.Wins)}
	}
	const title = "Wins per Year"
	svg, err := charts.BarChart(title, bars)
	return s.chart(title, svg, err)
}

func (s *Server) topTeamsChart(teams []service.TeamBar) views.Chart {
	bars := make([]charts.Bar, len(teams))
	for i, t := range teams {
		bars[i] = charts.Bar{Label: t.Name, Value: float64(t.Goals)}
	}
	const title = "Top Scoring Teams"
	svg, err := charts.BarChart(title, bars)
	return s.chart(title, svg, err)
}

func (s *Server) globalCharts(g domain.GlobalStats) []views.Chart {
	bar := func(title string, n int, at func(i int) charts.Bar) views.Chart {
		bars := make([]charts.Bar, n)
		for i := range bars {
			bars[i] = at(i)
		}
		svg, err := charts.BarChart(title, bars)
		return s.chart(title, svg, err)
	}
	scatter := func(title, xName string, n int, at func(i int) charts.Point) views.Chart {
		pts := make([]charts.Point, n)
		for i := range pts {
			pts[i] = at(i)
		}
		svg, err := charts.ScatterChart(title, xName, "Wins", pts)
		return s.chart(title, svg, err)
	}

	return []views.Chart{
		bar("Top 10 Countries by Wins", len(g.Top10Wins), func(i int) charts.Bar {
			return charts.Bar{Label: g.Top10Wins[i].Country, Value: float64(g.Top10Wins[i].Wins)}
		}),
		bar("Top 10 Countries by Points", len(g.Top10Points), func(i int) charts.Bar {
			return charts.Bar{Label: g.Top10Points[i].Country, Value: float64(g.Top10Points[i].Points)}
		}),
		bar("Top 10 Countries by Goals", len(g.Top10Goals), func(i int) charts.Bar {
			return charts.Bar{Label: g.Top10Goals[i].Country, Value: float64(g.Top10Goals[i].Goals)}
		}),
		bar("Top 10 Wins per Year Active", len(g.Top10NormalizedWins), func(i int) charts.Bar {
			return charts.Bar{Label: g.Top10NormalizedWins[i].Country, Value: g.Top10NormalizedWins[i].WinsPerYear}
		}),
		scatter("Wins vs Population", "Population", len(g.PopulationScatter), func(i int) charts.Point {
			p := g.PopulationScatter[i]
			return charts.Point{Label: p.Country, X: float64(p.Population), Y: float64(p.Wins)}
		}),
		scatter("Wins vs Area", "Area (km²)", len(g.AreaScatter), func(i int) charts.Point {
			p := g.AreaScatter[i]
			return charts.Point{Label: p.Country, X: float64(p.AreaSqKm), Y: float64(p.Wins)}
		}),
	}
}

func (s *Server) scorerChart(p domain.ScorerProfile, view string) views.Chart {
	goals := charts.Series{Name: "player_goals"}
	team := charts.Series{Name: "team_goals_per_match"}
	for _, y := range p.YearlyStats {
		goals.X = append(goals.X, float64(y.Year))
		goals.Y = append(goals.Y, float64(y.PlayerGoals))
		if y.TeamGoalsPerMatch != nil {
			team.X = append(team.X, float64(y.Year))
			team.Y = append(team.Y, *y.TeamGoalsPerMatch)
		}
	}
	var series []charts.Series
	switch view {
	case views.ViewPlayerGoals:
		series = []charts.Series{goals}
	case views.ViewTeamGoals:
		series = []charts.Series{team}
	default:
		series = []charts.Series{goals, team}
	}
	const title = "Yearly Stats"
	svg, err := charts.LineChart(title, "Year", "Goals", series)
	return s.chart(title, svg, err)
}
