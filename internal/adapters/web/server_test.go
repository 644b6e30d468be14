package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/whybother-dashboard/internal/app/matchtable"
	"github.com/jose-valero/whybother-dashboard/internal/app/service"
	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

type fakeDashboard struct {
	profile    domain.CountryProfile
	profileErr error
	gotRefresh bool
	gotRange   [2]string
	matches    []domain.MatchRecord
	year       service.YearData
	yearErr    error
	players    []domain.Player
	scorer     domain.ScorerProfile
	score      service.PlayerScore
	home       service.HomeData
	gotState   matchtable.State
	globalErr  error
	scorerErr  error
}

func (f *fakeDashboard) Home(context.Context) service.HomeData { return f.home }

func (f *fakeDashboard) CountryProfile(_ context.Context, _, from, to string, refresh bool) (domain.CountryProfile, error) {
	f.gotRefresh = refresh
	f.gotRange = [2]string{from, to}
	return f.profile, f.profileErr
}

func (f *fakeDashboard) CountryMatches(_ context.Context, _ string, st matchtable.State) (service.CountryMatchesData, error) {
	f.gotState = st
	return service.CountryMatchesData{
		Country: domain.CountryDetail{Country: domain.Country{Name: "Brazil"}},
		Table:   matchtable.View(f.matches, st),
	}, nil
}

func (f *fakeDashboard) YearStats(_ context.Context, _ string, st matchtable.State) (service.YearData, error) {
	f.gotState = st
	return f.year, f.yearErr
}

func (f *fakeDashboard) GlobalStats(context.Context) (domain.GlobalStats, error) {
	return domain.GlobalStats{Top10Wins: []domain.CountryWins{{Country: "Brazil", Wins: 10}}}, f.globalErr
}

func (f *fakeDashboard) Players(context.Context) ([]domain.Player, error) { return f.players, nil }

func (f *fakeDashboard) PlayerScore(context.Context, string) (service.PlayerScore, error) {
	return f.score, nil
}

func (f *fakeDashboard) Scorer(context.Context, string) (domain.ScorerProfile, error) {
	return f.scorer, f.scorerErr
}

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	res := rec.Result()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(b)
}

func TestCountryPageShowsLoading(t *testing.T) {
	h := New(&fakeDashboard{}, nil).Handler()
	res, body := get(t, h, "/countries/7?from_year=1990&to_year=2000")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Loading country profile...")
	assert.Contains(t, body, `hx-get="/fragments/countries/7?from_year=1990&amp;to_year=2000"`)
	assert.Contains(t, body, `hx-trigger="load"`)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestCountryPageDefaultRange(t *testing.T) {
	h := New(&fakeDashboard{}, nil).Handler()
	_, body := get(t, h, "/countries/7")
	assert.Contains(t, body, `hx-get="/fragments/countries/7?from_year=1950&amp;to_year=2022"`)
	assert.Contains(t, body, `name="from_year" value="1950"`)
	assert.Contains(t, body, `name="to_year" value="2022"`)
}

func TestCountryFragmentError(t *testing.T) {
	f := &fakeDashboard{profileErr: errors.New("stats api status 404: Country not found")}
	_, body := get(t, New(f, nil).Handler(), "/fragments/countries/999")
	assert.Contains(t, body, "Error: stats api status 404: Country not found")
}

func TestCountryFragmentSuccess(t *testing.T) {
	f := &fakeDashboard{profile: domain.CountryProfile{
		Country: "Uruguay",
		Region:  "Americas",
		Stats:   domain.ProfileStats{Matches: 2},
		Matches: []domain.ProfileMatch{
			{Date: "1930-07-30", Opponent: "Argentina", Venue: "Home", Score: "4-2"},
			{Date: "1950-07-16", Opponent: "Brazil", Venue: "Away", Score: "2-1"},
		},
	}}
	_, body := get(t, New(f, nil).Handler(), "/fragments/countries/3?from_year=1930&to_year=1950&refresh=1")
	assert.Contains(t, body, "<h1>Uruguay</h1>")
	assert.Equal(t, 2, strings.Count(body, "<tr><td>"))
	assert.Contains(t, body, "Sub-region: N/A")
	assert.Contains(t, body, "No data available")
	assert.True(t, f.gotRefresh)
	assert.Equal(t, [2]string{"1930", "1950"}, f.gotRange)
}

func TestCountryFragmentWithoutMatches(t *testing.T) {
	pop := int64(3400000)
	f := &fakeDashboard{profile: domain.CountryProfile{Country: "Uruguay", Population: &pop}}
	_, body := get(t, New(f, nil).Handler(), "/fragments/countries/3")
	assert.Contains(t, body, "No match data available.")
	assert.Contains(t, body, "Population: 3,400,000")
	assert.False(t, f.gotRefresh)
}

func TestMatchTableFragment(t *testing.T) {
	var ms []domain.MatchRecord
	for i := 0; i < 25; i++ {
		ms = append(ms, domain.MatchRecord{Date: "2000-01-01", HomeTeam: "Brazil", AwayTeam: "Chile", HomeScore: i})
	}
	f := &fakeDashboard{matches: ms}
	_, body := get(t, New(f, nil).Handler(), "/fragments/countries/1/matches?filter=chi&sort=score&page=9")

	assert.Equal(t, matchtable.State{Filter: "chi", Sort: matchtable.SortByScore, Page: 9}, f.gotState)
	assert.Contains(t, body, "Page 3 of 3 (25 matches)")
	assert.Equal(t, 5, strings.Count(body, "<tr><td>"))
	assert.Contains(t, body, "<button disabled>Next</button>")
	assert.Contains(t, body, "1/1/2000")
}

func TestMatchTableEmpty(t *testing.T) {
	_, body := get(t, New(&fakeDashboard{}, nil).Handler(), "/fragments/countries/1/matches?filter=zzz")
	assert.Contains(t, body, "<th>Date</th>")
	assert.Contains(t, body, "<tbody></tbody></table>")
	assert.Equal(t, 0, strings.Count(body, "<tr><td>"))
	assert.NotContains(t, body, "No matches found")
	assert.Contains(t, body, "Page 1 of 1 (0 matches)")
	assert.Contains(t, body, "<button disabled>Previous</button>")
}

func TestYearFragment(t *testing.T) {
	f := &fakeDashboard{year: service.YearData{
		Stats:    domain.YearStats{Year: 2022, TotalMatches: 1},
		TopTeams: []service.TeamBar{{Name: "Argentina", Goals: 16}},
		Table: matchtable.View([]domain.MatchRecord{
			{Date: "not a date", HomeTeam: "Argentina", AwayTeam: "France", HomeScore: 3, AwayScore: 3},
		}, matchtable.State{}),
	}}
	_, body := get(t, New(f, nil).Handler(), "/fragments/years/2022")
	assert.Contains(t, body, "Year 2022")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "<td>not a date</td>")
}

func TestStaticErrorMessages(t *testing.T) {
	f := &fakeDashboard{yearErr: errors.New("boom"), globalErr: errors.New("boom"), scorerErr: errors.New("boom")}
	h := New(f, nil).Handler()
	tests := map[string]string{
		"/fragments/years/1800": "Error: Failed to load year stats",
		"/fragments/global":     "Error: Failed to load global stats",
		"/fragments/score/1":    "Error: Failed to load scorer profile",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			_, body := get(t, h, path)
			assert.Contains(t, body, want)
			assert.NotContains(t, body, "boom")
		})
	}
}

func TestPlayerScoreFragment(t *testing.T) {
	f := &fakeDashboard{score: service.PlayerScore{Player: domain.Player{ID: 9, Name: "Klose"}, Goals: 71}}
	h := New(f, nil).Handler()
	for _, path := range []string{"/fragments/players/9/score", "/fragments/players/score?id=9"} {
		_, body := get(t, h, path)
		assert.Contains(t, body, "Goals Scored: 71")
	}
	_, body := get(t, h, "/fragments/players/score")
	assert.Contains(t, body, "Error: Select a player")
}

func TestScorerFragment(t *testing.T) {
	tg := 2.5
	f := &fakeDashboard{scorer: domain.ScorerProfile{
		Player:      "Pelé",
		TotalGoals:  77,
		YearlyStats: []domain.ScorerYear{{Year: 1958, PlayerGoals: 6, TeamGoalsPerMatch: &tg}, {Year: 1962, PlayerGoals: 1}},
	}}
	_, body := get(t, New(f, nil).Handler(), "/fragments/score/1?view=player_goals")
	assert.Contains(t, body, "<h1>Pelé</h1>")
	assert.Contains(t, body, "Active years: N/A")
	assert.Contains(t, body, `<option value="player_goals" selected>`)
	assert.Contains(t, body, "<svg")
}

func TestScorerFragmentWithoutYears(t *testing.T) {
	f := &fakeDashboard{scorer: domain.ScorerProfile{Player: "Nobody", TotalGoals: 0}}
	_, body := get(t, New(f, nil).Handler(), "/fragments/score/5")
	assert.Contains(t, body, "No yearly data available.")
	assert.NotContains(t, body, "<svg")
}

func TestHomeFragment(t *testing.T) {
	f := &fakeDashboard{home: service.HomeData{
		Countries:  []domain.Country{{ID: 1, Name: "Argentina"}, {ID: 2, Name: "Brazil"}},
		PlayersErr: errors.New("down"),
	}}
	_, body := get(t, New(f, nil).Handler(), "/fragments/home")
	assert.Contains(t, body, `<option value="1" selected>Argentina</option>`)
	assert.Contains(t, body, `value="1950"`)
	assert.Contains(t, body, `value="2022"`)
	assert.Contains(t, body, "Error: Failed to load players")
}

func TestRedirects(t *testing.T) {
	h := New(&fakeDashboard{}, nil).Handler()
	tests := []struct {
		path, want string
	}{
		{"/go/country?id=7&from_year=1950&to_year=", "/countries/7?from_year=1950"},
		{"/go/country", "/"},
		{"/go/year?year=1986", "/years/1986"},
		{"/go/year", "/years/2022"},
		{"/go/player?id=3", "/score/3"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res, _ := get(t, h, tt.path)
			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, tt.want, res.Header.Get("Location"))
		})
	}
}

func TestLayoutAndHealth(t *testing.T) {
	h := New(&fakeDashboard{}, nil).Handler()
	_, body := get(t, h, "/")
	assert.Contains(t, body, `href="/score/1"`)
	assert.Contains(t, body, "WhyBother — Football Stats Explorer")

	res, body := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body)

	res, _ = get(t, h, "/nope")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRequestIDPropagates(t *testing.T) {
	h := New(&fakeDashboard{}, nil).Handler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}
