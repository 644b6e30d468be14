package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/jose-valero/whybother-dashboard/internal/adapters/web/views"
	"github.com/jose-valero/whybother-dashboard/internal/app/matchtable"
)

func page(title string, body templ.Component) http.Handler {
	return templ.Handler(views.Page(title, body))
}

// fragment escribe c; los fragmentos de error tambien van con 200 para que
// htmx los inserte.
func (s *Server) fragment(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		s.log.Warn("render fragment", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log.Warn("fragment failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Error(err))
	s.fragment(w, r, views.Error(msg))
}

func tableState(q url.Values) matchtable.State {
	p, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		p = 1
	}
	return matchtable.State{
		Filter: q.Get("filter"),
		Sort:   matchtable.ParseSortKey(q.Get("sort")),
		Page:   p,
	}
}

func fragmentSrc(path string, r *http.Request) string {
	if r.URL.RawQuery != "" {
		return path + "?" + r.URL.RawQuery
	}
	return path
}

// ---- pages ----

func (s *Server) handleHomePage(w http.ResponseWriter, r *http.Request) {
	page("Home", views.Shell("WhyBother Football Stats", "Loading...", "/fragments/home")).ServeHTTP(w, r)
}

func (s *Server) handleCountryPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page("Country Profile", views.CountryShell(r.PathValue("id"), q.Get("from_year"), q.Get("to_year"))).ServeHTTP(w, r)
}

func (s *Server) handleCountryMatchesPage(w http.ResponseWriter, r *http.Request) {
	src := fragmentSrc("/fragments/countries/"+url.PathEscape(r.PathValue("id"))+"/matches", r)
	page("Country Matches", views.Shell("", "Loading matches...", src)).ServeHTTP(w, r)
}

func (s *Server) handleYearPage(w http.ResponseWriter, r *http.Request) {
	src := fragmentSrc("/fragments/years/"+url.PathEscape(r.PathValue("year")), r)
	page("Year "+r.PathValue("year"), views.Shell("", "Loading year stats...", src)).ServeHTTP(w, r)
}

func (s *Server) handleGlobalPage(w http.ResponseWriter, r *http.Request) {
	page("Global Stats", views.Shell("", "Loading global stats...", "/fragments/global")).ServeHTTP(w, r)
}

func (s *Server) handlePlayersPage(w http.ResponseWriter, r *http.Request) {
	page("Players", views.Shell("Players", "Loading players...", "/fragments/players")).ServeHTTP(w, r)
}

func (s *Server) handleScorerPage(w http.ResponseWriter, r *http.Request) {
	src := fragmentSrc("/fragments/score/"+url.PathEscape(r.PathValue("id")), r)
	page("Scorer Profile", views.Shell("", "Loading scorer profile...", src)).ServeHTTP(w, r)
}

// ---- fragments ----

func (s *Server) handleHomeFragment(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, views.Home(s.dash.Home(r.Context())))
}

// El perfil de pais es el unico que muestra el mensaje real del error.
func (s *Server) handleCountryFragment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	q := r.URL.Query()
	refresh := q.Get("refresh") == "1"
	p, err := s.dash.CountryProfile(r.Context(), id, q.Get("from_year"), q.Get("to_year"), refresh)
	if err != nil {
		s.fail(w, r, err.Error(), err)
		return
	}
	s.fragment(w, r, views.CountryProfile(id, p, s.winsChart(p)))
}

func (s *Server) handleCountryMatchesFragment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, err := s.dash.CountryMatches(r.Context(), id, tableState(r.URL.Query()))
	if err != nil {
		s.fail(w, r, "Failed to load matches", err)
		return
	}
	s.fragment(w, r, views.CountryMatches(id, d))
}

func (s *Server) handleYearFragment(w http.ResponseWriter, r *http.Request) {
	year := r.PathValue("year")
	d, err := s.dash.YearStats(r.Context(), year, tableState(r.URL.Query()))
	if err != nil {
		s.fail(w, r, "Failed to load year stats", err)
		return
	}
	s.fragment(w, r, views.Year(year, d, s.topTeamsChart(d.TopTeams)))
}

func (s *Server) handleGlobalFragment(w http.ResponseWriter, r *http.Request) {
	g, err := s.dash.GlobalStats(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to load global stats", err)
		return
	}
	s.fragment(w, r, views.Global(s.globalCharts(g)))
}

func (s *Server) handlePlayersFragment(w http.ResponseWriter, r *http.Request) {
	ps, err := s.dash.Players(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to load players", err)
		return
	}
	s.fragment(w, r, views.Players(ps))
}

func (s *Server) handlePlayerScoreFragment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		id = strings.TrimSpace(r.URL.Query().Get("id"))
	}
	if id == "" {
		s.fragment(w, r, views.Error("Select a player"))
		return
	}
	ps, err := s.dash.PlayerScore(r.Context(), id)
	if err != nil {
		s.fail(w, r, "Failed to load player score", err)
		return
	}
	s.fragment(w, r, views.PlayerScore(id, ps))
}

func (s *Server) handleScorerFragment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := s.dash.Scorer(r.Context(), id)
	if err != nil {
		s.fail(w, r, "Failed to load scorer profile", err)
		return
	}
	view := views.ParseView(r.URL.Query().Get("view"))
	s.fragment(w, r, views.Scorer(id, p, view, s.scorerChart(p, view)))
}

// ---- redirects ----

func (s *Server) handleGoCountry(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := strings.TrimSpace(q.Get("id"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	out := url.Values{}
	for _, k := range []string{"from_year", "to_year"} {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			out.Set(k, v)
		}
	}
	target := "/countries/" + url.PathEscape(id)
	if enc := out.Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleGoYear(w http.ResponseWriter, r *http.Request) {
	year := strings.TrimSpace(r.URL.Query().Get("year"))
	if year == "" {
		year = views.DefaultYear
	}
	http.Redirect(w, r, "/years/"+url.PathEscape(year), http.StatusSeeOther)
}

func (s *Server) handleGoPlayer(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/score/"+url.PathEscape(id), http.StatusSeeOther)
}
