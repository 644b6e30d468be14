package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jose-valero/whybother-dashboard/internal/app/matchtable"
	"github.com/jose-valero/whybother-dashboard/internal/app/service"
	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// Dashboard es lo que los handlers le piden al service; lo implementa
// *service.Dashboard.
type Dashboard interface {
	Home(ctx context.Context) service.HomeData
	CountryProfile(ctx context.Context, id, fromYear, toYear string, refresh bool) (domain.CountryProfile, error)
	CountryMatches(ctx context.Context, id string, st matchtable.State) (service.CountryMatchesData, error)
	YearStats(ctx context.Context, year string, st matchtable.State) (service.YearData, error)
	GlobalStats(ctx context.Context) (domain.GlobalStats, error)
	Players(ctx context.Context) ([]domain.Player, error)
	PlayerScore(ctx context.Context, id string) (service.PlayerScore, error)
	Scorer(ctx context.Context, id string) (domain.ScorerProfile, error)
}

type Server struct {
	dash Dashboard
	log  *zap.Logger
	mux  *http.ServeMux
	http *http.Server
}

func New(dash Dashboard, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{dash: dash, log: log, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	// paginas: shell con "Loading ..." que pide su fragmento
	s.mux.HandleFunc("GET /{$}", s.handleHomePage)
	s.mux.HandleFunc("GET /countries/{id}", s.handleCountryPage)
	s.mux.HandleFunc("GET /countries/{id}/matches", s.handleCountryMatchesPage)
	s.mux.HandleFunc("GET /years/{year}", s.handleYearPage)
	s.mux.HandleFunc("GET /global", s.handleGlobalPage)
	s.mux.HandleFunc("GET /players", s.handlePlayersPage)
	s.mux.HandleFunc("GET /score/{id}", s.handleScorerPage)

	// fragmentos htmx
	s.mux.HandleFunc("GET /fragments/home", s.handleHomeFragment)
	s.mux.HandleFunc("GET /fragments/countries/{id}", s.handleCountryFragment)
	s.mux.HandleFunc("GET /fragments/countries/{id}/matches", s.handleCountryMatchesFragment)
	s.mux.HandleFunc("GET /fragments/years/{year}", s.handleYearFragment)
	s.mux.HandleFunc("GET /fragments/global", s.handleGlobalFragment)
	s.mux.HandleFunc("GET /fragments/players", s.handlePlayersFragment)
	s.mux.HandleFunc("GET /fragments/players/{id}/score", s.handlePlayerScoreFragment)
	s.mux.HandleFunc("GET /fragments/players/score", s.handlePlayerScoreFragment)
	s.mux.HandleFunc("GET /fragments/score/{id}", s.handleScorerFragment)

	// forms del home -> URLs canonicas
	s.mux.HandleFunc("GET /go/country", s.handleGoCountry)
	s.mux.HandleFunc("GET /go/year", s.handleGoYear)
	s.mux.HandleFunc("GET /go/player", s.handleGoPlayer)

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

// Handler is the mux wrapped with request id and access logging.
func (s *Server) Handler() http.Handler {
	return requestID(accessLog(s.log, s.mux))
}

// Start bloquea hasta que el server se cierra; Shutdown no cuenta como error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("http listening", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
