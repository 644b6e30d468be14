package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/whybother-dashboard/internal/app/matchtable"
	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// Dashboard arma los datos de cada pagina a partir de la API de stats.
type Dashboard struct {
	api   StatsAPI
	cache Cache
	seq   *sequencer
	log   *zap.Logger
}

// NewDashboard: cache puede ser nil (sin cache).
func NewDashboard(api StatsAPI, cache Cache, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dashboard{api: api, cache: cache, seq: newSequencer(), log: log}
}

func profileKey(id, from, to string) string { return fmt.Sprintf("profile:%s:%s:%s", id, from, to) }
func countryKey(id string) string { return "country:" + id }
func countryMatchesKey(id string) string { return "country-matches:" + id }
func yearKey(year string) string { return "year:" + year }
func playerKey(id string) string { return "player:" + id }
func scorerKey(id string) string { return "scorer:" + id }

const (
	countriesKey = "countries"
	playersKey   = "players"
	globalKey    = "global"
)

// HomeData: paises y jugadores cargan por separado; si uno falla el otro
// igual se muestra.
type HomeData struct {
	Countries    []domain.Country
	CountriesErr error
	Players      []domain.Player
	PlayersErr   error
}

func (d *Dashboard) Home(ctx context.Context) HomeData {
	var out HomeData
	var g errgroup.Group
	g.Go(func() error {
		out.Countries, out.CountriesErr = d.Countries(ctx)
		return nil
	})
	g.Go(func() error {
		out.Players, out.PlayersErr = d.Players(ctx)
		return nil
	})
	_ = g.Wait()
	if out.CountriesErr != nil {
		d.log.Warn("home: countries failed", zap.Error(out.CountriesErr))
	}
	if out.PlayersErr != nil {
		d.log.Warn("home: players failed", zap.Error(out.PlayersErr))
	}
	return out
}

func (d *Dashboard) Countries(ctx context.Context) ([]domain.Country, error) {
	return cached(ctx, d, countriesKey, d.api.GetCountries)
}

func (d *Dashboard) Players(ctx context.Context) ([]domain.Player, error) {
	return cached(ctx, d, playersKey, d.api.GetPlayers)
}

// CountryProfile trae el perfil para el rango pedido. refresh descarta lo
// cacheado del perfil y de los partidos del pais antes de pedirlo de nuevo.
func (d *Dashboard) CountryProfile(ctx context.Context, id, fromYear, toYear string, refresh bool) (domain.CountryProfile, error) {
	key := profileKey(id, fromYear, toYear)
	if refresh && d.cache != nil {
		if err := d.cache.Delete(ctx, key, countryMatchesKey(id)); err != nil {
			d.log.Warn("cache invalidate", zap.String("country", id), zap.Error(err))
		}
	}
	return cached(ctx, d, key, func(ctx context.Context) (domain.CountryProfile, error) {
		return d.api.GetCountryProfile(ctx, id, fromYear, toYear)
	})
}

type CountryMatchesData struct {
	Country domain.CountryDetail
	Table   matchtable.Page
}

// CountryMatches necesita el nombre del pais para armar las columnas
// local/visitante, asi que ambos fetch son obligatorios.
func (d *Dashboard) CountryMatches(ctx context.Context, id string, st matchtable.State) (CountryMatchesData, error) {
	var (
		country domain.CountryDetail
		matches []domain.CountryMatch
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		country, err = cached(gctx, d, countryKey(id), func(ctx context.Context) (domain.CountryDetail, error) {
			return d.api.GetCountry(ctx, id)
		})
		return err
	})
	g.Go(func() (err error) {
		matches, err = cached(gctx, d, countryMatchesKey(id), func(ctx context.Context) ([]domain.CountryMatch, error) {
			return d.api.GetCountryMatches(ctx, id)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return CountryMatchesData{}, err
	}
	records := domain.CountryMatchRecords(country.Name, matches)
	return CountryMatchesData{Country: country, Table: matchtable.View(records, st)}, nil
}

// TeamBar is one bar of the year page's top scoring chart.
type TeamBar struct {
	Name  string
	Goals int
}

type YearData struct {
	Stats    domain.YearStats
	TopTeams []TeamBar
	Table    matchtable.Page
}

// YearStats: la lista de paises solo aporta nombres; si falla se usa
// "Team <id>".
func (d *Dashboard) YearStats(ctx context.Context, year string, st matchtable.State) (YearData, error) {
	var (
		stats        domain.YearStats
		statsErr     error
		countries    []domain.Country
		countriesErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		stats, statsErr = cached(ctx, d, yearKey(year), func(ctx context.Context) (domain.YearStats, error) {
			return d.api.GetYearStats(ctx, year)
		})
		return nil
	})
	g.Go(func() error {
		countries, countriesErr = d.Countries(ctx)
		return nil
	})
	_ = g.Wait()
	if statsErr != nil {
		return YearData{}, statsErr
	}
	if countriesErr != nil {
		d.log.Warn("year: country names unavailable", zap.String("year", year), zap.Error(countriesErr))
	}

	names := make(map[int]string, len(countries))
	for _, c := range countries {
		names[c.ID] = c.Name
	}
	bars := make([]TeamBar, 0, len(stats.TopTeams))
	for _, t := range stats.TopTeams {
		name, ok := names[t.TeamID]
		if !ok {
			name = fmt.Sprintf("Team %d", t.TeamID)
		}
		bars = append(bars, TeamBar{Name: name, Goals: t.Goals})
	}
	return YearData{
		Stats:    stats,
		TopTeams: bars,
		Table:    matchtable.View(domain.YearMatchRecords(stats.Matches), st),
	}, nil
}

func (d *Dashboard) GlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	return cached(ctx, d, globalKey, d.api.GetGlobalStats)
}

func (d *Dashboard) Scorer(ctx context.Context, id string) (domain.ScorerProfile, error) {
	return cached(ctx, d, scorerKey(id), func(ctx context.Context) (domain.ScorerProfile, error) {
		return d.api.GetScorer(ctx, id)
	})
}

type PlayerScore struct {
	Player domain.Player
	Goals  int
}

// PlayerScore valida el jugador y toma el total de goles de su perfil de
// goleador.
func (d *Dashboard) PlayerScore(ctx context.Context, id string) (PlayerScore, error) {
	var (
		player domain.Player
		scorer domain.ScorerProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		player, err = cached(gctx, d, playerKey(id), func(ctx context.Context) (domain.Player, error) {
			return d.api.GetPlayer(ctx, id)
		})
		return err
	})
	g.Go(func() (err error) {
		scorer, err = d.Scorer(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return PlayerScore{}, err
	}
	return PlayerScore{Player: player, Goals: scorer.TotalGoals}, nil
}
