package service

import (
	"context"

	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// Lo implementa internal/adapters/statsapi.Client
type StatsAPI interface {
	GetCountryProfile(ctx context.Context, id, fromYear, toYear string) (domain.CountryProfile, error)
	GetCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, id string) (domain.CountryDetail, error)
	GetCountryMatches(ctx context.Context, id string) ([]domain.CountryMatch, error)
	GetYearStats(ctx context.Context, year string) (domain.YearStats, error)
	GetGlobalStats(ctx context.Context) (domain.GlobalStats, error)
	GetPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id string) (domain.Player, error)
	GetScorer(ctx context.Context, id string) (domain.ScorerProfile, error)
}

// Lo implementan internal/infra/cache.Memory, cache.Tiered y
// internal/infra/storage.CacheRepo
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, keys ...string) error
}
