package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

type fakeAPI struct {
	calls atomic.Int32

	profile        func(ctx context.Context, id, from, to string) (domain.CountryProfile, error)
	countries      func(ctx context.Context) ([]domain.Country, error)
	country        func(ctx context.Context, id string) (domain.CountryDetail, error)
	countryMatches func(ctx context.Context, id string) ([]domain.CountryMatch, error)
	year           func(ctx context.Context, year string) (domain.YearStats, error)
	global         func(ctx context.Context) (domain.GlobalStats, error)
	players        func(ctx context.Context) ([]domain.Player, error)
	player         func(ctx context.Context, id string) (domain.Player, error)
	scorer         func(ctx context.Context, id string) (domain.ScorerProfile, error)
}

func (f *fakeAPI) GetCountryProfile(ctx context.Context, id, from, to string) (domain.CountryProfile, error) {
	f.calls.Add(1)
	if f.profile == nil {
		return domain.CountryProfile{}, nil
	}
	return f.profile(ctx, id, from, to)
}

func (f *fakeAPI) GetCountries(ctx context.Context) ([]domain.Country, error) {
	f.calls.Add(1)
	if f.countries == nil {
		return nil, nil
	}
	return f.countries(ctx)
}

func (f *fakeAPI) GetCountry(ctx context.Context, id string) (domain.CountryDetail, error) {
	f.calls.Add(1)
	if f.country == nil {
		return domain.CountryDetail{}, nil
	}
	return f.country(ctx, id)
}

func (f *fakeAPI) GetCountryMatches(ctx context.Context, id string) ([]domain.CountryMatch, error) {
	f.calls.Add(1)
	if f.countryMatches == nil {
		return nil, nil
	}
	return f.countryMatches(ctx, id)
}

func (f *fakeAPI) GetYearStats(ctx context.Context, year string) (domain.YearStats, error) {
	f.calls.Add(1)
	if f.year == nil {
		return domain.YearStats{}, nil
	}
	return f.year(ctx, year)
}

func (f *fakeAPI) GetGlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	f.calls.Add(1)
	if f.global == nil {
		return domain.GlobalStats{}, nil
	}
	return f.global(ctx)
}

func (f *fakeAPI) GetPlayers(ctx context.Context) ([]domain.Player, error) {
	f.calls.Add(1)
	if f.players == nil {
		return nil, nil
	}
	return f.players(ctx)
}

func (f *fakeAPI) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	f.calls.Add(1)
	if f.player == nil {
		return domain.Player{}, nil
	}
	return f.player(ctx, id)
}

func (f *fakeAPI) GetScorer(ctx context.Context, id string) (domain.ScorerProfile, error) {
	f.calls.Add(1)
	if f.scorer == nil {
		return domain.ScorerProfile{}, nil
	}
	return f.scorer(ctx, id)
}

type mapCache struct {
	mu      sync.Mutex
	m       map[string][]byte
	deleted []string
	getErr  error
}

func newMapCache() *mapCache { return &mapCache{m: map[string][]byte{}} }

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	b, ok := c.m[key]
	return b, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, val []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = val
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.m, k)
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *mapCache) raw(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.m[key]
	return string(b), ok
}
