package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// GetCountryProfile: from/to se mandan tal cual (sin validar) y solo si no
// estan vacios.
func (c *Client) GetCountryProfile(ctx context.Context, id, fromYear, toYear string) (domain.CountryProfile, error) {
	q := url.Values{}
	if v := strings.TrimSpace(fromYear); v != "" {
		q.Set("from_year", v)
	}
	if v := strings.TrimSpace(toYear); v != "" {
		q.Set("to_year", v)
	}
	var dto profileDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/stats/country/%s/profile", url.PathEscape(id)), q, &dto); err != nil {
		return domain.CountryProfile{}, err
	}
	return dto.toDomain()
}

func (c *Client) GetCountries(ctx context.Context) ([]domain.Country, error) {
	var dtos []countryDTO
	if err := c.getJSON(ctx, "/countries", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Country, 0, len(dtos))
	for _, d := range dtos {
		co, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, nil
}

func (c *Client) GetCountry(ctx context.Context, id string) (domain.CountryDetail, error) {
	var dto countryDetailDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/countries/%s", url.PathEscape(id)), nil, &dto); err != nil {
		return domain.CountryDetail{}, err
	}
	return dto.toDomain()
}

func (c *Client) GetCountryMatches(ctx context.Context, id string) ([]domain.CountryMatch, error) {
	var dtos []countryMatchDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/countries/%s/matches", url.PathEscape(id)), nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.CountryMatch, 0, len(dtos))
	for _, d := range dtos {
		m, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *Client) GetYearStats(ctx context.Context, year string) (domain.YearStats, error) {
	var dto yearStatsDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/stats/%s", url.PathEscape(year)), nil, &dto); err != nil {
		return domain.YearStats{}, err
	}
	return dto.toDomain()
}

func (c *Client) GetGlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	var dto globalStatsDTO
	if err := c.getJSON(ctx, "/stats/global", nil, &dto); err != nil {
		return domain.GlobalStats{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) GetPlayers(ctx context.Context) ([]domain.Player, error) {
	var dtos []playerDTO
	if err := c.getJSON(ctx, "/players", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Player, 0, len(dtos))
	for _, d := range dtos {
		p, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	var dto playerDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/players/%s", url.PathEscape(id)), nil, &dto); err != nil {
		return domain.Player{}, err
	}
	return dto.toDomain()
}

// GetScorer trae el perfil de goleador con su serie anual.
func (c *Client) GetScorer(ctx context.Context, id string) (domain.ScorerProfile, error) {
	var dto scorerDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/scorers/%s", url.PathEscape(id)), nil, &dto); err != nil {
		return domain.ScorerProfile{}, err
	}
	return dto.toDomain()
}
