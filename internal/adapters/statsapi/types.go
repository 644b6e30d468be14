package statsapi

import (
	"encoding/json"
	"fmt"

	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// Los DTOs usan punteros para distinguir "ausente" de "cero"; toDomain
// valida los campos requeridos de cada respuesta.

func missing(resource, field string) error {
	return &domain.SchemaError{Resource: resource, Field: field}
}

// --- Countries ---
type countryDTO struct {
	ID         *int    `json:"id"`
	Name       *string `json:"name"`
	Region     *string `json:"region"`
	Population *int64  `json:"population"`
}

func (d countryDTO) toDomain() (domain.Country, error) {
	if d.ID == nil {
		return domain.Country{}, missing("country", "id")
	}
	if d.Name == nil {
		return domain.Country{}, missing("country", "name")
	}
	return domain.Country{ID: *d.ID, Name: *d.Name, Region: deref(d.Region), Population: d.Population}, nil
}

type countryDetailDTO struct {
	countryDTO
	ISOCode   *string `json:"iso_code"`
	Continent *string `json:"continent"`
	AreaSqKm  *int64  `json:"area_sq_km"`
}

func (d countryDetailDTO) toDomain() (domain.CountryDetail, error) {
	c, err := d.countryDTO.toDomain()
	if err != nil {
		return domain.CountryDetail{}, err
	}
	return domain.CountryDetail{Country: c, ISOCode: deref(d.ISOCode), Continent: deref(d.Continent), AreaSqKm: d.AreaSqKm}, nil
}

type countryMatchDTO struct {
	MatchDate  *string `json:"match_date"`
	Opponent   *string `json:"opponent"`
	Score      string  `json:"score"`
	Home       bool    `json:"home"`
	Tournament string  `json:"tournament"`
	City       string  `json:"city"`
}

func (d countryMatchDTO) toDomain() (domain.CountryMatch, error) {
	if d.MatchDate == nil {
		return domain.CountryMatch{}, missing("country match", "match_date")
	}
	if d.Opponent == nil {
		return domain.CountryMatch{}, missing("country match", "opponent")
	}
	return domain.CountryMatch{
		MatchDate:  *d.MatchDate,
		Opponent:   *d.Opponent,
		Score:      d.Score,
		Home:       d.Home,
		Tournament: d.Tournament,
		City:       d.City,
	}, nil
}

// --- Country profile ---
type profileStatsDTO struct {
	Matches  int     `json:"matches"`
	Wins     int     `json:"wins"`
	Goals    int     `json:"goals"`
	Points   int     `json:"points"`
	AvgGoals float64 `json:"avg_goals"`
}

type profileDTO struct {
	Country     *string          `json:"country"`
	Region      *string          `json:"region"`
	SubRegion   *string          `json:"sub_region"`
	Continent   *string          `json:"continent"`
	Population  *int64           `json:"population"`
	Area        *int64           `json:"area"`
	Stats       *profileStatsDTO `json:"stats"`
	WinsPerYear []struct {
		Year int `json:"year"`
		Wins int `json:"wins"`
	} `json:"wins_per_year"`
	Matches []struct {
		Date     string `json:"date"`
		Opponent string `json:"opponent"`
		Venue    string `json:"venue"`
		Score    string `json:"score"`
	} `json:"matches"`
}

func (d profileDTO) toDomain() (domain.CountryProfile, error) {
	if d.Country == nil {
		return domain.CountryProfile{}, missing("country profile", "country")
	}
	if d.Stats == nil {
		return domain.CountryProfile{}, missing("country profile", "stats")
	}
	p := domain.CountryProfile{
		Country:    *d.Country,
		Region:     deref(d.Region),
		SubRegion:  d.SubRegion,
		Continent:  d.Continent,
		Population: d.Population,
		Area:       d.Area,
		Stats: domain.ProfileStats{
			Matches:  d.Stats.Matches,
			Wins:     d.Stats.Wins,
			Goals:    d.Stats.Goals,
			Points:   d.Stats.Points,
			AvgGoals: d.Stats.AvgGoals,
		},
		WinsPerYear: make([]domain.YearWins, 0, len(d.WinsPerYear)),
	}
	for _, w := range d.WinsPerYear {
		p.WinsPerYear = append(p.WinsPerYear, domain.YearWins{Year: w.Year, Wins: w.Wins})
	}
	if d.Matches != nil {
		p.Matches = make([]domain.ProfileMatch, 0, len(d.Matches))
		for _, m := range d.Matches {
			p.Matches = append(p.Matches, domain.ProfileMatch{Date: m.Date, Opponent: m.Opponent, Venue: m.Venue, Score: m.Score})
		}
	}
	return p, nil
}

// --- Years ---

// teamGoalsDTO viene como par [team_id, goals].
type teamGoalsDTO struct {
	TeamID int
	Goals  int
}

func (t *teamGoalsDTO) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("top_teams entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("top_teams entry: want [team_id, goals], got %d values", len(pair))
	}
	t.TeamID, t.Goals = int(pair[0]), int(pair[1])
	return nil
}

type yearStatsDTO struct {
	Year         *int           `json:"year"`
	TotalMatches int            `json:"total_matches"`
	TopTeams     []teamGoalsDTO `json:"top_teams"`
	Matches      []struct {
		Date       string `json:"date"`
		Home       string `json:"home"`
		Away       string `json:"away"`
		Score      string `json:"score"`
		Tournament string `json:"tournament"`
	} `json:"matches"`
}

func (d yearStatsDTO) toDomain() (domain.YearStats, error) {
	if d.Year == nil {
		return domain.YearStats{}, missing("year stats", "year")
	}
	ys := domain.YearStats{
		Year:         *d.Year,
		TotalMatches: d.TotalMatches,
		TopTeams:     make([]domain.TeamGoals, 0, len(d.TopTeams)),
		Matches:      make([]domain.YearMatch, 0, len(d.Matches)),
	}
	for _, t := range d.TopTeams {
		ys.TopTeams = append(ys.TopTeams, domain.TeamGoals{TeamID: t.TeamID, Goals: t.Goals})
	}
	for _, m := range d.Matches {
		ys.Matches = append(ys.Matches, domain.YearMatch{Date: m.Date, Home: m.Home, Away: m.Away, Score: m.Score, Tournament: m.Tournament})
	}
	return ys, nil
}

// --- Global ---
type globalStatsDTO struct {
	Top10Wins []struct {
		Country string `json:"country"`
		Wins    int    `json:"wins"`
	} `json:"top10_wins"`
	Top10Points []struct {
		Country string `json:"country"`
		Points  int    `json:"points"`
	} `json:"top10_points"`
	Top10Goals []struct {
		Country string `json:"country"`
		Goals   int    `json:"goals"`
	} `json:"top10_goals"`
	PopulationScatter []struct {
		Country    string `json:"country"`
		Wins       int    `json:"wins"`
		Population int64  `json:"population"`
	} `json:"population_scatter"`
	AreaScatter []struct {
		Country  string `json:"country"`
		Wins     int    `json:"wins"`
		AreaSqKm int64  `json:"area_sq_km"`
	} `json:"scatter_wins_area"`
	Top10NormalizedWins []struct {
		Country     string  `json:"country"`
		WinsPerYear float64 `json:"wins_per_year"`
	} `json:"top10_normalized_wins"`
}

func (d globalStatsDTO) toDomain() domain.GlobalStats {
	var g domain.GlobalStats
	for _, v := range d.Top10Wins {
		g.Top10Wins = append(g.Top10Wins, domain.CountryWins{Country: v.Country, Wins: v.Wins})
	}
	for _, v := range d.Top10Points {
		g.Top10Points = append(g.Top10Points, domain.CountryPoints{Country: v.Country, Points: v.Points})
	}
	for _, v := range d.Top10Goals {
		g.Top10Goals = append(g.Top10Goals, domain.CountryGoals{Country: v.Country, Goals: v.Goals})
	}
	for _, v := range d.PopulationScatter {
		g.PopulationScatter = append(g.PopulationScatter, domain.PopulationPoint{Country: v.Country, Wins: v.Wins, Population: v.Population})
	}
	for _, v := range d.AreaScatter {
		g.AreaScatter = append(g.AreaScatter, domain.AreaPoint{Country: v.Country, Wins: v.Wins, AreaSqKm: v.AreaSqKm})
	}
	for _, v := range d.Top10NormalizedWins {
		g.Top10NormalizedWins = append(g.Top10NormalizedWins, domain.NormalizedWins{Country: v.Country, WinsPerYear: v.WinsPerYear})
	}
	return g
}

// --- Players ---
type playerDTO struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name"`
	CountryID   *int    `json:"country_id"`
	CountryName *string `json:"country_name"`
}

func (d playerDTO) toDomain() (domain.Player, error) {
	if d.ID == nil {
		return domain.Player{}, missing("player", "id")
	}
	if d.Name == nil {
		return domain.Player{}, missing("player", "name")
	}
	return domain.Player{ID: *d.ID, Name: *d.Name, CountryID: d.CountryID, CountryName: d.CountryName}, nil
}

// --- Scorers ---

// El backend publica "players" y "max_goals_in_a_match"; aceptamos tambien
// "player" y "max_goals_in_match".
type scorerDTO struct {
	Player      *string `json:"player"`
	Players     *string `json:"players"`
	Country     *string `json:"country"`
	ActiveYears *struct {
		From int `json:"from"`
		To   int `json:"to"`
	} `json:"active_years"`
	TotalGoals               *int     `json:"total_goals"`
	MaxGoalsInMatch          *int     `json:"max_goals_in_match"`
	MaxGoalsInAMatch         *int     `json:"max_goals_in_a_match"`
	TeamGoalsPerMatchOverall *float64 `json:"team_goals_per_match_overall"`
	YearlyStats              []struct {
		Year              int      `json:"year"`
		PlayerGoals       int      `json:"player_goals"`
		TeamGoalsPerMatch *float64 `json:"team_goals_per_match"`
	} `json:"yearly_stats"`
}

func (d scorerDTO) toDomain() (domain.ScorerProfile, error) {
	name := d.Player
	if name == nil {
		name = d.Players
	}
	if name == nil {
		return domain.ScorerProfile{}, missing("scorer", "player")
	}
	if d.TotalGoals == nil {
		return domain.ScorerProfile{}, missing("scorer", "total_goals")
	}
	s := domain.ScorerProfile{
		Player:                   *name,
		Country:                  d.Country,
		TotalGoals:               *d.TotalGoals,
		TeamGoalsPerMatchOverall: d.TeamGoalsPerMatchOverall,
		YearlyStats:              make([]domain.ScorerYear, 0, len(d.YearlyStats)),
	}
	switch {
	case d.MaxGoalsInMatch != nil:
		s.MaxGoalsInMatch = *d.MaxGoalsInMatch
	case d.MaxGoalsInAMatch != nil:
		s.MaxGoalsInMatch = *d.MaxGoalsInAMatch
	}
	if d.ActiveYears != nil {
		s.ActiveYears = &domain.YearRange{From: d.ActiveYears.From, To: d.ActiveYears.To}
	}
	for _, y := range d.YearlyStats {
		s.YearlyStats = append(s.YearlyStats, domain.ScorerYear{Year: y.Year, PlayerGoals: y.PlayerGoals, TeamGoalsPerMatch: y.TeamGoalsPerMatch})
	}
	return s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
