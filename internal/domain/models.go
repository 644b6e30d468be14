package domain

// Country is one entry of the /countries listing.
type Country struct {
	ID         int
	Name       string
	Region     string
	Population *int64
}

// CountryDetail is the /countries/{id} shape.
type CountryDetail struct {
	Country
	ISOCode   string
	Continent string
	AreaSqKm  *int64
}

type ProfileStats struct {
	Matches  int
	Wins     int
	Goals    int
	Points   int
	AvgGoals float64
}

type YearWins struct {
	Year int
	Wins int
}

// ProfileMatch is a match seen from the profiled country: Venue is "Home" or
// "Away" and Score is "scored-conceded".
type ProfileMatch struct {
	Date     string
	Opponent string
	Venue    string
	Score    string
}

// CountryProfile agrega stats y partidos de una seleccion, opcionalmente
// acotados por rango de años.
type CountryProfile struct {
	Country     string
	Region      string
	SubRegion   *string
	Continent   *string
	Population  *int64
	Area        *int64
	Stats       ProfileStats
	WinsPerYear []YearWins
	// Matches es nil cuando el backend no manda la lista.
	Matches []ProfileMatch
}

// CountryMatch es el shape de /countries/{id}/matches.
type CountryMatch struct {
	MatchDate  string
	Opponent   string
	Score      string
	Home       bool
	Tournament string
	City       string
}

type TeamGoals struct {
	TeamID int
	Goals  int
}

type YearMatch struct {
	Date       string
	Home       string
	Away       string
	Score      string
	Tournament string
}

type YearStats struct {
	Year         int
	TotalMatches int
	TopTeams     []TeamGoals
	Matches      []YearMatch
}

type CountryWins struct {
	Country string
	Wins    int
}

type CountryPoints struct {
	Country string
	Points  int
}

type CountryGoals struct {
	Country string
	Goals   int
}

type PopulationPoint struct {
	Country    string
	Wins       int
	Population int64
}

type AreaPoint struct {
	Country  string
	Wins     int
	AreaSqKm int64
}

type NormalizedWins struct {
	Country     string
	WinsPerYear float64
}

// GlobalStats trae los leaderboards top-10 y los datasets de scatter.
// Las listas opcionales quedan vacias si el backend no las calcula.
type GlobalStats struct {
	Top10Wins           []CountryWins
	Top10Points         []CountryPoints
	Top10Goals          []CountryGoals
	PopulationScatter   []PopulationPoint
	AreaScatter         []AreaPoint
	Top10NormalizedWins []NormalizedWins
}

type Player struct {
	ID          int
	Name        string
	CountryID   *int
	CountryName *string
}

type YearRange struct {
	From int
	To   int
}

type ScorerYear struct {
	Year              int
	PlayerGoals       int
	TeamGoalsPerMatch *float64
}

type ScorerProfile struct {
	Player                   string
	Country                  *string
	ActiveYears              *YearRange
	TotalGoals               int
	MaxGoalsInMatch          int
	TeamGoalsPerMatchOverall *float64
	YearlyStats              []ScorerYear
}
