package domain

import (
	"strconv"
	"strings"
)

// MatchRecord is one row of the match table.
type MatchRecord struct {
	Date       string
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Tournament string
}

// TotalGoals is the score sort key.
func (m MatchRecord) TotalGoals() int { return m.HomeScore + m.AwayScore }

// ParseScore splits a "home-away" score string. ok is false when either side
// is not an integer.
func ParseScore(s string) (home, away int, ok bool) {
	h, a, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return 0, 0, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

// YearMatchRecords maps the year listing into table rows. Unparsable scores
// count as 0-0.
func YearMatchRecords(ms []YearMatch) []MatchRecord {
	out := make([]MatchRecord, 0, len(ms))
	for _, m := range ms {
		h, a, _ := ParseScore(m.Score)
		out = append(out, MatchRecord{
			Date:       m.Date,
			HomeTeam:   m.Home,
			AwayTeam:   m.Away,
			HomeScore:  h,
			AwayScore:  a,
			Tournament: m.Tournament,
		})
	}
	return out
}

// CountryMatchRecords maps /countries/{id}/matches into table rows. The
// backend reports the score as home-away regardless of side, so only the team
// columns depend on Home.
func CountryMatchRecords(country string, ms []CountryMatch) []MatchRecord {
	out := make([]MatchRecord, 0, len(ms))
	for _, m := range ms {
		h, a, _ := ParseScore(m.Score)
		r := MatchRecord{
			Date:       m.MatchDate,
			HomeTeam:   country,
			AwayTeam:   m.Opponent,
			HomeScore:  h,
			AwayScore:  a,
			Tournament: m.Tournament,
		}
		if !m.Home {
			r.HomeTeam, r.AwayTeam = m.Opponent, country
		}
		out = append(out, r)
	}
	return out
}
