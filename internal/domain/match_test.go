package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		in         string
		home, away int
		ok         bool
	}{
		{"2-1", 2, 1, true},
		{" 0 - 0 ", 0, 0, true},
		{"10-3", 10, 3, true},
		{"", 0, 0, false},
		{"2:1", 0, 0, false},
		{"a-1", 0, 0, false},
		{"1-", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, a, ok := ParseScore(tt.in)
			if h != tt.home || a != tt.away || ok != tt.ok {
				t.Errorf("ParseScore(%q) = %d, %d, %v; want %d, %d, %v", tt.in, h, a, ok, tt.home, tt.away, tt.ok)
			}
		})
	}
}

func TestCountryMatchRecords(t *testing.T) {
	in := []CountryMatch{
		{MatchDate: "2018-06-17", Opponent: "Mexico", Score: "0-1", Home: true, Tournament: "FIFA World Cup"},
		{MatchDate: "2018-06-22", Opponent: "Serbia", Score: "1-2", Home: false, Tournament: "FIFA World Cup"},
	}
	want := []MatchRecord{
		{Date: "2018-06-17", HomeTeam: "Germany", AwayTeam: "Mexico", HomeScore: 0, AwayScore: 1, Tournament: "FIFA World Cup"},
		{Date: "2018-06-22", HomeTeam: "Serbia", AwayTeam: "Germany", HomeScore: 1, AwayScore: 2, Tournament: "FIFA World Cup"},
	}
	if diff := cmp.Diff(want, CountryMatchRecords("Germany", in)); diff != "" {
		t.Errorf("CountryMatchRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestYearMatchRecords_BadScore(t *testing.T) {
	got := YearMatchRecords([]YearMatch{{Date: "2022-11-20", Home: "Qatar", Away: "Ecuador", Score: "None-None"}})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].TotalGoals() != 0 {
		t.Errorf("expected 0 goals for unparsable score, got %d", got[0].TotalGoals())
	}
	if got[0].HomeTeam != "Qatar" || got[0].AwayTeam != "Ecuador" {
		t.Errorf("unexpected teams: %+v", got[0])
	}
}
