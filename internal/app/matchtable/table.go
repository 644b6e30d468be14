// Package matchtable derives the visible page of a match table from the raw
// records and the table's UI state (team filter, sort key and page number).
package matchtable

import (
	"sort"
	"strings"

	"github.com/jose-valero/whybother-dashboard/internal/domain"
)

// PageSize is the fixed number of rows per page.
const PageSize = 10

type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByScore SortKey = "score"
)

// ParseSortKey maps a query value to a SortKey; anything unknown sorts by date.
func ParseSortKey(s string) SortKey {
	if SortKey(strings.ToLower(strings.TrimSpace(s))) == SortByScore {
		return SortByScore
	}
	return SortByDate
}

// State is the table's UI state as carried in the query string.
type State struct {
	Filter string
	Sort   SortKey
	Page   int
}

// Page is the derived view handed to the renderer.
type Page struct {
	Rows       []domain.MatchRecord
	Page       int
	TotalPages int
	// Total cuenta las filas que pasaron el filtro.
	Total int
	State State
}

func (p Page) HasPrev() bool { return p.Page > 1 }
func (p Page) HasNext() bool { return p.Page < p.TotalPages }
func (p Page) PrevPage() int { return Prev(p.Page, p.TotalPages) }
func (p Page) NextPage() int { return Next(p.Page, p.TotalPages) }

// Filter keeps the records whose home or away team contains term, ignoring
// case. A blank term returns every record.
func Filter(ms []domain.MatchRecord, term string) []domain.MatchRecord {
	out := make([]domain.MatchRecord, 0, len(ms))
	term = strings.TrimSpace(term)
	if term == "" {
		return append(out, ms...)
	}
	term = strings.ToLower(term)
	for _, m := range ms {
		if strings.Contains(strings.ToLower(m.HomeTeam), term) ||
			strings.Contains(strings.ToLower(m.AwayTeam), term) {
			out = append(out, m)
		}
	}
	return out
}

// Sort returns a sorted copy. Date sorts newest first with unparsable dates
// last; score sorts by total goals, highest first. Ties keep input order.
func Sort(ms []domain.MatchRecord, key SortKey) []domain.MatchRecord {
	out := append([]domain.MatchRecord(nil), ms...)
	switch key {
	case SortByScore:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalGoals() > out[j].TotalGoals()
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			ti, okI := ParseDate(out[i].Date)
			tj, okJ := ParseDate(out[j].Date)
			switch {
			case okI && okJ:
				return ti.After(tj)
			case okI != okJ:
				return okI
			}
			return false
		})
	}
	return out
}

// TotalPages is ceil(n / PageSize).
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Clamp keeps page inside [1, totalPages]. With no pages the table stays on 1.
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Prev is a no-op on the first page.
func Prev(page, totalPages int) int { return Clamp(page-1, totalPages) }

// Next is a no-op on the last page.
func Next(page, totalPages int) int { return Clamp(page+1, totalPages) }

// View filters, sorts and slices ms according to st. ms is not modified.
func View(ms []domain.MatchRecord, st State) Page {
	rows := Sort(Filter(ms, st.Filter), ParseSortKey(string(st.Sort)))
	total := TotalPages(len(rows))
	page := Clamp(st.Page, total)

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	st.Sort = ParseSortKey(string(st.Sort))
	st.Page = page
	return Page{
		Rows:       rows[start:end],
		Page:       page,
		TotalPages: total,
		Total:      len(rows),
		State:      st,
	}
}
