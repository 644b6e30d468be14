package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarChart(t *testing.T) {
	svg, err := BarChart("Wins per Year", []Bar{{Label: "2018", Value: 5}, {Label: "2019", Value: 3}})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "2018")
}

func TestBarChartEqualValues(t *testing.T) {
	svg, err := BarChart("Flat", []Bar{{Label: "a", Value: 0}, {Label: "b", Value: 0}})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestChartsEmpty(t *testing.T) {
	_, err := BarChart("x", nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = LineChart("x", "", "", []Series{{Name: "empty"}})
	assert.ErrorIs(t, err, ErrNoData)
	_, err = ScatterChart("x", "", "", nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLineChartSinglePoint(t *testing.T) {
	svg, err := LineChart("Goals", "Year", "Goals", []Series{
		{Name: "player_goals", X: []float64{2010}, Y: []float64{4}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestLineChartTwoSeries(t *testing.T) {
	svg, err := LineChart("Goals", "Year", "Goals", []Series{
		{Name: "player_goals", X: []float64{2010, 2011, 2012}, Y: []float64{4, 2, 7}},
		{Name: "team_goals_per_match", X: []float64{2010, 2012}, Y: []float64{1.5, 2.25}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "player_goals")
	assert.Contains(t, string(svg), "team_goals_per_match")
}

func TestScatterChart(t *testing.T) {
	svg, err := ScatterChart("Wins vs Population", "Population", "Wins", []Point{
		{Label: "Brazil", X: 214e6, Y: 600},
		{Label: "Uruguay", X: 3.4e6, Y: 300},
	})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestPaddedRange(t *testing.T) {
	r := paddedRange(5, 5, false)
	assert.Less(t, r.Min, r.Max)
	r = paddedRange(0, 0, true)
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 1.0, r.Max)
	r = paddedRange(3, 10, true)
	assert.Equal(t, 0.0, r.Min)
}
