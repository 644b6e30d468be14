package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jose-valero/whybother-dashboard/internal/app/matchtable"
	"github.com/jose-valero/whybother-dashboard/internal/app/service"
)

var (
	matchesYear    string
	matchesCountry string
	matchesFilter  string
	matchesSort    string
	matchesPage    int
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Print one page of a year's or a country's match table",
	Example: `  whybother matches --year 2022 --sort score
  whybother matches --country 7 --filter bra --page 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (matchesYear == "") == (matchesCountry == "") {
			return errors.New("pass exactly one of --year or --country")
		}
		d := service.NewDashboard(newAPIClient(), nil, logger.Named("service"))
		st := matchtable.State{
			Filter: matchesFilter,
			Sort:   matchtable.ParseSortKey(matchesSort),
			Page:   matchesPage,
		}

		var page matchtable.Page
		if matchesYear != "" {
			data, err := d.YearStats(cmd.Context(), matchesYear, st)
			if err != nil {
				return err
			}
			page = data.Table
		} else {
			data, err := d.CountryMatches(cmd.Context(), matchesCountry, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", data.Country.Name)
			page = data.Table
		}
		return printTable(cmd.OutOrStdout(), page)
	},
}

func init() {
	f := matchesCmd.Flags()
	f.StringVar(&matchesYear, "year", "", "year to list")
	f.StringVar(&matchesCountry, "country", "", "country id to list")
	f.StringVar(&matchesFilter, "filter", "", "team name substring")
	f.StringVar(&matchesSort, "sort", "date", "date or score")
	f.IntVar(&matchesPage, "page", 1, "page number")
}

func printTable(w io.Writer, p matchtable.Page) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tHOME\tAWAY\tSCORE\tTOURNAMENT")
	for _, m := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d - %d\t%s\n",
			matchtable.FormatDate(m.Date), m.HomeTeam, m.AwayTeam, m.HomeScore, m.AwayScore, m.Tournament)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pages := p.TotalPages
	if pages == 0 {
		pages = 1
	}
	_, err := fmt.Fprintf(w, "\npage %d of %d (%d matches)\n", p.Page, pages, p.Total)
	return err
}
