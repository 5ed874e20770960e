package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/search"
)

var (
	searchRegions     []string
	searchInstruments []string
	searchGenres      []string
	searchFamilies    []string
	searchHereditary  bool
	searchTempo       string
	searchScale       string
	searchLimit       int
	searchFormat      string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank regions against a free-text query",
	Long: `Score every region against a fuzzy free-text query and narrow the results
with facet filters. Without a query every region passing the filters is listed.`,
	Example: `  swaramap search desert
  swaramap search --instrument dhol --hereditary
  swaramap search temple --family Dravidian --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchRegions, "region", nil, "Restrict to region IDs")
	searchCmd.Flags().StringSliceVar(&searchInstruments, "instrument", nil, "Require any of these instruments")
	searchCmd.Flags().StringSliceVar(&searchGenres, "genre", nil, "Require any of these genres")
	searchCmd.Flags().StringSliceVar(&searchFamilies, "family", nil, "Require any of these linguistic families")
	searchCmd.Flags().BoolVar(&searchHereditary, "hereditary", false, "Only regions with a hereditary tradition")
	searchCmd.Flags().StringVar(&searchTempo, "tempo", "", "Require this tempo label")
	searchCmd.Flags().StringVar(&searchScale, "scale", "", "Require this scale type")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results (0 for all)")
	searchCmd.Flags().StringVar(&searchFormat, "format", formatTable, "Output format: table, json")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := checkFormat(searchFormat); err != nil {
		return err
	}
	if searchLimit < 0 {
		return fmt.Errorf("limit must not be negative: %d", searchLimit)
	}
	env, err := openEnv(commandContext(cmd), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	f := search.Filters{
		Regions:            searchRegions,
		Instruments:        searchInstruments,
		Genres:             searchGenres,
		LinguisticFamilies: searchFamilies,
		HereditaryOnly:     searchHereditary,
		Tempo:              searchTempo,
		ScaleType:          searchScale,
	}
	if len(args) > 0 {
		f.Query = args[0]
	}

	results := env.core.Search(f)
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	out := cmd.OutOrStdout()
	if searchFormat == formatJSON {
		return writeJSON(out, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No regions found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCORE\tMATCHED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n",
			r.Region.ID, r.Region.Name, r.Score, orDash(strings.Join(r.MatchedFields, ", ")))
	}
	return w.Flush()
}
