package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/types"
)

var (
	matchInstrument string
	matchRhythm     string
	matchExplain    bool
	matchFormat     string
	matchColor      string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find the regions matching an instrument query and a rhythm filter",
	Long: `Evaluate an instrument query and a rhythm filter against every region.

A region matches when any of its instruments contains the instrument query,
or when the rhythm filter appears in its rhythmic system, tempo or talas.
The rhythm filter may also be a convenience token (see "swaramap tokens").`,
	Example: `  swaramap match --instrument sarangi
  swaramap match --rhythm Fast --explain
  swaramap match --instrument dhol --rhythm "Complex talas" --format json`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchInstrument, "instrument", "i", "", "Instrument query (case-insensitive substring)")
	matchCmd.Flags().StringVarP(&matchRhythm, "rhythm", "r", "", "Rhythm filter: free text or a rhythm token")
	matchCmd.Flags().BoolVar(&matchExplain, "explain", false, "Show why each region matched")
	matchCmd.Flags().StringVar(&matchFormat, "format", formatTable, "Output format: table, json")
	matchCmd.Flags().StringVar(&matchColor, "color", "auto", "Color output: auto, always, never")
}

// matchReport is the JSON form of a match.
type matchReport struct {
	catalog.MatchOutcome
	Explanations []matcher.Explanation `json:"explanations,omitempty"`
}

func runMatch(cmd *cobra.Command, args []string) error {
	if err := checkFormat(matchFormat); err != nil {
		return err
	}
	env, err := openEnv(commandContext(cmd), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	q := types.MatchQuery{InstrumentQuery: matchInstrument, RhythmFilter: matchRhythm}
	outcome := env.core.Match(q)
	var explanations []matcher.Explanation
	if matchExplain {
		explanations = env.core.Explain(q)
	}

	out := cmd.OutOrStdout()
	if matchFormat == formatJSON {
		return writeJSON(out, matchReport{MatchOutcome: outcome, Explanations: explanations})
	}

	enabled, err := colorEnabled(matchColor, out)
	if err != nil {
		return err
	}
	s := newStyles(enabled)

	if !outcome.Active {
		fmt.Fprintln(out, "No query given; every region is shown neutral.")
		return nil
	}
	if len(outcome.IDs) == 0 {
		fmt.Fprintln(out, "No regions matched.")
		return nil
	}

	byID := make(map[string]matcher.Explanation, len(explanations))
	for _, e := range explanations {
		byID[e.RegionID] = e
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if matchExplain {
		fmt.Fprintln(w, "ID\tNAME\tMATCHED BECAUSE")
	} else {
		fmt.Fprintln(w, "ID\tNAME")
	}
	for _, id := range outcome.IDs {
		r, err := env.core.Region(id)
		if err != nil {
			return err
		}
		if matchExplain {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.id.Sprint(id), r.Name, describeExplanation(byID[id]))
		} else {
			fmt.Fprintf(w, "%s\t%s\n", s.id.Sprint(id), r.Name)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s %d of %d regions\n", s.heading.Sprint("Matched:"), len(outcome.IDs), len(env.core.Regions()))
	return nil
}

func describeExplanation(e matcher.Explanation) string {
	var reasons []string
	if len(e.Instruments) > 0 {
		reasons = append(reasons, "instrument "+strings.Join(e.Instruments, ", "))
	}
	if e.Literal {
		reasons = append(reasons, "rhythm text")
	}
	if e.Token != "" {
		reasons = append(reasons, "token "+e.Token)
	}
	if len(reasons) == 0 {
		return "-"
	}
	return strings.Join(reasons, "; ")
}
