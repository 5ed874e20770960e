package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/search"
	"github.com/swaramap/swaramap/pkg/types"
)

var (
	regionsFormat     string
	regionsColor      string
	regionsInstrument string
	regionsRhythm     string
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List or show musical regions",
	Long:  "Inspect the regions of the loaded dataset",
}

var regionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all regions",
	Long:  "List every region with its emphasis for an optional query",
	Args:  cobra.NoArgs,
	RunE:  runRegionsList,
}

var regionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details for a region",
	Long:  "Show the instruments, rhythm, language, social context and artists of one region",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegionsShow,
}

func init() {
	regionsCmd.PersistentFlags().StringVar(&regionsFormat, "format", formatTable, "Output format: table, json")
	regionsCmd.PersistentFlags().StringVar(&regionsColor, "color", "auto", "Color output: auto, always, never")
	regionsCmd.PersistentFlags().StringVarP(&regionsInstrument, "instrument", "i", "", "Instrument query used for emphasis")
	regionsCmd.PersistentFlags().StringVarP(&regionsRhythm, "rhythm", "r", "", "Rhythm filter used for emphasis")

	regionsCmd.AddCommand(regionsListCmd)
	regionsCmd.AddCommand(regionsShowCmd)
}

func runRegionsList(cmd *cobra.Command, args []string) error {
	if err := checkFormat(regionsFormat); err != nil {
		return err
	}
	env, err := openEnv(commandContext(cmd), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	views := env.core.Emphasis(types.MatchQuery{InstrumentQuery: regionsInstrument, RhythmFilter: regionsRhythm})

	out := cmd.OutOrStdout()
	if regionsFormat == formatJSON {
		return writeJSON(out, views)
	}

	enabled, err := colorEnabled(regionsColor, out)
	if err != nil {
		return err
	}
	s := newStyles(enabled)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMPHASIS\tTEMPO\tINSTRUMENTS")
	for _, v := range views {
		r := v.Region
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			s.id.Sprint(r.ID),
			s.emphasize(r.Name, v.Emphasis),
			v.Emphasis,
			r.MusicalStructure.Tempo,
			len(r.Instruments.All()))
	}
	return w.Flush()
}

// regionDetail is the JSON form of regions show.
type regionDetail struct {
	*types.Region
	Emphasis types.Emphasis  `json:"emphasis"`
	Artists  []*types.Artist `json:"artists"`
}

func runRegionsShow(cmd *cobra.Command, args []string) error {
	if err := checkFormat(regionsFormat); err != nil {
		return err
	}
	env, err := openEnv(commandContext(cmd), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	r, err := env.core.Region(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", err, args[0])
	}
	artists, err := env.core.Artists(r.ID)
	if err != nil {
		return err
	}
	q := types.MatchQuery{InstrumentQuery: regionsInstrument, RhythmFilter: regionsRhythm}
	outcome := env.core.Match(q)
	emphasis := types.EmphasisFor(q, outcome.Result, r.ID)

	out := cmd.OutOrStdout()
	if regionsFormat == formatJSON {
		return writeJSON(out, regionDetail{Region: r, Emphasis: emphasis, Artists: artists})
	}

	enabled, err := colorEnabled(regionsColor, out)
	if err != nil {
		return err
	}
	s := newStyles(enabled)

	fmt.Fprintf(out, "%s (%s)\n", s.name.Sprint(r.Name), s.id.Sprint(r.ID))
	if r.Description != "" {
		fmt.Fprintf(out, "\n%s\n", r.Description)
	}
	if q.Active() {
		fmt.Fprintf(out, "\n%s %s\n", s.label.Sprint("Emphasis:"), s.emphasize(string(emphasis), emphasis))
	}

	fmt.Fprintf(out, "\n%s\n", s.heading.Sprint("Instruments"))
	printInstruments(out, s, "Melodic", r.Instruments.Melodic, regionsInstrument)
	printInstruments(out, s, "Rhythmic", r.Instruments.Rhythmic, regionsInstrument)
	printInstruments(out, s, "Unique", r.Instruments.Unique, regionsInstrument)

	ms := r.MusicalStructure
	fmt.Fprintf(out, "\n%s\n", s.heading.Sprint("Rhythm"))
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint("System:"), orDash(ms.RhythmicSystem))
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint("Tempo:"), orDash(ms.Tempo))
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint("Talas:"), joinOrDash(ms.Talas))

	fmt.Fprintf(out, "\n%s\n", s.heading.Sprint("Language"))
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint("Primary:"), joinOrDash(r.Language.Primary))
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint("Family:"), orDash(r.Language.LinguisticFamily))

	sc := r.SocialContext
	fmt.Fprintf(out, "\n%s\n", s.heading.Sprint("Social context"))
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint("Communities:"), joinOrDash(sc.MusicianCaste))
	fmt.Fprintf(out, "  %s %t\n", s.label.Sprint("Hereditary:"), sc.HereditaryTradition)
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint("Patronage:"), joinOrDash(sc.Patronage))

	if len(artists) > 0 {
		fmt.Fprintf(out, "\n%s\n", s.heading.Sprint("Artists"))
		for _, a := range artists {
			fmt.Fprintf(out, "  %s  %s\n", a.Name, s.dimmed.Sprint(strings.Join(a.Instruments, ", ")))
		}
	}
	return nil
}

func printInstruments(out io.Writer, s *styles, label string, names []string, query string) {
	if len(names) == 0 {
		return
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = s.highlightSpans(name, search.Highlight(name, query))
	}
	fmt.Fprintf(out, "  %s %s\n", s.label.Sprint(label+":"), strings.Join(parts, ", "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
