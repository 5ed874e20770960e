package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/stats"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show distributions over the regions",
	Long:  "Show instrument, tempo, genre, language, scale, vocal style and social context distributions",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", formatTable, "Output format: table, json")
}

func runStats(cmd *cobra.Command, args []string) error {
	if err := checkFormat(statsFormat); err != nil {
		return err
	}
	env, err := openEnv(commandContext(cmd), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	report := env.core.Stats()

	out := cmd.OutOrStdout()
	if statsFormat == formatJSON {
		return writeJSON(out, report)
	}

	sum := report.Summary
	fmt.Fprintf(out, "Regions: %d  Instruments: %d  Languages: %d  Communities: %d  Hereditary: %d\n",
		sum.Regions, sum.Instruments, sum.Languages, sum.Communities, sum.Hereditary)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "\nINSTRUMENT\tCATEGORY\tREGIONS")
	for _, b := range report.Instruments {
		fmt.Fprintf(w, "%s\t%s\t%d\n", b.Value, b.Category, b.Count)
	}
	printBuckets(w, "TEMPO", report.Tempos)
	printBuckets(w, "GENRE", report.Genres)
	printBuckets(w, "LINGUISTIC FAMILY", report.Linguistic)
	printCounts(w, "SCALE", report.Scales)
	printCounts(w, "VOCAL STYLE", report.VocalStyles)

	sc := report.SocialContext
	fmt.Fprintf(w, "\nHEREDITARY\t%d\n", sc.Hereditary)
	fmt.Fprintf(w, "NON-HEREDITARY\t%d\n", sc.NonHereditary)
	printCounts(w, "COMMUNITY", sc.Communities)
	printCounts(w, "PATRONAGE", sc.Patronage)

	return w.Flush()
}

func printBuckets(w io.Writer, heading string, buckets []stats.Bucket) {
	fmt.Fprintf(w, "\n%s\tREGIONS\n", heading)
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%d\n", b.Value, b.Count)
	}
}

func printCounts(w io.Writer, heading string, counts []stats.Count) {
	fmt.Fprintf(w, "\n%s\tCOUNT\n", heading)
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Value, c.Count)
	}
}
