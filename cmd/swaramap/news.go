package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/types"
)

var (
	newsRegion   string
	newsCategory string
	newsUpcoming bool
	newsLimit    int
	newsFormat   string
)

// now is replaced in tests.
var now = time.Now

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List musical events and announcements",
	Long:  "List news items, featured first, then by date",
	Args:  cobra.NoArgs,
	RunE:  runNews,
}

func init() {
	newsCmd.Flags().StringVar(&newsRegion, "region", "", "Only news for this region ID")
	newsCmd.Flags().StringVar(&newsCategory, "category", "", "Only this category: festival, concert, award, cultural-event, workshop, release")
	newsCmd.Flags().BoolVar(&newsUpcoming, "upcoming", false, "Drop events that have already ended")
	newsCmd.Flags().IntVar(&newsLimit, "limit", 0, "Maximum items (0 for all)")
	newsCmd.Flags().StringVar(&newsFormat, "format", formatTable, "Output format: table, json")
}

func runNews(cmd *cobra.Command, args []string) error {
	if err := checkFormat(newsFormat); err != nil {
		return err
	}
	if newsLimit < 0 {
		return fmt.Errorf("limit must not be negative: %d", newsLimit)
	}
	env, err := openEnv(commandContext(cmd), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	f := catalog.NewsFilter{
		Region:   newsRegion,
		Category: types.NewsCategory(newsCategory),
		Limit:    newsLimit,
	}
	if newsUpcoming {
		f.UpcomingAt = now()
	}
	items := env.core.News(f)

	out := cmd.OutOrStdout()
	if newsFormat == formatJSON {
		return writeJSON(out, items)
	}

	if len(items) == 0 {
		fmt.Fprintln(out, "No news.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tREGION\tTITLE")
	for _, n := range items {
		title := n.Title
		if n.Featured {
			title = "* " + title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", orDash(n.Date), n.Category, n.Region, title)
	}
	return w.Flush()
}
