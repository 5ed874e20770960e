package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/matcher"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the rhythm filter tokens",
	Long:  "List the convenience rhythm tokens accepted by --rhythm and their patterns",
	Args:  cobra.NoArgs,
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().StringVar(&tokensFormat, "format", formatTable, "Output format: table, json")
}

// tokenInfo is the JSON form of a rhythm token.
type tokenInfo struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Description string `json:"description,omitempty"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	if err := checkFormat(tokensFormat); err != nil {
		return err
	}

	tokens := matcher.Default().Tokens()
	infos := make([]tokenInfo, len(tokens))
	for i, t := range tokens {
		infos[i] = tokenInfo{Name: t.Name, Pattern: t.Pattern, Description: t.Description}
	}

	out := cmd.OutOrStdout()
	if tokensFormat == formatJSON {
		return writeJSON(out, infos)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tPATTERN\tDESCRIPTION")
	for _, t := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Pattern, orDash(t.Description))
	}
	return w.Flush()
}
