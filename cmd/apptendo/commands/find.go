package commands

import (
	"fmt"
	"strings"

	"apptendo/lib/productsearch"
	"apptendo/lib/productstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var findLimit *int

func init() {
	findLimit = findCmd.Flags().IntP("count", "n", 10, "The maximum number of matches to show.")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <query> [-n <count>]",
	Short: "Searches the JSON cache for products with a name similar to the query.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getGlobals(cmd.Context()).Config
		store := productstore.Load(cfg.JsonFile)

		matches := productsearch.Rank(strings.Join(args, " "), store.Records(), *findLimit)
		if len(matches) == 0 {
			fmt.Println("No matching products.")
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Release date", "Category", "Similarity"})
		for _, m := range matches {
			t.AppendRow(table.Row{
				m.Name,
				m.ReleaseDate,
				m.CategoryLabel(),
				fmt.Sprintf("%.2f", m.Similarity),
			})
		}
		t.Render()
	},
}
