package commands

import (
	"os"

	"apptendo/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the products stored in the database.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getGlobals(cmd.Context()).Config
		mirror, closeDB := openMirror(cfg)
		defer closeDB()

		err := mirror.EnsureSchema(cmd.Context())
		if err != nil {
			closeDB()
			serviceutil.Fatal("failed to prepare db", err)
		}
		products, err := mirror.ListProducts(cmd.Context())
		if err != nil {
			closeDB()
			serviceutil.Fatal("failed to list products", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name", "Release date", "Category"})
		for _, p := range products {
			t.AppendRow(table.Row{p.ID, p.Name, p.ReleaseDate, p.Category})
		}
		t.AppendFooter(table.Row{"", "", "Total", len(products)})
		t.Render()
	},
}
