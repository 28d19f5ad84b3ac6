package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv/internal/catalog"
	"github.com/pdiddy/arxiv/internal/render"
	"github.com/pdiddy/arxiv/pkg/types"
)

const listTitleWidth = 60

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manuscripts in the local catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := catalog.ListOptions{}
			opts.Category, _ = cmd.Flags().GetString("category")
			opts.Query, _ = cmd.Flags().GetString("query")
			opts.MaxResults, _ = cmd.Flags().GetInt("max-results")

			store, err := catalog.Open(types.CatalogConfig{Path: a.v.GetString("catalog")})
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return render.JSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No manuscripts found.")
				return nil
			}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{
					e.VersionedID,
					e.PrimaryCategory,
					e.UpdatedAt.Format("2006-01-02"),
					e.Title,
				}
			}
			render.Table(out, []string{"ID", "Category", "Updated", "Title"}, rows, listTitleWidth)
			fmt.Fprintf(out, "\n%d manuscripts\n", len(entries))
			return nil
		},
	}
	cmd.Flags().String("category", "", "only manuscripts in this category")
	cmd.Flags().String("query", "", "only titles containing this text")
	cmd.Flags().Int("max-results", 50, "maximum number of entries (negative for all)")
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}
