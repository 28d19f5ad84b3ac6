package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv/internal/render"
	"github.com/pdiddy/arxiv/pkg/arxiv"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories [prefix]",
		Short: "List arXiv subject categories",
		Long: `Categories prints the subject classification table. With a prefix
(e.g. "astro-ph" or "cs."), only matching codes are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}

			var matched []arxiv.Category
			for _, c := range arxiv.Categories() {
				if strings.HasPrefix(c.Abbreviation, prefix) {
					matched = append(matched, c)
				}
			}
			if len(matched) == 0 {
				return fmt.Errorf("%w: no categories match %q", arxiv.ErrNotFound, prefix)
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return render.JSON(out, matched)
			}
			rows := make([][]string, len(matched))
			for i, c := range matched {
				rows[i] = []string{c.Abbreviation, c.Description}
			}
			render.Table(out, []string{"Code", "Description"}, rows, 0)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}
