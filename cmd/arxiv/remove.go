package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv/internal/catalog"
	"github.com/pdiddy/arxiv/pkg/types"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <versioned-id>...",
		Short: "Remove saved manuscript versions from the local catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Open(types.CatalogConfig{Path: a.v.GetString("catalog")})
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			var failed int
			for _, id := range args {
				if err := store.Delete(cmd.Context(), id); err != nil {
					fmt.Fprintf(out, "failed:  %s (%v)\n", id, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "removed: %s\n", id)
			}
			if failed > 0 {
				return fmt.Errorf("%d manuscript(s) not removed", failed)
			}
			return nil
		},
	}
}
