package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv/internal/catalog"
	"github.com/pdiddy/arxiv/pkg/types"
)

func newSaveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <identifier>...",
		Short: "Fetch manuscripts and store them in the local catalog",
		Long: `Save looks up each identifier and upserts the result into the SQLite
catalog. It continues after individual failures and prints a summary.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delay, _ := cmd.Flags().GetDuration("delay")

			store, err := catalog.Open(types.CatalogConfig{Path: a.v.GetString("catalog")})
			if err != nil {
				return err
			}
			defer store.Close()

			client := a.client()
			out := cmd.OutOrStdout()
			var saved, updated, failed int
			for i, id := range args {
				if i > 0 && delay > 0 {
					time.Sleep(delay)
				}
				m, err := client.Get(cmd.Context(), id)
				if err != nil {
					a.log.Warn("lookup failed", zap.String("identifier", id), zap.Error(err))
					fmt.Fprintf(out, "failed:  %s (%v)\n", id, err)
					failed++
					continue
				}
				wasUpdated, err := store.Save(cmd.Context(), m)
				if err != nil {
					fmt.Fprintf(out, "failed:  %s (%v)\n", id, err)
					failed++
					continue
				}
				if wasUpdated {
					fmt.Fprintf(out, "updated: %s %s\n", m.VersionedID, m.Title)
					updated++
				} else {
					fmt.Fprintf(out, "saved:   %s %s\n", m.VersionedID, m.Title)
					saved++
				}
			}

			fmt.Fprintf(out, "\nSummary: %d saved, %d updated, %d failed (total: %d)\n",
				saved, updated, failed, len(args))
			if failed > 0 {
				return fmt.Errorf("%d manuscript(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().Duration("delay", 0, "pause between consecutive lookups (arXiv asks batch clients for 3s)")
	return cmd
}
