package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv/internal/catalog"
	"github.com/pdiddy/arxiv/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the local catalog as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			format, err := catalog.ParseFormat(formatName)
			if err != nil {
				return err
			}
			outPath, _ := cmd.Flags().GetString("out")
			category, _ := cmd.Flags().GetString("category")

			store, err := catalog.Open(types.CatalogConfig{Path: a.v.GetString("catalog")})
			if err != nil {
				return err
			}
			defer store.Close()

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			n, err := store.Export(cmd.Context(), w, format, catalog.ListOptions{Category: category, MaxResults: -1})
			if err != nil {
				return err
			}
			a.log.Info("exported catalog", zap.Int("manuscripts", n), zap.String("format", string(format)))
			if outPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d manuscripts to %s\n", n, outPath)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "yaml", "export format: yaml or json")
	cmd.Flags().String("out", "", "output file (default: stdout)")
	cmd.Flags().String("category", "", "only manuscripts in this category")
	return cmd
}
