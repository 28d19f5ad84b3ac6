package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv/internal/download"
	"github.com/pdiddy/arxiv/pkg/types"
)

func newDownloadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download <identifier>",
		Short: "Download a manuscript's PDF",
		Long: `Download looks up the manuscript and saves its PDF link to <dir>/<id>.pdf.
An existing file is not downloaded again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			m, err := a.client().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cfg := types.DownloadConfig{HTTPConfig: a.httpConfig(), Dir: dir}
			res, err := download.PDF(cmd.Context(), a.httpClient(), m, cfg, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintf(out, "skipped: %s (already exists)\n", res.Path)
				return nil
			}
			fmt.Fprintf(out, "downloaded: %s (%d bytes)\n", res.Path, res.Bytes)
			return nil
		},
	}
	cmd.Flags().String("dir", "papers", "directory for downloaded PDFs")
	return cmd
}
