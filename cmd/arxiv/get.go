package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv/internal/render"
)

func newGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <identifier>",
		Short: "Fetch one manuscript's metadata",
		Long: `Get looks up a manuscript by arXiv identifier ("1202.0819", "arXiv:1202.0819v2",
"math/0510097", or an abstract page URL) and prints its metadata. Unversioned
identifiers resolve to the latest version.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			asYAML, _ := cmd.Flags().GetBool("yaml")
			if asJSON && asYAML {
				return fmt.Errorf("--json and --yaml are mutually exclusive")
			}

			m, err := a.client().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return render.JSON(out, render.View(m))
			case asYAML:
				return render.YAML(out, render.View(m))
			default:
				render.Manuscript(out, m)
				return nil
			}
		},
	}
	cmd.Flags().Bool("json", false, "output as JSON")
	cmd.Flags().Bool("yaml", false, "output as YAML")
	return cmd
}
