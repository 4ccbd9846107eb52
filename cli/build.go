package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"menu-explainer/importer"
	"menu-explainer/models"
	"menu-explainer/store/sqlstore"
)

func newBuildCmd() *cobra.Command {
	var (
		appendMode bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build the menu database from a JSON or YAML document",
		Long: "Drop and recreate the menu tables, then import every restaurant in the document. " +
			"With --append only the restaurants named in the document are replaced.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Building database from %s...\n", args[0])

			rs, err := parseDocument(args[0], importer.Format(format))
			if err != nil {
				return err
			}

			st, err := sqlstore.Open(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("db: %w", err)
			}
			defer st.Close()

			if appendMode {
				if err := st.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			sum, err := importer.Import(cmd.Context(), st, rs, importer.Options{Append: appendMode})
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			fmt.Fprintf(out, "Imported %d restaurants, %d sections, %d items (%d without price).\n",
				sum.Restaurants, sum.Sections, sum.Items, sum.Unpriced)
			fmt.Fprintln(out, "Database build complete!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&appendMode, "append", false, "Replace only the restaurants in the document, keep the rest")
	cmd.Flags().StringVar(&format, "format", "", "Document format: json or yaml (default: from file extension)")
	return cmd
}

func parseDocument(path string, format importer.Format) ([]models.Restaurant, error) {
	if format == importer.FormatAuto {
		return importer.ParseFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return importer.Parse(f, format)
}
