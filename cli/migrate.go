package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"menu-explainer/store/sqlstore"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := sqlstore.Open(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("db: %w", err)
			}
			defer st.Close()

			if err := st.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied (%s).\n", st.Driver())
			return nil
		},
	}
}
