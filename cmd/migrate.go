package cmd

import (
	"fmt"

	"github.com/foomo/keel/log"
	"github.com/foomo/showcase/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewMigrateCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema migrations to a PostgreSQL store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.Logger()

			if listFlag, _ := cmd.Flags().GetBool("list"); listFlag {
				names, err := store.Migrations()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Println(name)
				}
				return nil
			}

			if storeDSNFlag(v) == "" {
				return errors.New("store dsn is required")
			}
			s, err := store.NewPostgres(cmd.Context(), l, storeDSNFlag(v))
			if err != nil {
				return err
			}
			defer s.Close()

			applied, err := s.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			l.Info("migrations done", zap.Strings("applied", applied))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Bool("list", false, "List the embedded migrations and exit")
	addStoreDSNFlag(flags, v)

	return cmd
}
