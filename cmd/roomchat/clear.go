package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/roomchat/internal/storage"
)

func newClearCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored log so the next run starts from the seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(flags, true)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.repo.Clear(); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("clear %s: %w", a.repo.Key(), err)
			}
			a.log.Info().Str("key", a.repo.Key()).Msg("room_log_cleared")
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %q (%s)\n", a.repo.Key(), a.cfg.Backend())
			return nil
		},
	}
}
