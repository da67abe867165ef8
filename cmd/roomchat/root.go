package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yourusername/roomchat/internal/client/media"
	"github.com/yourusername/roomchat/internal/client/ui"
)

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "roomchat",
		Short: "Terminal chat view for a single support room",
		Long: `roomchat shows the conversation of one chat room, lets you send text
messages, and keeps the log on this machine between runs.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoom(flags)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&flags.seed, "seed", "", "seed dataset file (.json, .yaml or .yml)")
	pf.StringVar(&flags.storage, "storage", "", "storage backend: file, pebble, sqlite or memory")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory for the stored log and roomchat.log")
	pf.StringVar(&flags.key, "key", "", "storage slot key")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep the log in memory only")

	root.AddCommand(
		newHistoryCmd(flags),
		newClearCmd(flags),
		newSeedCmd(flags),
	)
	return root
}

// runRoom runs the room view on the alt screen
func runRoom(flags *globalFlags) error {
	a, err := bootstrap(flags, true)
	if err != nil {
		return err
	}
	defer a.close()

	model := ui.NewModel(a.store, ui.Options{
		Prober: a.prober(),
		Opener: media.SystemOpener{},
		Logger: &a.log,
		Sizer:  a.repo,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		a.log.Error().Err(err).Msg("ui_failed")
		return err
	}
	a.log.Info().Int("messages", a.store.Len()).Msg("app_stopped")
	return nil
}
