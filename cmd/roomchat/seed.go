package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourusername/roomchat/internal/protocol"
)

func newSeedCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Show the seed room and its participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(flags, false)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Room: %s\n", a.result.Room.Name)
			fmt.Fprintf(out, "Seed comments: %d\n\n", len(a.result.Comments))

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tROLE")
			for _, p := range a.result.Room.Participants {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, roleName(p.Role))
			}
			return tw.Flush()
		},
	}
}

func roleName(r protocol.ParticipantRole) string {
	switch r {
	case protocol.RoleAgent:
		return "agent"
	case protocol.RoleLocalUser:
		return "you"
	default:
		return "other"
	}
}
