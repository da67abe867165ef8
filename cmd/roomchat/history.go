package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yourusername/roomchat/internal/client/render"
	"github.com/yourusername/roomchat/internal/room"
)

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the room log as chat bubbles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(flags, false)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			styles, width := outputStyle(out, plain)
			printHistory(out, a.store, styles, width, time.Now())

			fmt.Fprintf(out, "\n%s messages • %s stored under %q\n",
				humanize.Comma(int64(a.store.Len())),
				humanize.Bytes(uint64(a.repo.LastSize())),
				a.repo.Key())
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors and borders")
	return cmd
}

// outputStyle styles bubbles only when writing to a terminal
func outputStyle(w io.Writer, plain bool) (render.Styles, int) {
	f, ok := w.(*os.File)
	if !ok || plain || !term.IsTerminal(int(f.Fd())) {
		return render.PlainStyles(), 80
	}
	width := 80
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		width = cols
	}
	return render.DefaultStyles(), width
}

func printHistory(w io.Writer, store *room.Store, styles render.Styles, width int, now time.Time) {
	messages := store.LoadInitial()
	if len(messages) == 0 {
		fmt.Fprintln(w, "No messages yet.")
		return
	}
	for _, msg := range messages {
		name := ""
		if p, ok := store.ResolveParticipant(msg.Sender); ok {
			name = p.Name
		}
		bubble := render.Bubble{
			Message: msg,
			Name:    name,
			Local:   store.IsLocalUser(msg.Sender),
			// no probing outside the UI; show image links as they are
			Image: render.ImageLoaded,
			Now:   now,
			Width: width,
		}
		fmt.Fprintln(w, bubble.Render(styles))
		fmt.Fprintln(w)
	}
}
