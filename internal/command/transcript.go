package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/db"
	"github.com/astrochat/astrochat/internal/interact"
	"github.com/astrochat/astrochat/internal/store"
	"github.com/astrochat/astrochat/internal/types"
	"github.com/astrochat/astrochat/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	transcriptMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	transcriptSenderStyle = lipgloss.NewStyle().Bold(true)
	transcriptReplyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// NewTranscriptCmd creates the transcript command.
func NewTranscriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript [path]",
		Short: "Print a saved conversation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			path := cfg.TranscriptPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return writeCommandError(cmd, errors.New("no transcript: pass a path or set ASTROCHAT_TRANSCRIPT"))
			}
			loc, err := cfg.Location()
			if err != nil {
				return writeCommandError(cmd, err)
			}

			contents, err := db.ReadTranscript(path)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			out := cmd.OutOrStdout()
			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return json.NewEncoder(out).Encode(contents.Messages)
			}
			if len(contents.Messages) == 0 {
				fmt.Fprintln(out, "No messages")
				return nil
			}
			snap := store.New(contents.Messages).Snapshot()
			views := view.Project(snap, core.DefaultReasons(), view.Options{
				Location:     loc,
				Localizer:    core.NewLocalizer(cfg.Lang),
				PreviewLines: 1,
			})
			for _, v := range views {
				writeTranscriptMessage(out, v)
			}
			if n := len(contents.Ratings); n > 0 {
				last := contents.Ratings[n-1]
				fmt.Fprintf(out, "\nRated %s (%d of %d)\n", strings.Repeat("★", last.Stars), last.Stars, interact.MaxStars)
			}
			return nil
		},
	}

	cmd.Flags().String("lang", "", "label language (en, hi)")
	cmd.Flags().String("tz", "", "IANA time zone for timestamps")
	return cmd
}

func writeTranscriptMessage(out io.Writer, v view.MessageView) {
	if v.Align == view.AlignCenter {
		fmt.Fprintf(out, "%s\n", transcriptMetaStyle.Render(fmt.Sprintf("── %s · %s ──", v.Text, v.Time)))
		return
	}
	header := fmt.Sprintf("%s %s", transcriptMetaStyle.Render("["+v.Time+"]"), transcriptSenderStyle.Render(v.SenderLabel))
	var marks []string
	if v.Reaction != "" {
		marks = append(marks, v.Reaction)
	}
	if v.ShowFeedback {
		switch v.Feedback {
		case types.FeedbackLiked:
			marks = append(marks, "👍")
		case types.FeedbackDisliked:
			mark := "👎"
			for _, chip := range v.Chips {
				if chip.Selected {
					mark += " " + chip.Label
				}
			}
			marks = append(marks, mark)
		}
	}
	if len(marks) > 0 {
		header += " " + strings.Join(marks, " ")
	}
	fmt.Fprintln(out, header)
	if v.Reply != nil {
		fmt.Fprintf(out, "  %s\n", transcriptReplyStyle.Render("↪ "+v.Reply.SenderLabel+": "+v.Reply.Text))
	}
	for _, line := range strings.Split(v.Text, "\n") {
		fmt.Fprintf(out, "  %s\n", line)
	}
}
