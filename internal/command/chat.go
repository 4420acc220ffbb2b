package command

import (
	"fmt"

	"github.com/astrochat/astrochat/internal/chat"
	"github.com/astrochat/astrochat/internal/config"
	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/db"
	"github.com/astrochat/astrochat/internal/interact"
	"github.com/astrochat/astrochat/internal/logging"
	"github.com/astrochat/astrochat/internal/store"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat mode",
		Args:  cobra.NoArgs,
		RunE:  runChat,
	}
	addChatFlags(cmd)
	return cmd
}

func addChatFlags(cmd *cobra.Command) {
	cmd.Flags().String("session", "", "YAML session file (title, subtitle, messages)")
	cmd.Flags().String("transcript", "", "append the conversation to this JSONL file")
	cmd.Flags().Bool("resume", false, "continue the conversation stored in --transcript")
	cmd.Flags().String("ratings-db", "", "store session ratings in this SQLite database")
	cmd.Flags().String("log-file", "", "write logs here (default $TMPDIR/astrochat.log)")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	cmd.Flags().String("lang", "", "label language (en, hi)")
	cmd.Flags().String("tz", "", "IANA time zone for message times")
	cmd.Flags().Float64("units-per-cell", 0, "gesture units per terminal cell of mouse drag")
}

func runChat(cmd *cobra.Command, _ []string) error {
	if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
		return writeCommandError(cmd, errors.New("--json not supported for interactive chat"))
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	logger, logFile, err := logging.Setup(cfg.LogFile, cfg.Debug)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	defer logFile.Close()

	loc, err := cfg.Location()
	if err != nil {
		return writeCommandError(cmd, err)
	}
	session, err := config.LoadSession(cfg.SessionFile)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	ids, err := core.NewSnowflakeIDs(cfg.NodeID)
	if err != nil {
		return writeCommandError(cmd, err)
	}

	resume, _ := cmd.Flags().GetBool("resume")
	if resume && cfg.TranscriptPath == "" {
		return writeCommandError(cmd, errors.New("--resume needs --transcript"))
	}

	storeOpts := []store.Option{store.WithLogger(logger)}
	var sinks interact.MultiSink
	var transcript *db.Transcript
	initial := session.Messages
	resumed := false
	if cfg.TranscriptPath != "" {
		if resume {
			contents, err := db.ReadTranscript(cfg.TranscriptPath)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if len(contents.Messages) > 0 {
				initial = contents.Messages
				resumed = true
			}
		}
		transcript = db.NewTranscript(cfg.TranscriptPath, logger)
		storeOpts = append(storeOpts, store.WithObserver(transcript))
		sinks = append(sinks, transcript)
	}
	if cfg.RatingsDB != "" {
		conn, err := db.OpenDatabase(cfg.RatingsDB)
		if err != nil {
			return writeCommandError(cmd, err)
		}
		defer conn.Close()
		sinks = append(sinks, db.NewRatingStore(conn))
	}

	var st *store.Store
	if resumed {
		st = store.New(initial, storeOpts...)
	} else {
		// Reset records the starting conversation in the transcript
		st = store.New(nil, storeOpts...)
		st.Reset(initial)
	}

	var sink interact.RatingSink
	if len(sinks) > 0 {
		sink = sinks
	}
	logger.Info("chat starting",
		"title", session.Title,
		"messages", st.Snapshot().Len(),
		"resumed", resumed,
		"transcript", cfg.TranscriptPath,
		"ratings_db", cfg.RatingsDB,
	)

	err = chat.Run(chat.Options{
		Context:      cmd.Context(),
		Store:        st,
		Title:        session.Title,
		Subtitle:     session.Subtitle,
		Lang:         cfg.Lang,
		Location:     loc,
		UnitsPerCell: cfg.UnitsPerCell,
		IDs:          ids,
		Sink:         sink,
		Logger:       logger,
	})
	if err != nil {
		return writeCommandError(cmd, err)
	}
	if transcript != nil && transcript.Err() != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: transcript %s incomplete: %v\n", transcript.Path(), transcript.Err())
	}
	return nil
}
