package command

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/astrochat/astrochat/internal/db"
	"github.com/astrochat/astrochat/internal/interact"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewRatingsCmd creates the ratings command.
func NewRatingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratings",
		Short: "List stored session ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if cfg.RatingsDB == "" {
				return writeCommandError(cmd, errors.New("no ratings database: pass --ratings-db or set ASTROCHAT_RATINGS_DB"))
			}
			last, _ := cmd.Flags().GetInt("last")
			if last < 0 {
				return writeCommandError(cmd, errors.New("--last must be >= 0"))
			}
			session, _ := cmd.Flags().GetString("for")

			conn, err := db.OpenDatabase(cfg.RatingsDB)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer conn.Close()
			ratingStore := db.NewRatingStore(conn)

			ctx := cmd.Context()
			ratings, err := ratingStore.ListRatings(ctx, last)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			out := cmd.OutOrStdout()
			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return json.NewEncoder(out).Encode(ratings)
			}
			if len(ratings) == 0 {
				fmt.Fprintln(out, "No ratings yet")
				return nil
			}
			for _, r := range ratings {
				stars := strings.Repeat("★", r.Stars) + strings.Repeat("☆", interact.MaxStars-r.Stars)
				fmt.Fprintf(out, "%s  %-24s %s\n", stars, r.Session, humanize.Time(time.UnixMilli(r.SubmittedAt)))
			}

			avg, count, err := ratingStore.AverageStars(ctx, session)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			label := "all sessions"
			if session != "" {
				label = session
			}
			fmt.Fprintf(out, "\nAverage %.1f over %s for %s\n", avg, humanize.Comma(int64(count))+" "+plural(count, "rating"), label)
			return nil
		},
	}

	cmd.Flags().String("ratings-db", "", "SQLite ratings database")
	cmd.Flags().Int("last", 20, "show the most recent N ratings (0 for all)")
	cmd.Flags().String("for", "", "average only this session title")
	return cmd
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
