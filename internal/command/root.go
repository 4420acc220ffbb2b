package command

import (
	"os"

	"github.com/spf13/cobra"
)

const AppName = "astrochat"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Astrochat - terminal chat with your astrologer",
		Long:          "Astrochat is a terminal chat client for astrology consultations with AI and human astrologers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runChat,
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().String("env-file", "", "load environment from this file instead of .env")
	cmd.PersistentFlags().Bool("json", false, "output in JSON format")
	addChatFlags(cmd)

	cmd.AddCommand(
		NewChatCmd(),
		NewTranscriptCmd(),
		NewRatingsCmd(),
		NewVersionCmd(version),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}
