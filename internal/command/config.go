package command

import (
	"github.com/astrochat/astrochat/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var dotenv []string
	if path, _ := cmd.Flags().GetString("env-file"); path != "" {
		dotenv = append(dotenv, path)
	}
	cfg, err := config.Load(dotenv...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	stringFlags := map[string]*string{
		"session":    &cfg.SessionFile,
		"transcript": &cfg.TranscriptPath,
		"ratings-db": &cfg.RatingsDB,
		"log-file":   &cfg.LogFile,
		"lang":       &cfg.Lang,
		"tz":         &cfg.Timezone,
	}
	for name, target := range stringFlags {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}
	if flags.Lookup("debug") != nil && flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Lookup("units-per-cell") != nil && flags.Changed("units-per-cell") {
		cfg.UnitsPerCell, _ = flags.GetFloat64("units-per-cell")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
