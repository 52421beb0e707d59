package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hashgen/internal/app"
	"hashgen/internal/version"
)

// cli carries state shared by the root command and its subcommands.
type cli struct {
	log        *slog.Logger
	v          *viper.Viper
	configFile string
	wire       *app.Wire
}

// Execute runs the hashgen command tree against os.Args.
func Execute(log *slog.Logger) error {
	return NewRootCmd(log).Execute()
}

// NewRootCmd builds the command tree. A nil logger falls back to
// slog.Default().
func NewRootCmd(log *slog.Logger) *cobra.Command {
	if log == nil {
		log = slog.Default()
	}
	c := &cli{log: log, v: viper.New()}

	root := &cobra.Command{
		Use:     "hashgen [emails.txt]",
		Short:   "Hash student usernames for a test fixture",
		Long:    "Hash the cleaned usernames of a student email roster with SHA-256 so the fixture can be committed without the raw emails.",
		Version: version.Detailed(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(c.v, c.configFile)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, c.log)
			if err != nil {
				return err
			}
			c.wire = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return c.generate(cmd, args)
		},
	}

	flags := root.PersistentFlags()
	flags.SortFlags = false
	flags.StringVarP(&c.configFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.StringP(app.KeyOutput, "o", "", "hash file to write (default email_hashes.txt)")
	flags.String(app.KeyVarName, "", "list variable name (default valid_hashes)")
	flags.String(app.KeyLabel, "", "assignment named in the file header (default \"DS217 Assignment 01\")")
	flags.StringP(app.KeyAlgorithm, "a", "", "digest: sha256, sha3-256 or blake2b-256 (default sha256)")
	for _, key := range []string{app.KeyOutput, app.KeyVarName, app.KeyLabel, app.KeyAlgorithm} {
		_ = c.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(checkCmd(c), versionCmd())
	return root
}
