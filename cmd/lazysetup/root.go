package lazysetup

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/lazysetup/internal/version"
	"github.com/arthur-debert/lazysetup/pkg/filesystem"
	"github.com/arthur-debert/lazysetup/pkg/git"
	"github.com/arthur-debert/lazysetup/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// deps are the seams commands run against
type deps struct {
	// cloner overrides the configured git binary when set
	cloner git.Cloner
	fs     filesystem.FS
	out    io.Writer
}

// globalFlags are shared by all subcommands
type globalFlags struct {
	verbosity  int
	configFile string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{fs: filesystem.NewOS(), out: os.Stdout})
}

func newRootCmd(d deps) *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "lazysetup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetOut(d.out)

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(d, flags))
	rootCmd.AddCommand(newUpdateCmd(d, flags))
	rootCmd.AddCommand(newDeleteCmd(d, flags))
	rootCmd.AddCommand(newListCmd(d, flags))
	rootCmd.AddCommand(newInitCmd(d, flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
