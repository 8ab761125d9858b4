package lazysetup

import (
	"fmt"

	"github.com/arthur-debert/lazysetup/internal/version"
	"github.com/arthur-debert/lazysetup/pkg/config"
	"github.com/arthur-debert/lazysetup/pkg/dispatcher"
	"github.com/arthur-debert/lazysetup/pkg/logging"
	"github.com/arthur-debert/lazysetup/pkg/paths"
	"github.com/arthur-debert/lazysetup/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newInstallCmd(d deps, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, d, flags, dispatcher.CommandInstall)
		},
	}
}

func newUpdateCmd(d deps, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, d, flags, dispatcher.CommandUpdate)
		},
	}
}

func newDeleteCmd(d deps, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "delete",
		Short:   MsgDeleteShort,
		Long:    MsgDeleteLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(d, flags)
			if err != nil {
				return err
			}
			layout, err := paths.Resolve()
			if err != nil {
				return err
			}

			result, err := dispatcher.Dispatch(cmd.Context(), dispatcher.CommandDelete, dispatcher.Options{
				Layout:     layout,
				FileSystem: d.fs,
			})
			if result != nil && result.Delete != nil {
				if rerr := renderer.Delete(result.Delete); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return err
			}
			printFinished(d, renderer)
			return nil
		},
	}
}

func newListCmd(d deps, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(d, flags)
			if err != nil {
				return err
			}
			cfg, layout, err := loadSetup(flags)
			if err != nil {
				return err
			}
			result, err := dispatcher.Dispatch(cmd.Context(), dispatcher.CommandList, dispatcher.Options{
				Config:     cfg,
				Layout:     layout,
				FileSystem: d.fs,
			})
			if err != nil {
				return err
			}
			return renderer.Units(result.Units)
		},
	}
}

func newInitCmd(d deps, flags *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configFile
			if path == "" {
				path = config.FileName
			}
			if err := config.WriteFile(d.fs, path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func runInstall(cmd *cobra.Command, d deps, flags *globalFlags, cmdType dispatcher.CommandType) error {
	logger := logging.GetLogger("cmd." + string(cmdType))

	renderer, err := newRenderer(d, flags)
	if err != nil {
		return err
	}
	cfg, layout, err := loadSetup(flags)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("config", cfg.Source).
		Str("starterRoot", layout.StarterRoot()).
		Str("pluginRoot", layout.PluginRoot()).
		Msg("Starting")

	result, err := dispatcher.Dispatch(cmd.Context(), cmdType, dispatcher.Options{
		Config:     cfg,
		Layout:     layout,
		Cloner:     d.cloner,
		FileSystem: d.fs,
	})
	if result != nil && result.Install != nil {
		if rerr := renderer.Install(result.Install); rerr != nil {
			return rerr
		}
	}
	if err != nil {
		return err
	}

	printFinished(d, renderer)
	return nil
}

// loadSetup reads the config and resolves the directory layout; both are fatal on failure
func loadSetup(flags *globalFlags) (*config.Config, paths.Layout, error) {
	path, err := config.Locate(flags.configFile)
	if err != nil {
		return nil, paths.Layout{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, paths.Layout{}, err
	}
	layout, err := paths.Resolve()
	if err != nil {
		return nil, paths.Layout{}, err
	}
	return cfg, layout, nil
}

func newRenderer(d deps, flags *globalFlags) (*ui.Renderer, error) {
	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(d.out, format), nil
}

func printFinished(d deps, renderer *ui.Renderer) {
	if renderer.Plain() {
		_, _ = fmt.Fprintln(d.out, MsgFinished)
		return
	}
	pterm.Success.WithWriter(d.out).Println(MsgFinished)
}
