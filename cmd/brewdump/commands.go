package brewdump

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/brewdump/internal/version"
	"github.com/arthur-debert/brewdump/pkg/config"
	"github.com/arthur-debert/brewdump/pkg/output"
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "o", "", MsgFlagFormat)
}

func newCasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casks",
		Short: MsgCasksShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderList(a.caskDumper(cmd).Casks())
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	var required []string

	cmd := &cobra.Command{
		Use:     "dump",
		Short:   MsgDumpShort,
		Long:    MsgDumpLong,
		Example: MsgDumpExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			log.Info().Strs("required", required).Msg("Dumping casks")
			req, unreq := a.caskDumper(cmd).Dump(required)
			return r.RenderDump(output.NewDumpResult(req, unreq))
		},
	}
	cmd.Flags().StringSliceVar(&required, "required", nil, MsgFlagRequired)
	addFormatFlag(cmd)
	return cmd
}

func newDepsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "deps <cask>...",
		Short:             MsgDepsShort,
		Example:           MsgDepsExample,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: a.caskCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderList(a.caskDumper(cmd).FormulaDependencies(args))
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			if a.cfg.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigFromFile, a.cfg.Source)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// caskCompletion completes installed cask names not already given.
func (a *app) caskCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Completion skips the persistent pre-run hooks
	if a.cfg == nil {
		cfg, err := config.Load("")
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		a.cfg = cfg
	}

	given := make(map[string]bool, len(args))
	for _, arg := range args {
		given[arg] = true
	}

	var available []string
	for _, cask := range a.caskDumper(cmd).Casks() {
		if !given[cask] {
			available = append(available, cask)
		}
	}
	return available, cobra.ShellCompDirectiveNoFileComp
}
