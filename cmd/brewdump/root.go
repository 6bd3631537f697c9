package brewdump

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/brewdump/internal/version"
	"github.com/arthur-debert/brewdump/pkg/brew"
	"github.com/arthur-debert/brewdump/pkg/bundle"
	"github.com/arthur-debert/brewdump/pkg/config"
	brewerrors "github.com/arthur-debert/brewdump/pkg/errors"
	"github.com/arthur-debert/brewdump/pkg/logging"
	"github.com/arthur-debert/brewdump/pkg/output"
)

// deps are the collaborators commands reach the system through.
type deps struct {
	runner   brew.Runner
	lookPath brew.LookPathFunc
	stdout   *os.File
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	deps

	cfg    *config.Config
	dumper *bundle.CaskDumper
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{
		runner: brew.NewShellRunner(),
		stdout: os.Stdout,
	})
}

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d}

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "brewdump",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newCasksCmd(a))
	rootCmd.AddCommand(newDumpCmd(a))
	rootCmd.AddCommand(newDepsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// caskDumper builds the dumper on first use so it sees the loaded config.
func (a *app) caskDumper(cmd *cobra.Command) *bundle.CaskDumper {
	if a.dumper != nil {
		return a.dumper
	}

	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "cask dumper setup")
	defer done()

	commands := brew.NewCommands(a.cfg.Brew.Command)
	installed := func() bool {
		if brew.Installed(commands.Executable(), a.lookPath) {
			return true
		}
		err := brewerrors.Newf(brewerrors.ErrBrewNotInstalled, "%s not found on PATH", commands.Executable()).
			WithDetail("command", commands.Executable())
		logger.Warn().Err(err).Msg("Cask listing unavailable")
		cmd.PrintErrf(MsgBrewMissing, commands.Executable())
		return false
	}

	a.dumper = bundle.NewCaskDumper(a.runner, installed, commands)
	return a.dumper
}

// renderer honors a --format override on cmd before falling back to config.
func (a *app) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	format := a.cfg.Output.Format
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		format = strings.ToLower(strings.TrimSpace(f.Value.String()))
	}
	noColor := !output.UseColor(a.cfg.Output.Color, a.stdout)
	return output.NewRenderer(cmd.OutOrStdout(), format, noColor)
}
